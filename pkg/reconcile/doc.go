// Package reconcile computes the authoritative path of every role.
//
// Update walks the default catalog in dependency order (ancestors before
// descendants), validates or repairs existing assignments, adopts legacy
// directories, creates missing directories and, when forced with moves
// enabled, relocates directories on disk and rewrites every other
// assignment nested under a moved directory.
//
// All inputs are carried by an explicit Context; the package keeps no
// global state. Per-role problems are reported as Events, never as errors.
package reconcile
