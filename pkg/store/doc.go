// Package store loads and persists the user directory mapping and the
// locale marker. Files are replaced atomically: content is written to a
// temporary file in the target directory which is then renamed over the
// target.
package store
