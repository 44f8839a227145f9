// Package testutil provides utilities for testing xdg-user-dirs components.
//
// Key components:
//   - TestEnvironment: isolated HOME and XDG base directories with cleanup
//   - FileTree: declarative directory setup
//   - Fakes for the locale-dependent collaborators (translator, encoder)
//
// Usage guidelines:
//   - Use EnvMemoryOnly when the code under test only goes through types.FS
//   - Use EnvIsolated for anything touching os directly (config loading,
//     directory renames, the CLI)
//   - All test data should be defined inline, not in external files
package testutil
