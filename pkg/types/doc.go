// Package types defines the core types and interfaces used throughout
// xdg-user-dirs: roles, default catalog entries, user mapping entries, and
// the collaborator interfaces (filesystem, translation, filename encoding,
// collation) the reconciliation engine is written against.
package types
