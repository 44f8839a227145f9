// Package commands provides high-level command implementations for
// xdg-user-dirs.
//
// This package is the orchestration layer between the CLI and the
// reconciliation engine. Each command lives in its own subdirectory:
//   - update/ - reconcile the user mapping with the default catalog
//   - set/    - assign a single role
//   - list/   - describe the current assignments
//   - get/    - resolve a single role
//   - internal/ - shared session setup (paths, config, locale, store)
//
// This file re-exports the command functions.
package commands

import (
	"github.com/endlessm/xdg-user-dirs/pkg/commands/get"
	"github.com/endlessm/xdg-user-dirs/pkg/commands/list"
	"github.com/endlessm/xdg-user-dirs/pkg/commands/set"
	"github.com/endlessm/xdg-user-dirs/pkg/commands/update"
	"github.com/endlessm/xdg-user-dirs/pkg/ui/display"
)

// UpdateOptions configures Update
type UpdateOptions = update.Options

// UpdateResult is returned by Update
type UpdateResult = update.Result

// Update reconciles the user mapping with the default catalog
func Update(opts UpdateOptions) (*UpdateResult, error) {
	return update.Update(opts)
}

// SetOptions configures Set
type SetOptions = set.Options

// SetResult is returned by Set
type SetResult = set.Result

// Set assigns a single role and saves the mapping
func Set(opts SetOptions) (*SetResult, error) {
	return set.Set(opts)
}

// ListOptions configures List
type ListOptions = list.Options

// List describes the current assignments
func List(opts ListOptions) (*display.Listing, error) {
	return list.List(opts)
}

// GetOptions configures Get
type GetOptions = get.Options

// Get returns the absolute path of a role
func Get(opts GetOptions) (string, error) {
	return get.Get(opts)
}
