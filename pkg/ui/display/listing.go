// Package display holds the format-independent data rendered by the ui
// renderers.
package display

import (
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Listing is the rendered form of a user mapping
type Listing struct {
	Home    string         `json:"home" yaml:"home" toml:"home"`
	Entries []ListingEntry `json:"directories" yaml:"directories" toml:"directories"`
}

// ListingEntry describes one assignment
type ListingEntry struct {
	Role string `json:"role" yaml:"role" toml:"role"`
	// Path is absolute
	Path string `json:"path" yaml:"path" toml:"path"`
	// Stored is the value as written in the mapping file
	Stored string `json:"stored" yaml:"stored" toml:"stored"`
	Exists bool   `json:"exists" yaml:"exists" toml:"exists"`
}

// NewListing builds a Listing, checking each path on fs
func NewListing(home string, fs types.FS, entries []types.UserEntry) *Listing {
	l := &Listing{Home: home, Entries: make([]ListingEntry, 0, len(entries))}
	for _, e := range entries {
		abs := paths.Absolute(home, e.Path)
		info, err := fs.Stat(abs)
		l.Entries = append(l.Entries, ListingEntry{
			Role:   string(e.Role),
			Path:   abs,
			Stored: e.Path,
			Exists: err == nil && info.IsDir(),
		})
	}
	return l
}

// Missing counts entries whose directory does not exist
func (l *Listing) Missing() int {
	n := 0
	for _, e := range l.Entries {
		if !e.Exists {
			n++
		}
	}
	return n
}
