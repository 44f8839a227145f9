// Package mapping holds the user's role to path assignments in file order.
package mapping

import (
	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// ErrDuplicateRole is returned by Add for a role already present
var ErrDuplicateRole = errors.New(errors.ErrInvalidInput, "duplicate role")

// Mapping is an insertion-ordered collection of UserEntry values with at
// most one entry per role. The zero value is ready to use.
type Mapping struct {
	entries []types.UserEntry
	index   map[types.Role]int
}

// New builds a mapping from entries, rejecting duplicates
func New(entries ...types.UserEntry) (*Mapping, error) {
	m := &Mapping{}
	for _, e := range entries {
		if err := m.Add(e); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Len returns the number of entries
func (m *Mapping) Len() int {
	return len(m.entries)
}

// Get returns the entry for role
func (m *Mapping) Get(role types.Role) (types.UserEntry, bool) {
	if i, ok := m.index[role]; ok {
		return m.entries[i], true
	}
	return types.UserEntry{}, false
}

// Add appends a new entry
func (m *Mapping) Add(e types.UserEntry) error {
	if _, ok := m.index[e.Role]; ok {
		return errors.Wrapf(ErrDuplicateRole, errors.ErrInvalidInput, "role %s already mapped", e.Role).
			WithDetail("role", string(e.Role))
	}
	if m.index == nil {
		m.index = make(map[types.Role]int)
	}
	m.index[e.Role] = len(m.entries)
	m.entries = append(m.entries, e)
	return nil
}

// Upsert replaces the path of an existing entry in place, or appends
func (m *Mapping) Upsert(e types.UserEntry) {
	if i, ok := m.index[e.Role]; ok {
		m.entries[i].Path = e.Path
		return
	}
	_ = m.Add(e)
}

// Entries returns a copy of the entries in insertion order
func (m *Mapping) Entries() []types.UserEntry {
	out := make([]types.UserEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Rewrite calls fn for every entry and stores the returned path when ok is
// true. It returns the roles that changed.
func (m *Mapping) Rewrite(fn func(e types.UserEntry) (string, bool)) []types.Role {
	var changed []types.Role
	for i, e := range m.entries {
		if path, ok := fn(e); ok && path != e.Path {
			m.entries[i].Path = path
			changed = append(changed, e.Role)
		}
	}
	return changed
}
