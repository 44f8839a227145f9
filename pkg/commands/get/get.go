package get

import (
	"github.com/endlessm/xdg-user-dirs/pkg/commands/internal"
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Options defines the options for the Get command
type Options struct {
	Home string
	Role types.Role
}

// Get returns the absolute path assigned to a role, or the home directory
// when the role is not assigned
func Get(opts Options) (string, error) {
	if err := opts.Role.Validate(); err != nil {
		return "", err
	}

	s, err := internal.NewSession(opts.Home)
	if err != nil {
		return "", err
	}
	loaded, err := s.Store.Load()
	if err != nil {
		return "", err
	}

	if e, ok := loaded.Mapping.Get(opts.Role); ok {
		return paths.Absolute(s.Paths.Home(), e.Path), nil
	}
	return s.Paths.Home(), nil
}
