package set

import (
	"github.com/endlessm/xdg-user-dirs/pkg/commands/internal"
	"github.com/endlessm/xdg-user-dirs/pkg/logging"
	"github.com/endlessm/xdg-user-dirs/pkg/reconcile"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Options defines the options for the Set command
type Options struct {
	Home string
	Role types.Role
	// Path must be absolute
	Path string
	// DummyOutput, when set, receives the mapping instead of the user's file
	DummyOutput string
}

// Result describes the stored assignment
type Result struct {
	Role types.Role
	// Stored is the value as written, home-relative when under home
	Stored  string
	SavedTo string
}

// Set assigns opts.Path to opts.Role and saves the mapping immediately.
// It works even when updates are disabled by configuration.
func Set(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.set")
	log.Debug().Str("command", "Set").Str("role", string(opts.Role)).Str("path", opts.Path).Msg("Executing command")

	s, err := internal.NewSession(opts.Home)
	if err != nil {
		return nil, err
	}
	ctx, err := s.Context()
	if err != nil {
		return nil, err
	}

	loaded, err := s.Store.Load()
	if err != nil {
		return nil, err
	}

	if err := reconcile.Set(ctx, loaded.Mapping, opts.Role, opts.Path); err != nil {
		return nil, err
	}

	result := &Result{Role: opts.Role}
	if e, ok := loaded.Mapping.Get(opts.Role); ok {
		result.Stored = e.Path
	}

	if opts.DummyOutput != "" {
		err = s.Store.SaveTo(opts.DummyOutput, loaded.Mapping)
		result.SavedTo = opts.DummyOutput
	} else {
		err = s.Store.Save(loaded.Mapping)
		result.SavedTo = s.Paths.UserDirsFile()
	}
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Set").Str("savedTo", result.SavedTo).Msg("Command finished")
	return result, nil
}
