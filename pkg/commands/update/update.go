package update

import (
	"github.com/endlessm/xdg-user-dirs/pkg/catalog"
	"github.com/endlessm/xdg-user-dirs/pkg/commands/internal"
	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/formats"
	"github.com/endlessm/xdg-user-dirs/pkg/logging"
	"github.com/endlessm/xdg-user-dirs/pkg/reconcile"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Options defines the options for the Update command
type Options struct {
	// Home overrides the detected home directory
	Home string
	// Force re-resolves every role from the catalog
	Force bool
	// Move renames directories on disk when a role's location changes
	Move bool
	// DummyOutput, when set, receives the mapping instead of the user's
	// file and no directories are created or moved
	DummyOutput string
}

// Result describes what Update did
type Result struct {
	// Enabled is false when the configuration disables updates
	Enabled bool
	Changed bool
	// SavedTo is the file the mapping was written to, "" if not saved
	SavedTo     string
	LocaleSaved bool
	Visited     []types.Role
	Events      []reconcile.Event
	// Skipped lists unparsable lines of the existing mapping
	Skipped []formats.LineError
}

// Update reconciles the user mapping with the default catalog and saves it
// when anything changed
func Update(opts Options) (*Result, error) {
	log := logging.GetLogger("commands.update")
	log.Debug().Str("command", "Update").Bool("force", opts.Force).Bool("move", opts.Move).
		Str("dummy", opts.DummyOutput).Msg("Executing command")
	defer logging.LogOperationStart(log, "update")()

	s, err := internal.NewSession(opts.Home)
	if err != nil {
		return nil, err
	}
	if !s.Config.Enabled {
		log.Info().Msg("Updates disabled by configuration")
		return &Result{Enabled: false}, nil
	}

	ctx, err := s.Context()
	if err != nil {
		return nil, err
	}
	ctx.Force = opts.Force
	ctx.Move = opts.Move
	ctx.Dummy = opts.DummyOutput != ""

	cat, err := catalog.Build(catalog.Options{FS: s.FS, Paths: s.Paths, Locale: s.Locale})
	if err != nil {
		return nil, err
	}

	loaded, err := s.Store.Load()
	if err != nil {
		return nil, err
	}

	outcome, err := reconcile.Update(ctx, cat.Entries, loaded.Mapping)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Enabled: true,
		Changed: outcome.Changed,
		Visited: outcome.Visited,
		Events:  outcome.Events,
		Skipped: loaded.Skipped,
	}
	if !outcome.Changed {
		log.Info().Str("command", "Update").Msg("Nothing to do")
		return result, nil
	}

	if ctx.Dummy {
		err = s.Store.SaveTo(opts.DummyOutput, loaded.Mapping)
		result.SavedTo = opts.DummyOutput
	} else {
		err = s.Store.Save(loaded.Mapping)
		result.SavedTo = s.Paths.UserDirsFile()
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrPersistenceWrite, "failed to save user directories")
	}

	if (opts.Force || loaded.WasEmpty) && !ctx.Dummy {
		if err := s.Store.SaveLocale(s.Locale); err != nil {
			log.Warn().Err(err).Msg("Cannot record locale")
		} else {
			result.LocaleSaved = true
		}
	}

	log.Info().Str("command", "Update").Str("savedTo", result.SavedTo).Int("events", len(result.Events)).
		Msg("Command finished")
	return result, nil
}
