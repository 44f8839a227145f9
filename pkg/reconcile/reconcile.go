package reconcile

import (
	stderrors "errors"
	"path/filepath"
	"syscall"

	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/mapping"
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// UpdateResult describes the outcome of a reconciliation pass
type UpdateResult struct {
	// Changed is set when the mapping was modified
	Changed bool
	// Visited lists the catalog roles in processing order
	Visited []types.Role
	Events  []Event
}

func (r *UpdateResult) add(e Event) {
	r.Events = append(r.Events, e)
}

// Update reconciles m against the catalog. Per-role failures are reported
// as events and do not stop the pass.
func Update(ctx *Context, catalog []types.DefaultEntry, m *mapping.Mapping) (*UpdateResult, error) {
	if m == nil {
		return nil, errors.New(errors.ErrInternal, "nil user mapping")
	}

	result := &UpdateResult{}
	for _, entry := range Order(catalog, ctx.Collator) {
		result.Visited = append(result.Visited, entry.Role)
		ctx.updateRole(entry, m, result)
	}

	ctx.Logger.Debug().Bool("changed", result.Changed).Int("events", len(result.Events)).
		Msg("Reconciliation finished")
	return result, nil
}

func (ctx *Context) updateRole(entry types.DefaultEntry, m *mapping.Mapping, result *UpdateResult) {
	log := ctx.Logger.With().Str("role", string(entry.Role)).Logger()
	prev, had := m.Get(entry.Role)

	if had && !ctx.Force {
		abs := paths.Absolute(ctx.Home, prev.Path)
		if ctx.isDir(abs) {
			return
		}
		m.Upsert(types.UserEntry{Role: entry.Role, Path: ""})
		result.Changed = true
		result.add(Event{
			Kind: EventStaleUserPath,
			Role: entry.Role,
			From: prev.Path,
			Path: abs,
			Err: errors.Newf(errors.ErrStaleUserPath, "%s is not a directory", abs).
				WithDetail("role", string(entry.Role)),
		})
		log.Warn().Str("path", abs).Msg("Directory removed, reassigning to home")
		return
	}

	var candidate types.Resolved
	found := false
	if !had && !ctx.Force {
		candidate, found = LegacyPath(ctx, entry.Role)
		if found {
			log.Debug().Str("path", candidate.Abs).Msg("Adopting legacy directory")
		}
	}
	if !found {
		var err error
		candidate, err = Resolve(ctx, entry, m)
		if err != nil {
			abs := paths.Absolute(ctx.Home, entry.Template)
			log.Warn().Err(err).Str("path", abs).Msg("Cannot resolve default location")
			result.add(Event{Kind: EventDirectoryCreateFailure, Role: entry.Role, Path: abs, Err: err})
			return
		}
	}

	if had && candidate.Rel == prev.Path {
		return
	}

	relocated := false
	if ctx.Dummy {
		relocated = ctx.Move && had && prev.Path != ""
	} else {
		var err error
		relocated, err = ctx.materialize(prev, had, candidate)
		if err != nil {
			result.add(Event{
				Kind: EventDirectoryCreateFailure,
				Role: entry.Role,
				From: prev.Path,
				To:   candidate.Rel,
				Path: candidate.Abs,
				Err:  err,
			})
			log.Warn().Err(err).Str("path", candidate.Abs).Msg("Cannot create directory")
			return
		}
	}

	m.Upsert(types.UserEntry{Role: entry.Role, Path: candidate.Rel})
	result.Changed = true

	if !had {
		result.add(Event{Kind: EventCreated, Role: entry.Role, To: candidate.Rel, Path: candidate.Abs})
		log.Info().Str("path", candidate.Abs).Msg("Directory assigned")
		return
	}

	event := Event{
		Kind:      EventMoved,
		Role:      entry.Role,
		From:      prev.Path,
		To:        candidate.Rel,
		Path:      candidate.Abs,
		Relocated: relocated,
	}
	if prev.Path != "" {
		event.Propagated = Propagate(m, prev.Path, candidate.Rel, entry.Role)
		if len(event.Propagated) > 0 {
			log.Info().Interface("roles", event.Propagated).Msg("Rewrote nested directories")
		}
	}
	result.add(event)
	log.Info().Str("from", prev.Path).Str("to", candidate.Rel).Bool("relocated", relocated).Msg("Directory moved")
}

// materialize makes candidate exist on disk, renaming the previous
// directory there when moves are enabled. It reports whether a rename
// happened.
func (ctx *Context) materialize(prev types.UserEntry, had bool, candidate types.Resolved) (bool, error) {
	renamed := false
	if ctx.Move && had && prev.Path != "" {
		oldAbs := paths.Absolute(ctx.Home, prev.Path)
		if ctx.isDir(oldAbs) && !paths.HasPathPrefix(candidate.Abs, oldAbs) {
			if err := ctx.FS.MkdirAll(filepath.Dir(candidate.Abs), 0755); err != nil {
				return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(candidate.Abs))
			}
			err := ctx.FS.Rename(oldAbs, candidate.Abs)
			switch {
			case err == nil:
				renamed = true
			case renameFallsBack(err):
				ctx.Logger.Debug().Err(err).Str("from", oldAbs).Str("to", candidate.Abs).
					Msg("Rename not possible, creating directory instead")
			default:
				return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot move %s to %s", oldAbs, candidate.Abs)
			}
		}
	}

	if err := ctx.FS.MkdirAll(candidate.Abs, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", candidate.Abs)
	}
	return renamed, nil
}

// renameFallsBack reports rename failures after which creating an empty
// directory at the target is still correct
func renameFallsBack(err error) bool {
	return stderrors.Is(err, syscall.EEXIST) ||
		stderrors.Is(err, syscall.ENOTEMPTY) ||
		stderrors.Is(err, syscall.ENOENT) ||
		stderrors.Is(err, syscall.EXDEV)
}
