package reconcile

import (
	"path/filepath"

	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/mapping"
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Set assigns absPath to role, stored home-relative when it lies under
// the home directory. Nothing is created or moved on disk.
func Set(ctx *Context, m *mapping.Mapping, role types.Role, absPath string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !filepath.IsAbs(absPath) {
		return errors.Newf(errors.ErrInvalidInput, "directory value must be absolute path (was %s)", absPath).
			WithDetail("path", absPath)
	}

	rel := paths.StripHome(ctx.Home, filepath.Clean(absPath))
	m.Upsert(types.UserEntry{Role: role, Path: rel})

	ctx.Logger.Info().Str("role", string(role)).Str("path", rel).Msg("Directory assigned")
	return nil
}
