package reconcile

import (
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// legacyNames are the untranslated directory names used before a role
// had a catalog template
var legacyNames = map[types.Role]string{
	"DESKTOP":     "Desktop",
	"TEMPLATES":   "Templates",
	"PUBLICSHARE": "Public",
}

// LegacyName returns the historical directory name of role, if it has one
func LegacyName(role types.Role) (string, bool) {
	name, ok := legacyNames[role]
	return name, ok
}

// LegacyPath returns the legacy directory of role when it exists under
// the home directory
func LegacyPath(ctx *Context, role types.Role) (types.Resolved, bool) {
	name, ok := legacyNames[role]
	if !ok {
		return types.Resolved{}, false
	}
	abs := paths.Absolute(ctx.Home, name)
	if !ctx.isDir(abs) {
		return types.Resolved{}, false
	}
	return types.Resolved{Abs: abs, Rel: name}, true
}
