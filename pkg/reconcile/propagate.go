package reconcile

import (
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/mapping"
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Propagate rewrites every entry other than except whose stored path lies
// under oldPrefix so that it lies under newPrefix instead. The remainder
// after the prefix is kept verbatim. Trailing slashes on either prefix are
// ignored. Moving the home directory itself (an empty oldPrefix) rewrites
// nothing. It returns the rewritten roles.
func Propagate(m *mapping.Mapping, oldPrefix, newPrefix string, except types.Role) []types.Role {
	oldPrefix = strings.TrimRight(oldPrefix, "/")
	newPrefix = strings.TrimRight(newPrefix, "/")
	if oldPrefix == "" || oldPrefix == newPrefix {
		return nil
	}
	return m.Rewrite(func(e types.UserEntry) (string, bool) {
		if e.Role == except || !paths.HasPathPrefix(e.Path, oldPrefix) {
			return "", false
		}
		rest := strings.TrimPrefix(e.Path, oldPrefix)
		if newPrefix == "" {
			// Moved to the home directory: the remainder becomes home-relative
			return strings.TrimLeft(rest, "/"), true
		}
		return newPrefix + rest, true
	})
}
