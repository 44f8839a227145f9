package reconcile

import (
	"slices"
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Order returns the entries sorted so that every template is processed
// after all templates that are segment-wise prefixes of it. Unrelated
// templates are ordered by collating their first differing segment. The
// sort is stable and the input is not modified.
func Order(entries []types.DefaultEntry, c types.Collator) []types.DefaultEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b types.DefaultEntry) int {
		return compareTemplates(a.Template, b.Template, c)
	})
	return out
}

func compareTemplates(a, b string, c types.Collator) int {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		if r := c.Compare(as[i], bs[i]); r != 0 {
			return r
		}
		return strings.Compare(as[i], bs[i])
	}
	return len(as) - len(bs)
}
