package formats

import (
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Defaults is a parsed user-dirs.defaults catalog
type Defaults struct {
	Entries []types.DefaultEntry
	Skipped []LineError
}

// ParseDefaults reads ROLE=template lines. Lines with an empty key or
// value are ignored. A role declared twice keeps its first template.
func ParseDefaults(data []byte) *Defaults {
	d := &Defaults{}
	seen := make(map[types.Role]bool)

	eachLine(data, func(n int, line string) {
		key, value, ok := splitAssignment(line)
		if !ok {
			d.Skipped = append(d.Skipped, LineError{Line: n, Text: line, Reason: "expected ROLE=template"})
			return
		}
		value = strings.TrimRight(value, blanks)
		if value == "" {
			return
		}

		role := types.Role(key)
		if err := role.Validate(); err != nil {
			d.Skipped = append(d.Skipped, LineError{Line: n, Text: line, Reason: err.Error()})
			return
		}
		if seen[role] {
			d.Skipped = append(d.Skipped, LineError{Line: n, Text: line, Reason: "duplicate role " + key})
			return
		}
		seen[role] = true
		d.Entries = append(d.Entries, types.DefaultEntry{Role: role, Template: value})
	})

	return d
}
