package formats

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Header is written at the top of every user-dirs.dirs file
const Header = `# This file is written by xdg-user-dirs-update
# If you want to change or add directories, just edit the line you're
# interested in. All local changes will be retained on the next run
# Format is XDG_xxx_DIR="$HOME/yyy", where yyy is a shell-escaped
# homedir-relative path, or XDG_xxx_DIR="/yyy", where /yyy is an
# absolute path. No other format is supported.
# 
`

const (
	keyPrefix = "XDG_"
	keySuffix = "_DIR"
	homeVar   = "$HOME"
)

// UserDirs is a parsed user-dirs.dirs mapping. Entries keep the order of
// first appearance.
type UserDirs struct {
	Entries []types.UserEntry
	Skipped []LineError
	// Duplicates lists roles assigned more than once; the last assignment won
	Duplicates []types.Role
}

// ParseUserDirs reads XDG_ROLE_DIR="value" and id.desktop="value" lines.
// Values are either "$HOME", "$HOME/relative" or "/absolute".
func ParseUserDirs(data []byte) *UserDirs {
	u := &UserDirs{}
	index := make(map[types.Role]int)

	eachLine(data, func(n int, line string) {
		entry, reason := parseUserDirsLine(line)
		if reason != "" {
			u.Skipped = append(u.Skipped, LineError{Line: n, Text: line, Reason: reason})
			return
		}
		if i, ok := index[entry.Role]; ok {
			u.Entries[i].Path = entry.Path
			u.Duplicates = append(u.Duplicates, entry.Role)
			return
		}
		index[entry.Role] = len(u.Entries)
		u.Entries = append(u.Entries, entry)
	})

	return u
}

func parseUserDirsLine(line string) (types.UserEntry, string) {
	key, value, ok := splitAssignment(line)
	if !ok {
		return types.UserEntry{}, "expected KEY=\"value\""
	}

	role, ok := roleFromKey(key)
	if !ok {
		return types.UserEntry{}, "unrecognized key " + key
	}

	if !strings.HasPrefix(value, `"`) {
		return types.UserEntry{}, "value is not quoted"
	}
	value = value[1:]

	relative := false
	if rest, ok := strings.CutPrefix(value, homeVar); ok {
		switch {
		case strings.HasPrefix(rest, "/"):
			relative = true
			value = strings.TrimLeft(rest, "/")
		case strings.HasPrefix(rest, `"`), rest == "":
			relative = true
			value = rest
		default:
			return types.UserEntry{}, "unsupported variable in value"
		}
	} else if !strings.HasPrefix(value, "/") {
		return types.UserEntry{}, "value must be $HOME-relative or absolute"
	}

	path := trimTrailingSlashes(Unescape(quotedPrefix(value)))
	if relative && hasDotDotPrefix(path) {
		return types.UserEntry{}, "path escapes the home directory"
	}

	return types.UserEntry{Role: role, Path: path}, ""
}

// roleFromKey maps XDG_MUSIC_DIR to MUSIC and accepts descriptor ids as is
func roleFromKey(key string) (types.Role, bool) {
	var role types.Role
	if strings.HasSuffix(key, types.DescriptorSuffix) {
		role = types.Role(key)
	} else {
		name, ok := strings.CutPrefix(key, keyPrefix)
		if !ok {
			return "", false
		}
		name, ok = strings.CutSuffix(name, keySuffix)
		if !ok {
			return "", false
		}
		role = types.Role(name)
	}
	if role.Validate() != nil {
		return "", false
	}
	return role, true
}

// quotedPrefix returns s up to the first unescaped double quote
func quotedPrefix(s string) string {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return s[:i]
		}
	}
	return s
}

// trimTrailingSlashes makes "Pictures/" and "Pictures" the same entry.
// The root directory keeps its slash.
func trimTrailingSlashes(p string) string {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" && strings.HasPrefix(p, "/") {
		return "/"
	}
	return trimmed
}

func hasDotDotPrefix(p string) bool {
	return p == ".." || strings.HasPrefix(p, "../")
}

// KeyFor returns the assignment key a role is stored under
func KeyFor(role types.Role) string {
	if role.IsDescriptor() {
		return string(role)
	}
	return keyPrefix + string(role) + keySuffix
}

// FormatValue renders a stored path as a quoted assignment value
func FormatValue(path string) string {
	switch {
	case path == "":
		return `"` + homeVar + `"`
	case strings.HasPrefix(path, "/"):
		return `"` + Escape(path) + `"`
	default:
		return `"` + homeVar + "/" + Escape(path) + `"`
	}
}

// WriteUserDirs writes the header followed by one line per entry
func WriteUserDirs(w io.Writer, entries []types.UserEntry) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s=%s\n", KeyFor(e.Role), FormatValue(e.Path)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
