package formats

import (
	"fmt"
	"strings"
)

// LineError describes a line that could not be parsed
type LineError struct {
	Line   int
	Text   string
	Reason string
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

const blanks = " \t\r\v\f"

// eachLine calls fn for every line with its 1-based number. Lines have no
// length limit. Leading whitespace and a trailing CR are removed; blank
// lines and # comments are skipped.
func eachLine(data []byte, fn func(n int, line string)) {
	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimLeft(strings.TrimSuffix(raw, "\r"), blanks)
		if line == "" || line[0] == '#' {
			continue
		}
		fn(i+1, line)
	}
}

// splitAssignment splits "key = value" at the first '='. The key ends at
// whitespace or '='; whitespace around '=' is tolerated.
func splitAssignment(line string) (key, value string, ok bool) {
	end := strings.IndexAny(line, "="+blanks)
	if end <= 0 {
		return "", "", false
	}
	key = line[:end]
	rest := strings.TrimLeft(line[end:], blanks)
	if !strings.HasPrefix(rest, "=") {
		return "", "", false
	}
	return key, strings.TrimLeft(rest[1:], blanks), true
}
