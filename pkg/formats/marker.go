package formats

import (
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/locale"
)

// FormatLocaleMarker renders the user-dirs.locale content for a locale
func FormatLocaleMarker(localeName string) []byte {
	return []byte(locale.StripCodeset(localeName))
}

// ParseLocaleMarker returns the locale recorded in user-dirs.locale
func ParseLocaleMarker(data []byte) string {
	first, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(first)
}
