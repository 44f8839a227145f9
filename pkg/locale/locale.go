package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Environment variables consulted for the message locale, highest priority first
var messageEnv = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// DefaultCodeset is assumed when a locale name carries no codeset
const DefaultCodeset = "UTF-8"

// MessagesLocale returns the active LC_MESSAGES locale name, "C" when unset
func MessagesLocale() string {
	for _, name := range messageEnv {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return "C"
}

// IsPOSIX reports whether name is the C or POSIX locale
func IsPOSIX(name string) bool {
	base := StripCodeset(name)
	return base == "C" || base == "POSIX" || base == ""
}

// StripCodeset drops everything from the first dot: fr_FR.UTF-8@euro
// becomes fr_FR.
func StripCodeset(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// Codeset returns the codeset part of a locale name (between the dot and
// any @modifier), DefaultCodeset if absent.
func Codeset(name string) string {
	i := strings.IndexByte(name, '.')
	if i < 0 {
		return DefaultCodeset
	}
	codeset := name[i+1:]
	if at := strings.IndexByte(codeset, '@'); at >= 0 {
		codeset = codeset[:at]
	}
	if codeset == "" {
		return DefaultCodeset
	}
	return codeset
}

// Parts splits a locale name into language, territory and modifier. The
// codeset is discarded.
func Parts(name string) (lang, territory, modifier string) {
	if at := strings.IndexByte(name, '@'); at >= 0 {
		modifier = name[at+1:]
		name = name[:at]
	}
	name = StripCodeset(name)
	lang, territory, _ = strings.Cut(name, "_")
	return lang, territory, modifier
}

// Variants lists the lookup keys for name in decreasing specificity:
// ll_CC@mod, ll_CC, ll@mod, ll. Duplicates are omitted.
func Variants(name string) []string {
	if IsPOSIX(name) {
		return nil
	}
	lang, territory, modifier := Parts(name)
	var candidates []string
	if territory != "" && modifier != "" {
		candidates = append(candidates, lang+"_"+territory+"@"+modifier)
	}
	if territory != "" {
		candidates = append(candidates, lang+"_"+territory)
	}
	if modifier != "" {
		candidates = append(candidates, lang+"@"+modifier)
	}
	candidates = append(candidates, lang)
	return candidates
}

// Tag converts a POSIX locale name to a BCP 47 language tag. The C and
// POSIX locales, and unparsable names, yield language.Und.
func Tag(name string) language.Tag {
	if IsPOSIX(name) {
		return language.Und
	}
	lang, territory, _ := Parts(name)
	bcp := lang
	if territory != "" {
		bcp += "-" + territory
	}
	tag, err := language.Parse(bcp)
	if err != nil {
		return language.Und
	}
	return tag
}
