package locale

import (
	"os"
	"path/filepath"

	"github.com/endlessm/xdg-user-dirs/pkg/logging"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain holding directory label translations
const Domain = "xdg-user-dirs"

// GettextTranslator translates labels through a gettext catalog
type GettextTranslator struct {
	locale *gotext.Locale
}

// Translate returns the catalog translation of label, or label itself
func (g *GettextTranslator) Translate(label string) string {
	if g.locale == nil || label == "" {
		return label
	}
	return g.locale.GetD(Domain, label)
}

// identity is used when no catalog is available
type identity struct{}

func (identity) Translate(label string) string { return label }

// NewTranslator loads the catalog for localeName from the first of dirs
// that has one. Without a catalog labels pass through untranslated.
func NewTranslator(dirs []string, localeName string) types.Translator {
	logger := logging.GetLogger("locale")

	for _, variant := range Variants(localeName) {
		for _, dir := range dirs {
			mo := filepath.Join(dir, variant, "LC_MESSAGES", Domain+".mo")
			if _, err := os.Stat(mo); err != nil {
				continue
			}
			l := gotext.NewLocale(dir, variant)
			l.AddDomain(Domain)
			logger.Debug().Str("catalog", mo).Msg("Using translation catalog")
			return &GettextTranslator{locale: l}
		}
	}

	logger.Debug().Str("locale", localeName).Msg("No translation catalog found")
	return identity{}
}

// MapTranslator translates from a fixed table. Unknown labels pass through.
type MapTranslator map[string]string

// Translate implements types.Translator
func (m MapTranslator) Translate(label string) string {
	if t, ok := m[label]; ok {
		return t
	}
	return label
}
