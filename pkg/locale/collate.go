package locale

import (
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type textCollator struct {
	c *collate.Collator
}

func (t *textCollator) Compare(a, b string) int {
	return t.c.CompareString(a, b)
}

type byteCollator struct{}

func (byteCollator) Compare(a, b string) int {
	return strings.Compare(a, b)
}

// NewCollator returns a collator for the locale. C and POSIX compare bytes.
func NewCollator(localeName string) types.Collator {
	tag := Tag(localeName)
	if tag == language.Und {
		return byteCollator{}
	}
	return &textCollator{c: collate.New(tag)}
}
