package reconcile

import (
	"github.com/endlessm/xdg-user-dirs/pkg/locale"
	"github.com/endlessm/xdg-user-dirs/pkg/logging"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
	"github.com/rs/zerolog"
)

// Context carries everything a reconciliation pass depends on
type Context struct {
	// Home is the absolute home directory
	Home string
	FS   types.FS

	Translator types.Translator
	Encoder    types.Encoder
	Collator   types.Collator

	// Force re-resolves every role from the catalog, ignoring valid
	// existing assignments
	Force bool
	// Move relocates the previous directory instead of creating a new one
	Move bool
	// Dummy disables all filesystem changes
	Dummy bool

	Logger zerolog.Logger
}

// NewContext returns a Context for the C locale: labels are not
// translated, names are not transcoded and collation is bytewise
func NewContext(home string, fs types.FS) *Context {
	encoder, _ := locale.NewEncoder("")
	return &Context{
		Home:       home,
		FS:         fs,
		Translator: locale.MapTranslator{},
		Encoder:    encoder,
		Collator:   locale.NewCollator("C"),
		Logger:     logging.GetLogger("reconcile"),
	}
}

func (ctx *Context) isDir(path string) bool {
	info, err := ctx.FS.Stat(path)
	return err == nil && info.IsDir()
}
