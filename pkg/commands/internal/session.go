package internal

import (
	"github.com/endlessm/xdg-user-dirs/pkg/config"
	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/filesystem"
	"github.com/endlessm/xdg-user-dirs/pkg/locale"
	"github.com/endlessm/xdg-user-dirs/pkg/logging"
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/reconcile"
	"github.com/endlessm/xdg-user-dirs/pkg/store"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Session bundles what every command needs
type Session struct {
	Paths  paths.Paths
	FS     types.FS
	Config *config.Config
	Store  store.Store
	// Locale is the active LC_MESSAGES locale name
	Locale string
}

// NewSession resolves paths and loads the configuration. An empty home
// is detected from the environment.
func NewSession(home string) (*Session, error) {
	p, err := paths.New(home)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p)
	if err != nil {
		return nil, err
	}

	fs := filesystem.NewOS()
	s := &Session{
		Paths:  p,
		FS:     fs,
		Config: cfg,
		Store:  store.New(fs, p),
		Locale: locale.MessagesLocale(),
	}

	logger := logging.GetLogger("commands")
	logger.Debug().
		Str("home", p.Home()).
		Str("locale", s.Locale).
		Bool("enabled", cfg.Enabled).
		Str("encoding", cfg.FilenameEncoding).
		Msg("Session ready")
	return s, nil
}

// Context builds the reconciliation context for the active locale. It
// fails when the configured filename encoding is not supported.
func (s *Session) Context() (*reconcile.Context, error) {
	charset := s.Config.ResolveEncoding(locale.Codeset(s.Locale))
	encoder, err := locale.NewEncoder(charset)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "Can't convert from UTF-8 to %s", charset).
			WithDetail("encoding", charset)
	}

	ctx := reconcile.NewContext(s.Paths.Home(), s.FS)
	ctx.Translator = locale.NewTranslator(s.Paths.LocaleDirs(), s.Locale)
	ctx.Encoder = encoder
	ctx.Collator = locale.NewCollator(s.Locale)
	return ctx, nil
}
