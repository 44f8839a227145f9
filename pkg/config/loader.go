package config

import (
	"os"
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/logging"
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides, e.g. XDG_USER_DIRS_ENABLED
const EnvPrefix = "XDG_USER_DIRS_"

// EncodingLocale selects the codeset of the active locale
const EncodingLocale = "LOCALE"

// Config is the effective xdg-user-dirs configuration
type Config struct {
	// Enabled turns the update operation on or off
	Enabled bool
	// FilenameEncoding is an upper-cased charset name, EncodingLocale, or
	// empty for UTF-8 (no conversion).
	FilenameEncoding string
	// Sources lists the config files that were applied, lowest priority first
	Sources []string
}

type rawConfig struct {
	Enabled          string `koanf:"enabled"`
	FilenameEncoding string `koanf:"filename_encoding"`
}

// Load reads the layered configuration for the given paths
func Load(p paths.Paths) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// System files first so the user's file wins.
	files := existingFiles(p.ConfigCandidates(paths.ConfigFileName))
	var sources []string
	for i := len(files) - 1; i >= 0; i-- {
		if err := k.Load(file.Provider(files[i]), dotenv.Parser()); err != nil {
			logger.Warn().Err(err).Str("path", files[i]).Msg("Ignoring unreadable config file")
			continue
		}
		sources = append(sources, files[i])
		logger.Debug().Str("path", files[i]).Msg("Loaded config file")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var raw rawConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &raw,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &raw, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "failed to unmarshal configuration")
	}

	return &Config{
		Enabled:          isTrue(raw.Enabled),
		FilenameEncoding: normalizeEncoding(raw.FilenameEncoding),
		Sources:          sources,
	}, nil
}

// ResolveEncoding returns the charset to convert filenames to, or "" for
// none. codeset is the active locale's codeset, used for EncodingLocale.
func (c *Config) ResolveEncoding(codeset string) string {
	if c.FilenameEncoding != EncodingLocale {
		return c.FilenameEncoding
	}
	return normalizeEncoding(codeset)
}

func existingFiles(candidates []string) []string {
	var found []string
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			found = append(found, path)
		}
	}
	return found
}

// isTrue accepts 1, True... and true... after leading whitespace
func isTrue(s string) bool {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	return strings.HasPrefix(s, "1") ||
		strings.HasPrefix(s, "True") ||
		strings.HasPrefix(s, "true")
}

func normalizeEncoding(s string) string {
	enc := strings.ToUpper(strings.TrimSpace(s))
	switch enc {
	case "", "UTF8", "UTF-8":
		return ""
	default:
		return enc
	}
}
