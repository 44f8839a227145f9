package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/endlessm/xdg-user-dirs/pkg/errors"
)

// Environment variable names
const (
	EnvHome = "HOME"
)

// File and directory names. These are part of the on-disk contract shared
// with other desktop components and are not configurable.
const (
	DefaultsFileName  = "user-dirs.defaults"
	ConfigFileName    = "user-dirs.conf"
	UserDirsFileName  = "user-dirs.dirs"
	LocaleFileName    = "user-dirs.locale"
	DescriptorDirName = "user-dirs.d"

	// SystemLocaleDir is where gettext catalogs are normally installed
	SystemLocaleDir = "/usr/share/locale"
)

// Paths provides the file locations used by xdg-user-dirs
type Paths interface {
	Home() string
	ConfigHome() string
	ConfigDirs() []string
	DataHome() string
	DataDirs() []string
	UserDirsFile() string
	LocaleFile() string
	ConfigCandidates(name string) []string
	DescriptorDirs() []string
	LocaleDirs() []string
}

type paths struct {
	home       string
	configHome string
	configDirs []string
	dataHome   string
	dataDirs   []string
}

// New creates a Paths instance. If home is empty it is detected from the
// environment. XDG variables are re-read on every call.
func New(home string) (Paths, error) {
	xdg.Reload()

	if home == "" {
		detected, err := GetHomeDirectory()
		if err != nil {
			return nil, err
		}
		home = detected
	}

	if !filepath.IsAbs(home) {
		return nil, errors.Newf(errors.ErrInvalidInput, "home directory %q is not absolute", home)
	}

	return &paths{
		home:       filepath.Clean(home),
		configHome: xdg.ConfigHome,
		configDirs: xdg.ConfigDirs,
		dataHome:   xdg.DataHome,
		dataDirs:   xdg.DataDirs,
	}, nil
}

func (p *paths) Home() string {
	return p.home
}

func (p *paths) ConfigHome() string {
	return p.configHome
}

func (p *paths) ConfigDirs() []string {
	return p.configDirs
}

func (p *paths) DataHome() string {
	return p.dataHome
}

func (p *paths) DataDirs() []string {
	return p.dataDirs
}

// UserDirsFile returns the location of the persisted user mapping
func (p *paths) UserDirsFile() string {
	return filepath.Join(p.configHome, UserDirsFileName)
}

// LocaleFile returns the location of the locale marker
func (p *paths) LocaleFile() string {
	return filepath.Join(p.configHome, LocaleFileName)
}

// ConfigCandidates lists where a config file may live, highest priority
// first: the user config home, then each system config dir. Existence is
// not checked.
func (p *paths) ConfigCandidates(name string) []string {
	candidates := []string{filepath.Join(p.configHome, name)}
	for _, dir := range p.configDirs {
		if dir == "" {
			continue
		}
		candidates = append(candidates, filepath.Join(dir, name))
	}
	return candidates
}

// DescriptorDirs lists directories scanned for directory descriptors,
// highest priority first
func (p *paths) DescriptorDirs() []string {
	dirs := []string{filepath.Join(p.dataHome, DescriptorDirName)}
	for _, dir := range p.dataDirs {
		if dir == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, DescriptorDirName))
	}
	return dirs
}

// LocaleDirs lists gettext catalog roots in lookup order
func (p *paths) LocaleDirs() []string {
	dirs := []string{SystemLocaleDir}
	for _, dir := range p.dataDirs {
		if dir == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, "locale"))
	}
	return dirs
}

// GetHomeDirectory returns the user's home directory, falling back to $HOME
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	return "", errors.Wrap(err, errors.ErrFileAccess, "unable to determine home directory")
}

// Absolute turns a stored path into an absolute one. Relative paths are
// taken relative to home; the empty path is home itself.
func Absolute(home, stored string) string {
	if filepath.IsAbs(stored) {
		return stored
	}
	if stored == "" {
		return home
	}
	return home + "/" + stored
}

// StripHome converts an absolute path under home into its home-relative
// form. The match is segment-wise: /home/user2 is not under /home/user.
// Paths outside home are returned unchanged.
func StripHome(home, abs string) string {
	home = strings.TrimRight(home, "/")
	if home == "" {
		return abs
	}
	if abs == home {
		return ""
	}
	if rest, ok := strings.CutPrefix(abs, home+"/"); ok {
		return strings.TrimLeft(rest, "/")
	}
	return abs
}

// HasPathPrefix reports whether prefix is a segment-wise prefix of p.
// Every path has the empty prefix.
func HasPathPrefix(p, prefix string) bool {
	if prefix == "" || p == prefix {
		return true
	}
	if strings.HasSuffix(prefix, "/") {
		return strings.HasPrefix(p, prefix)
	}
	return strings.HasPrefix(p, prefix+"/")
}
