// Package paths provides centralized path handling for xdg-user-dirs.
//
// It resolves the user's home directory and the XDG base directories
// (through github.com/adrg/xdg) and derives every file location the tool
// reads or writes:
//
//   - user-dirs.dirs and user-dirs.locale in $XDG_CONFIG_HOME
//   - user-dirs.defaults and user-dirs.conf searched in $XDG_CONFIG_HOME,
//     then each entry of $XDG_CONFIG_DIRS (default /etc/xdg)
//   - directory descriptors in <data dir>/user-dirs.d for $XDG_DATA_HOME and
//     each entry of $XDG_DATA_DIRS
//   - gettext catalogs in /usr/share/locale, falling back to
//     <data dir>/locale
//
// It also holds the two conversions between the stored (home-relative or
// absolute) form of a directory and its absolute location.
//
// # Usage
//
//	p, err := paths.New("")  // detect home from the environment
//	if err != nil {
//	    return err
//	}
//	p.UserDirsFile()                      // /home/user/.config/user-dirs.dirs
//	p.ConfigCandidates("user-dirs.conf")  // user file first, then system ones
//	paths.Absolute(p.Home(), "Music")      // /home/user/Music
//	paths.StripHome(p.Home(), "/home/user/Music") // Music
package paths
