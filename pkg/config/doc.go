// Package config handles configuration management for xdg-user-dirs.
// Configuration is layered: embedded TOML defaults, then every
// user-dirs.conf found in the system and user config directories, then
// XDG_USER_DIRS_* environment variables.
package config
