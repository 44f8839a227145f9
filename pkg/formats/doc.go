// Package formats implements the on-disk text formats shared with other
// desktop components: the user-dirs.defaults catalog, the user-dirs.dirs
// mapping, directory descriptor key files and the user-dirs.locale marker.
//
// Each format has a dedicated parser returning structured records. Lines
// that do not match a format are not fatal; they are reported as LineError
// values so callers can log them.
package formats
