package store

import (
	"bytes"
	"io/fs"
	"path/filepath"

	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/formats"
	"github.com/endlessm/xdg-user-dirs/pkg/logging"
	"github.com/endlessm/xdg-user-dirs/pkg/mapping"
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// Store manages the persisted user mapping
type Store interface {
	// Load reads the user mapping. A missing file yields an empty mapping.
	Load() (*Loaded, error)

	// Save replaces the user mapping file with m
	Save(m *mapping.Mapping) error

	// SaveTo writes m to path instead of the user mapping file
	SaveTo(path string, m *mapping.Mapping) error

	// LoadLocale returns the locale recorded by the last SaveLocale, "" if none
	LoadLocale() (string, error)

	// SaveLocale records the locale the mapping was last generated for
	SaveLocale(localeName string) error
}

// Loaded is the result of Store.Load
type Loaded struct {
	Mapping *mapping.Mapping
	// Skipped lists lines that did not parse
	Skipped []formats.LineError
	// WasEmpty is set when the file was missing or held no entries
	WasEmpty bool
}

type filesystemStore struct {
	fs    types.FS
	paths paths.Paths
}

// New creates a Store backed by fs at the locations given by paths
func New(fs types.FS, paths paths.Paths) Store {
	return &filesystemStore{fs: fs, paths: paths}
}

func (s *filesystemStore) Load() (*Loaded, error) {
	logger := logging.GetLogger("store")
	path := s.paths.UserDirsFile()

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", path).Msg("No user mapping yet")
			return &Loaded{Mapping: &mapping.Mapping{}, WasEmpty: true}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}

	parsed := formats.ParseUserDirs(data)
	for _, skipped := range parsed.Skipped {
		logger.Warn().Str("path", path).Int("line", skipped.Line).Str("reason", skipped.Reason).
			Msg("Ignoring line in user mapping")
	}
	for _, role := range parsed.Duplicates {
		logger.Warn().Str("path", path).Str("role", string(role)).
			Msg("Directory assigned more than once, using the last assignment")
	}

	m, err := mapping.New(parsed.Entries...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "inconsistent user mapping")
	}

	return &Loaded{
		Mapping:  m,
		Skipped:  parsed.Skipped,
		WasEmpty: m.Len() == 0,
	}, nil
}

func (s *filesystemStore) Save(m *mapping.Mapping) error {
	return s.save(s.paths.UserDirsFile(), m, true)
}

// SaveTo writes to an explicit file, such as a dummy output. Its directory
// must already exist.
func (s *filesystemStore) SaveTo(path string, m *mapping.Mapping) error {
	return s.save(path, m, false)
}

func (s *filesystemStore) save(path string, m *mapping.Mapping, createDir bool) error {
	var buf bytes.Buffer
	if err := formats.WriteUserDirs(&buf, m.Entries()); err != nil {
		return errors.Wrap(err, errors.ErrPersistenceWrite, "cannot render user mapping")
	}
	if err := s.writeAtomic(path, buf.Bytes(), createDir); err != nil {
		return err
	}
	logger := logging.GetLogger("store")
	logger.Debug().Str("path", path).Int("entries", m.Len()).Msg("Saved user mapping")
	return nil
}

func (s *filesystemStore) LoadLocale() (string, error) {
	data, err := s.fs.ReadFile(s.paths.LocaleFile())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", s.paths.LocaleFile())
	}
	return formats.ParseLocaleMarker(data), nil
}

func (s *filesystemStore) SaveLocale(localeName string) error {
	return s.writeAtomic(s.paths.LocaleFile(), formats.FormatLocaleMarker(localeName), true)
}

// writeAtomic writes data to a temporary file next to path and renames it
// over path. The temporary file is removed on any failure. With createDir
// the parent directory is created first.
func (s *filesystemStore) writeAtomic(path string, data []byte, createDir bool) error {
	dir := filepath.Dir(path)
	if createDir {
		if err := s.fs.MkdirAll(dir, 0700); err != nil {
			return errors.Wrapf(err, errors.ErrPersistenceWrite, "cannot create %s", dir)
		}
	}

	tmp, err := s.fs.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrPersistenceWrite, "cannot create temporary file in %s", dir)
	}
	tmpName := tmp.Name()

	fail := func(err error, msg string) error {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrPersistenceWrite, "%s %s", msg, path).WithDetail("path", path)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err, "cannot write")
	}
	if err := tmp.Sync(); err != nil {
		return fail(err, "cannot sync")
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrPersistenceWrite, "cannot close %s", tmpName).WithDetail("path", path)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrPersistenceWrite, "cannot replace %s", path).WithDetail("path", path)
	}
	return nil
}
