// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with isolated HOME and XDG directories

package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/endlessm/xdg-user-dirs/pkg/filesystem"
	"github.com/endlessm/xdg-user-dirs/pkg/paths"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides HOME, user and system XDG directories and the
// matching Paths and FS
type TestEnvironment struct {
	Root       string
	HomeDir    string
	ConfigHome string
	ConfigDir  string // system config dir, XDG_CONFIG_DIRS
	DataHome   string
	DataDir    string // system data dir, XDG_DATA_DIRS
	StateHome  string

	FS    types.FS
	Paths paths.Paths

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	env.HomeDir = filepath.Join(env.Root, "home", "user")
	env.ConfigHome = filepath.Join(env.HomeDir, ".config")
	env.DataHome = filepath.Join(env.HomeDir, ".local", "share")
	env.StateHome = filepath.Join(env.HomeDir, ".local", "state")
	env.ConfigDir = filepath.Join(env.Root, "etc", "xdg")
	env.DataDir = filepath.Join(env.Root, "usr", "share")

	for _, dir := range []string{env.HomeDir, env.ConfigDir, env.DataDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_CONFIG_DIRS", env.ConfigDir)
	t.Setenv("XDG_DATA_HOME", env.DataHome)
	t.Setenv("XDG_DATA_DIRS", env.DataDir)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "C")

	p, err := paths.New(env.HomeDir)
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	return env
}

// Home returns the absolute path of a home-relative path
func (env *TestEnvironment) Home(rel string) string {
	return paths.Absolute(env.HomeDir, rel)
}

// WriteDefaults installs a system user-dirs.defaults
func (env *TestEnvironment) WriteDefaults(content string) {
	env.t.Helper()
	env.writeFile(filepath.Join(env.ConfigDir, paths.DefaultsFileName), content)
}

// WriteConfig installs a user-dirs.conf in the user config home
func (env *TestEnvironment) WriteConfig(content string) {
	env.t.Helper()
	env.writeFile(filepath.Join(env.ConfigHome, paths.ConfigFileName), content)
}

// WriteUserDirs writes the user's user-dirs.dirs
func (env *TestEnvironment) WriteUserDirs(content string) {
	env.t.Helper()
	env.writeFile(env.Paths.UserDirsFile(), content)
}

// ReadUserDirs returns the user-dirs.dirs content, "" if missing
func (env *TestEnvironment) ReadUserDirs() string {
	data, err := env.FS.ReadFile(env.Paths.UserDirsFile())
	if err != nil {
		return ""
	}
	return string(data)
}

// WriteDescriptor installs a directory descriptor in the system data dir
func (env *TestEnvironment) WriteDescriptor(id, content string) {
	env.t.Helper()
	if !strings.HasSuffix(id, types.DescriptorSuffix) {
		id += types.DescriptorSuffix
	}
	env.writeFile(filepath.Join(env.DataDir, paths.DescriptorDirName, id), content)
}

// WithHomeTree creates a file tree under the home directory
func (env *TestEnvironment) WithHomeTree(tree FileTree) {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.HomeDir, tree)
}

// IsDir reports whether the home-relative or absolute path is a directory
func (env *TestEnvironment) IsDir(path string) bool {
	info, err := env.FS.Stat(env.Home(path))
	return err == nil && info.IsDir()
}

func (env *TestEnvironment) writeFile(path, content string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// FileTree represents a directory structure for testing. String values
// are file contents, FileTree values are subdirectories.
type FileTree map[string]interface{}

func createFileTree(t *testing.T, fs types.FS, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := fs.WriteFile(fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
