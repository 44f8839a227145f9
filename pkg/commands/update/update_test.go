// pkg/commands/update/update_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem in a temp directory
// PURPOSE: Test the update command end to end: config gating, saving and locale recording

package update_test

import (
	"os"
	"testing"

	"github.com/endlessm/xdg-user-dirs/pkg/commands/update"
	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/reconcile"
	"github.com/endlessm/xdg-user-dirs/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defaults = "DESKTOP=Desktop\nMUSIC=Music\n"

func TestUpdate_FirstRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteDefaults(defaults)

	result, err := update.Update(update.Options{Home: env.HomeDir})
	require.NoError(t, err)

	assert.True(t, result.Enabled)
	assert.True(t, result.Changed)
	assert.Equal(t, env.Paths.UserDirsFile(), result.SavedTo)
	assert.True(t, result.LocaleSaved)
	assert.True(t, env.IsDir("Desktop"))
	assert.True(t, env.IsDir("Music"))
	assert.Len(t, result.Events, 2)

	content := env.ReadUserDirs()
	assert.Contains(t, content, `XDG_DESKTOP_DIR="$HOME/Desktop"`)
	assert.Contains(t, content, `XDG_MUSIC_DIR="$HOME/Music"`)

	marker, err := os.ReadFile(env.Paths.LocaleFile())
	require.NoError(t, err)
	assert.Equal(t, "C", string(marker))
}

func TestUpdate_SecondRunIsNoop(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteDefaults(defaults)

	_, err := update.Update(update.Options{Home: env.HomeDir})
	require.NoError(t, err)
	before := env.ReadUserDirs()

	result, err := update.Update(update.Options{Home: env.HomeDir})
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Empty(t, result.SavedTo)
	assert.False(t, result.LocaleSaved)
	assert.Empty(t, result.Events)
	assert.Equal(t, before, env.ReadUserDirs())
}

func TestUpdate_Disabled(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteDefaults(defaults)
	env.WriteConfig("enabled=False\n")

	result, err := update.Update(update.Options{Home: env.HomeDir})
	require.NoError(t, err)
	assert.False(t, result.Enabled)
	assert.Empty(t, env.ReadUserDirs())
	assert.False(t, env.IsDir("Desktop"))
}

func TestUpdate_NoCatalog(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, err := update.Update(update.Options{Home: env.HomeDir})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogUnavailable))
}

func TestUpdate_UnsupportedEncoding(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteDefaults(defaults)
	env.WriteConfig("filename_encoding=NOT-A-CHARSET\n")

	_, err := update.Update(update.Options{Home: env.HomeDir})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Contains(t, err.Error(), "Can't convert from UTF-8 to NOT-A-CHARSET")
}

func TestUpdate_DummyOutput(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteDefaults(defaults)
	dummy := env.Root + "/dummy.dirs"

	result, err := update.Update(update.Options{Home: env.HomeDir, DummyOutput: dummy})
	require.NoError(t, err)

	assert.Equal(t, dummy, result.SavedTo)
	assert.False(t, result.LocaleSaved)
	assert.False(t, env.IsDir("Desktop"))
	assert.Empty(t, env.ReadUserDirs())

	data, err := os.ReadFile(dummy)
	require.NoError(t, err)
	assert.Contains(t, string(data), `XDG_DESKTOP_DIR="$HOME/Desktop"`)
}

func TestUpdate_RepairsStaleEntry(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteDefaults(defaults)
	env.WithHomeTree(testutil.FileTree{"Desktop": testutil.FileTree{}, "Music": testutil.FileTree{}})
	env.WriteUserDirs("XDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_MUSIC_DIR=\"$HOME/Gone\"\n")

	result, err := update.Update(update.Options{Home: env.HomeDir})
	require.NoError(t, err)

	require.True(t, result.Changed)
	var stale bool
	for _, e := range result.Events {
		if e.Role == "MUSIC" && e.Kind == reconcile.EventStaleUserPath {
			stale = true
		}
	}
	assert.True(t, stale, "missing stale event for MUSIC")
	assert.Contains(t, env.ReadUserDirs(), `XDG_MUSIC_DIR="$HOME"`)
	assert.False(t, result.LocaleSaved)
}

func TestUpdate_ReportsSkippedLines(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteDefaults(defaults)
	env.WithHomeTree(testutil.FileTree{"Desktop": testutil.FileTree{}, "Music": testutil.FileTree{}})
	env.WriteUserDirs("XDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_MUSIC_DIR=\"$HOME/Music\"\ngarbage\n")

	result, err := update.Update(update.Options{Home: env.HomeDir})
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Len(t, result.Skipped, 1)
}
