// pkg/commands/set/set_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem in a temp directory
// PURPOSE: Test the set command: validation, home stripping and saving

package set_test

import (
	"os"
	"testing"

	"github.com/endlessm/xdg-user-dirs/pkg/commands/set"
	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name     string
		path     func(env *testutil.TestEnvironment) string
		stored   string
		expected string
	}{
		{
			name:     "under home",
			path:     func(env *testutil.TestEnvironment) string { return env.Home("Media/Tunes") },
			stored:   "Media/Tunes",
			expected: `XDG_MUSIC_DIR="$HOME/Media/Tunes"`,
		},
		{
			name:     "home itself",
			path:     func(env *testutil.TestEnvironment) string { return env.HomeDir },
			stored:   "",
			expected: `XDG_MUSIC_DIR="$HOME"`,
		},
		{
			name:     "outside home",
			path:     func(env *testutil.TestEnvironment) string { return "/srv/music" },
			stored:   "/srv/music",
			expected: `XDG_MUSIC_DIR="/srv/music"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

			result, err := set.Set(set.Options{Home: env.HomeDir, Role: "MUSIC", Path: tt.path(env)})
			require.NoError(t, err)

			assert.Equal(t, tt.stored, result.Stored)
			assert.Equal(t, env.Paths.UserDirsFile(), result.SavedTo)
			assert.Contains(t, env.ReadUserDirs(), tt.expected)
		})
	}
}

func TestSet_KeepsOtherEntries(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteUserDirs("XDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_MUSIC_DIR=\"$HOME/Music\"\n")

	_, err := set.Set(set.Options{Home: env.HomeDir, Role: "MUSIC", Path: env.Home("Audio")})
	require.NoError(t, err)

	content := env.ReadUserDirs()
	assert.Contains(t, content, `XDG_DESKTOP_DIR="$HOME/Desktop"`)
	assert.Contains(t, content, `XDG_MUSIC_DIR="$HOME/Audio"`)
	assert.NotContains(t, content, `$HOME/Music"`)
}

func TestSet_RelativePathRejected(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	_, err := set.Set(set.Options{Home: env.HomeDir, Role: "MUSIC", Path: "Music"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Empty(t, env.ReadUserDirs())
}

func TestSet_WorksWhenDisabled(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteConfig("enabled=False\n")

	_, err := set.Set(set.Options{Home: env.HomeDir, Role: "MUSIC", Path: env.Home("Music")})
	require.NoError(t, err)
	assert.Contains(t, env.ReadUserDirs(), `XDG_MUSIC_DIR="$HOME/Music"`)
}

func TestSet_UnsupportedEncoding(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteConfig("filename_encoding=NOT-A-CHARSET\n")

	_, err := set.Set(set.Options{Home: env.HomeDir, Role: "MUSIC", Path: env.Home("Music")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can't convert from UTF-8 to NOT-A-CHARSET")
}

func TestSet_DummyOutput(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	dummy := env.Root + "/out.dirs"

	result, err := set.Set(set.Options{Home: env.HomeDir, Role: "MUSIC", Path: env.Home("Music"), DummyOutput: dummy})
	require.NoError(t, err)
	assert.Equal(t, dummy, result.SavedTo)
	assert.Empty(t, env.ReadUserDirs())

	data, err := os.ReadFile(dummy)
	require.NoError(t, err)
	assert.Contains(t, string(data), `XDG_MUSIC_DIR="$HOME/Music"`)
}
