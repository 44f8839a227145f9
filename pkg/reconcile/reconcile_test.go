// pkg/reconcile/reconcile_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem in a temp directory (renames), memory filesystem
// PURPOSE: Test full reconciliation passes: creation, repair, legacy adoption and relocation

package reconcile_test

import (
	"os"
	"testing"

	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/locale"
	"github.com/endlessm/xdg-user-dirs/pkg/mapping"
	"github.com/endlessm/xdg-user-dirs/pkg/reconcile"
	"github.com/endlessm/xdg-user-dirs/pkg/testutil"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standardCatalog = []types.DefaultEntry{
	{Role: "DESKTOP", Template: "Desktop"},
	{Role: "DOWNLOAD", Template: "Downloads"},
	{Role: "TEMPLATES", Template: "Templates"},
	{Role: "PUBLICSHARE", Template: "Public"},
	{Role: "DOCUMENTS", Template: "Documents"},
	{Role: "MUSIC", Template: "Music"},
	{Role: "PICTURES", Template: "Pictures"},
	{Role: "VIDEOS", Template: "Videos"},
	{Role: "org.example.Shots.desktop", Template: "Pictures/Screenshots", Parent: "PICTURES", Label: "Screenshots"},
}

func newIsolatedContext(t *testing.T) (*reconcile.Context, *testutil.TestEnvironment) {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	return reconcile.NewContext(env.HomeDir, env.FS), env
}

func roles(events []reconcile.Event) map[types.Role]reconcile.EventKind {
	out := make(map[types.Role]reconcile.EventKind)
	for _, e := range events {
		out[e.Role] = e.Kind
	}
	return out
}

func TestUpdate_FirstRunMusic(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	m := &mapping.Mapping{}

	result, err := reconcile.Update(ctx, []types.DefaultEntry{{Role: "MUSIC", Template: "Music"}}, m)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.True(t, env.IsDir("Music"))
	assert.Equal(t, []types.UserEntry{{Role: "MUSIC", Path: "Music"}}, m.Entries())
	require.Len(t, result.Events, 1)
	assert.Equal(t, reconcile.EventCreated, result.Events[0].Kind)
	assert.Equal(t, env.Home("Music"), result.Events[0].Path)
	assert.Empty(t, result.Events[0].Message())
}

func TestUpdate_Idempotent(t *testing.T) {
	for _, force := range []bool{false, true} {
		ctx, env := newIsolatedContext(t)
		ctx.Translator = frenchLabels
		m := &mapping.Mapping{}

		first, err := reconcile.Update(ctx, standardCatalog, m)
		require.NoError(t, err)
		assert.True(t, first.Changed)
		assert.True(t, env.IsDir("Images/Screenshots"))
		snapshot := m.Entries()

		ctx.Force = force
		second, err := reconcile.Update(ctx, standardCatalog, m)
		require.NoError(t, err)

		assert.False(t, second.Changed, "force=%v", force)
		assert.Empty(t, second.Events, "force=%v", force)
		assert.Equal(t, snapshot, m.Entries(), "force=%v", force)
	}
}

func TestUpdate_VisitsAncestorsFirst(t *testing.T) {
	ctx, _ := newMemoryContext(t)
	ctx.Dummy = true

	catalog := []types.DefaultEntry{
		{Role: "org.example.Shots.desktop", Template: "Pictures/Screenshots", Parent: "PICTURES", Label: "Screenshots"},
		{Role: "PICTURES", Template: "Pictures"},
		{Role: "MUSIC", Template: "Music"},
		{Role: "DESKTOP", Template: "Desktop"},
	}

	result, err := reconcile.Update(ctx, catalog, &mapping.Mapping{})
	require.NoError(t, err)

	assert.Equal(t, []types.Role{"DESKTOP", "MUSIC", "PICTURES", "org.example.Shots.desktop"}, result.Visited)
}

func TestUpdate_MusicIsRegularFile(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	env.WithHomeTree(testutil.FileTree{"Music": "not a directory"})
	m, err := mapping.New(types.UserEntry{Role: "MUSIC", Path: "Music"})
	require.NoError(t, err)

	result, err := reconcile.Update(ctx, []types.DefaultEntry{{Role: "MUSIC", Template: "Music"}}, m)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, []types.UserEntry{{Role: "MUSIC", Path: ""}}, m.Entries())
	require.Len(t, result.Events, 1)

	event := result.Events[0]
	assert.Equal(t, reconcile.EventStaleUserPath, event.Kind)
	assert.True(t, event.IsError())
	assert.True(t, errors.IsErrorCode(event.Err, errors.ErrStaleUserPath))
	assert.Equal(t, env.Home("Music")+" was removed, reassigning MUSIC to homedir", event.Message())

	data, err := os.ReadFile(env.Home("Music"))
	require.NoError(t, err)
	assert.Equal(t, "not a directory", string(data), "the file must be left alone")
}

func TestUpdate_ExistingValidEntriesKept(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = frenchLabels
	env.WithHomeTree(testutil.FileTree{"Tunes": testutil.FileTree{}})
	m, err := mapping.New(
		types.UserEntry{Role: "MUSIC", Path: "Tunes"},
		types.UserEntry{Role: "DESKTOP", Path: ""},
	)
	require.NoError(t, err)

	result, err := reconcile.Update(ctx, standardCatalog[:1], m)
	require.NoError(t, err)
	assert.False(t, result.Changed)

	result, err = reconcile.Update(ctx, []types.DefaultEntry{{Role: "MUSIC", Template: "Music"}}, m)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.False(t, env.IsDir("Musique"))
}

func TestUpdate_LegacyAdoption(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = frenchLabels
	env.WithHomeTree(testutil.FileTree{"Desktop": testutil.FileTree{"todo.txt": "x"}})
	m := &mapping.Mapping{}

	result, err := reconcile.Update(ctx, []types.DefaultEntry{{Role: "DESKTOP", Template: "Desktop"}}, m)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, []types.UserEntry{{Role: "DESKTOP", Path: "Desktop"}}, m.Entries())
	assert.False(t, env.IsDir("Bureau"))
}

func TestUpdate_ForceSkipsLegacy(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = frenchLabels
	ctx.Force = true
	env.WithHomeTree(testutil.FileTree{"Desktop": testutil.FileTree{}})
	m := &mapping.Mapping{}

	_, err := reconcile.Update(ctx, []types.DefaultEntry{{Role: "DESKTOP", Template: "Desktop"}}, m)
	require.NoError(t, err)

	assert.Equal(t, []types.UserEntry{{Role: "DESKTOP", Path: "Bureau"}}, m.Entries())
	assert.True(t, env.IsDir("Bureau"))
}

func TestUpdate_RelocateDownloads(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = frenchLabels
	ctx.Force = true
	ctx.Move = true
	env.WithHomeTree(testutil.FileTree{
		"Downloads": testutil.FileTree{"report.pdf": "pdf", "sub": testutil.FileTree{"a.txt": "a"}},
	})
	m, err := mapping.New(types.UserEntry{Role: "DOWNLOAD", Path: "Downloads"})
	require.NoError(t, err)

	result, err := reconcile.Update(ctx, []types.DefaultEntry{{Role: "DOWNLOAD", Template: "Downloads"}}, m)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, []types.UserEntry{{Role: "DOWNLOAD", Path: "Téléchargements"}}, m.Entries())
	assert.False(t, env.IsDir("Downloads"))

	data, err := os.ReadFile(env.Home("Téléchargements/report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(data))
	assert.FileExists(t, env.Home("Téléchargements/sub/a.txt"))

	require.Len(t, result.Events, 1)
	event := result.Events[0]
	assert.Equal(t, reconcile.EventMoved, event.Kind)
	assert.True(t, event.Relocated)
	assert.Equal(t, "Moving DOWNLOAD directory from Downloads to Téléchargements", event.Message())
}

func TestUpdate_ForceWithoutMoveCreatesNewDirectory(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = frenchLabels
	ctx.Force = true
	env.WithHomeTree(testutil.FileTree{"Downloads": testutil.FileTree{"report.pdf": "pdf"}})
	m, err := mapping.New(types.UserEntry{Role: "DOWNLOAD", Path: "Downloads"})
	require.NoError(t, err)

	result, err := reconcile.Update(ctx, []types.DefaultEntry{{Role: "DOWNLOAD", Template: "Downloads"}}, m)
	require.NoError(t, err)

	assert.True(t, env.IsDir("Downloads"))
	assert.True(t, env.IsDir("Téléchargements"))
	assert.FileExists(t, env.Home("Downloads/report.pdf"))
	require.Len(t, result.Events, 1)
	assert.False(t, result.Events[0].Relocated)
}

func TestUpdate_ForceWithoutMovePropagates(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = frenchLabels
	ctx.Force = true
	env.WithHomeTree(testutil.FileTree{"Pictures": testutil.FileTree{"work": testutil.FileTree{}}})
	m, err := mapping.New(
		types.UserEntry{Role: "PICTURES", Path: "Pictures"},
		types.UserEntry{Role: "PROJECTS", Path: "Pictures/work"},
	)
	require.NoError(t, err)

	result, err := reconcile.Update(ctx, []types.DefaultEntry{{Role: "PICTURES", Template: "Pictures"}}, m)
	require.NoError(t, err)

	assert.Equal(t, []types.UserEntry{
		{Role: "PICTURES", Path: "Images"},
		{Role: "PROJECTS", Path: "Images/work"},
	}, m.Entries())
	assert.True(t, env.IsDir("Pictures/work"))
	assert.True(t, env.IsDir("Images"))

	require.Len(t, result.Events, 1)
	assert.False(t, result.Events[0].Relocated)
	assert.Equal(t, []types.Role{"PROJECTS"}, result.Events[0].Propagated)
}

func TestUpdate_TrailingSlashParentRelocates(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = frenchLabels
	ctx.Force = true
	ctx.Move = true
	env.WithHomeTree(testutil.FileTree{"Pictures": testutil.FileTree{"work": testutil.FileTree{"a.txt": "a"}}})
	m, err := mapping.New(
		types.UserEntry{Role: "PICTURES", Path: "Pictures/"},
		types.UserEntry{Role: "PROJECTS", Path: "Pictures/work"},
	)
	require.NoError(t, err)

	_, err = reconcile.Update(ctx, []types.DefaultEntry{{Role: "PICTURES", Template: "Pictures"}}, m)
	require.NoError(t, err)

	assert.Equal(t, []types.UserEntry{
		{Role: "PICTURES", Path: "Images"},
		{Role: "PROJECTS", Path: "Images/work"},
	}, m.Entries())
	assert.FileExists(t, env.Home("Images/work/a.txt"))
}

func TestUpdate_UnresolvableTemplateReportsPath(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	m := &mapping.Mapping{}

	result, err := reconcile.Update(ctx, []types.DefaultEntry{{Role: "OUTSIDE", Template: "../outside"}}, m)
	require.NoError(t, err)

	require.Len(t, result.Events, 1)
	event := result.Events[0]
	assert.Equal(t, reconcile.EventDirectoryCreateFailure, event.Kind)
	assert.Equal(t, "Can't create dir "+env.HomeDir+"/../outside", event.Message())
	assert.True(t, errors.IsErrorCode(event.Err, errors.ErrInvalidInput))
	assert.Zero(t, m.Len())
}

func TestUpdate_RelocationPropagatesToNestedRoles(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = frenchLabels
	ctx.Force = true
	ctx.Move = true
	env.WithHomeTree(testutil.FileTree{
		"Pictures": testutil.FileTree{
			"Screenshots": testutil.FileTree{"shot.png": "png"},
			"work":        testutil.FileTree{"2024": testutil.FileTree{"plan.txt": "plan"}},
		},
	})
	m, err := mapping.New(
		types.UserEntry{Role: "PICTURES", Path: "Pictures"},
		types.UserEntry{Role: "org.example.Shots.desktop", Path: "Pictures/Screenshots"},
		types.UserEntry{Role: "PROJECTS", Path: "Pictures/work/2024"},
	)
	require.NoError(t, err)

	catalog := []types.DefaultEntry{
		{Role: "org.example.Shots.desktop", Template: "Pictures/Screenshots", Parent: "PICTURES", Label: "Screenshots"},
		{Role: "PICTURES", Template: "Pictures"},
	}
	result, err := reconcile.Update(ctx, catalog, m)
	require.NoError(t, err)

	assert.Equal(t, []types.UserEntry{
		{Role: "PICTURES", Path: "Images"},
		{Role: "org.example.Shots.desktop", Path: "Images/Screenshots"},
		{Role: "PROJECTS", Path: "Images/work/2024"},
	}, m.Entries())
	assert.FileExists(t, env.Home("Images/Screenshots/shot.png"))
	assert.FileExists(t, env.Home("Images/work/2024/plan.txt"))
	assert.False(t, env.IsDir("Pictures"))

	require.Len(t, result.Events, 1)
	assert.Equal(t, []types.Role{"org.example.Shots.desktop", "PROJECTS"}, result.Events[0].Propagated)
}

func TestUpdate_RenameOntoExistingDirectoryFallsBack(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = frenchLabels
	ctx.Force = true
	ctx.Move = true
	env.WithHomeTree(testutil.FileTree{
		"Music":   testutil.FileTree{"old.ogg": "old"},
		"Musique": testutil.FileTree{"new.ogg": "new"},
	})
	m, err := mapping.New(types.UserEntry{Role: "MUSIC", Path: "Music"})
	require.NoError(t, err)

	result, err := reconcile.Update(ctx, []types.DefaultEntry{{Role: "MUSIC", Template: "Music"}}, m)
	require.NoError(t, err)

	assert.Equal(t, []types.UserEntry{{Role: "MUSIC", Path: "Musique"}}, m.Entries())
	assert.FileExists(t, env.Home("Music/old.ogg"))
	assert.FileExists(t, env.Home("Musique/new.ogg"))
	require.Len(t, result.Events, 1)
	assert.False(t, result.Events[0].Relocated)
	assert.Empty(t, result.Events[0].Propagated)
}

func TestUpdate_DirectoryCreateFailure(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	env.WithHomeTree(testutil.FileTree{"blocker": "file"})
	m := &mapping.Mapping{}

	catalog := []types.DefaultEntry{
		{Role: "BLOCKED", Template: "blocker/sub"},
		{Role: "MUSIC", Template: "Music"},
	}
	result, err := reconcile.Update(ctx, catalog, m)
	require.NoError(t, err)

	kinds := roles(result.Events)
	assert.Equal(t, reconcile.EventDirectoryCreateFailure, kinds["BLOCKED"])
	assert.Equal(t, reconcile.EventCreated, kinds["MUSIC"])

	_, ok := m.Get("BLOCKED")
	assert.False(t, ok, "failed role must stay unassigned so it is retried")
	assert.True(t, result.Changed)

	for _, e := range result.Events {
		if e.Kind == reconcile.EventDirectoryCreateFailure {
			assert.True(t, errors.IsErrorCode(e.Err, errors.ErrDirCreate))
			assert.Equal(t, "Can't create dir "+env.Home("blocker/sub"), e.Message())
		}
	}
}

func TestUpdate_DummyTouchesNothing(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = frenchLabels
	ctx.Dummy = true
	ctx.Force = true
	ctx.Move = true
	env.WithHomeTree(testutil.FileTree{"Pictures": testutil.FileTree{"work": testutil.FileTree{}}})
	m, err := mapping.New(
		types.UserEntry{Role: "PICTURES", Path: "Pictures"},
		types.UserEntry{Role: "PROJECTS", Path: "Pictures/work"},
	)
	require.NoError(t, err)

	result, err := reconcile.Update(ctx, standardCatalog, m)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.True(t, env.IsDir("Pictures/work"))
	assert.False(t, env.IsDir("Images"))
	assert.False(t, env.IsDir("Musique"))

	e, _ := m.Get("PROJECTS")
	assert.Equal(t, "Images/work", e.Path)
	e, _ = m.Get("MUSIC")
	assert.Equal(t, "Musique", e.Path)
}

func TestUpdate_EncodedNames(t *testing.T) {
	ctx, env := newIsolatedContext(t)
	ctx.Translator = locale.MapTranslator{"Music": "Musik"}
	ctx.Encoder = testutil.UpperEncoder{}
	m := &mapping.Mapping{}

	_, err := reconcile.Update(ctx, []types.DefaultEntry{{Role: "MUSIC", Template: "Music"}}, m)
	require.NoError(t, err)

	assert.True(t, env.IsDir("MUSIK"))
	assert.Equal(t, []types.UserEntry{{Role: "MUSIC", Path: "MUSIK"}}, m.Entries())
}

func TestUpdate_NilMapping(t *testing.T) {
	ctx, _ := newMemoryContext(t)

	_, err := reconcile.Update(ctx, standardCatalog, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}
