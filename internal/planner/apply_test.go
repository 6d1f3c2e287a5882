package planner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PrefixRenUtil/internal/apperr"
)

const dir = "/photos"

func newFolder(t *testing.T, names ...string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	for _, n := range names {
		require.NoError(t, util.WriteFile(fs, fs.Join(dir, n), []byte(n), 0o644))
	}
	return fs
}

func assertContent(t *testing.T, fs billy.Filesystem, name, want string) {
	t.Helper()
	data, err := util.ReadFile(fs, fs.Join(dir, name))
	require.NoError(t, err, name)
	assert.Equal(t, want, string(data), name)
}

func assertMissing(t *testing.T, fs billy.Filesystem, name string) {
	t.Helper()
	_, err := fs.Stat(fs.Join(dir, name))
	assert.True(t, os.IsNotExist(err), "%s should not exist", name)
}

var photoParams = Params{OldPrefix: "img_", NewPrefix: "photo", Separator: "-"}

func TestApplyRenamesPlan(t *testing.T) {
	fs := newFolder(t, "img_001.png", "img_002.png", "notes.txt")
	plan, err := Build([]string{"img_001.png", "img_002.png", "notes.txt"}, photoParams)
	require.NoError(t, err)

	res := NewApplier(fs).Apply(dir, plan)

	assert.Equal(t, 2, res.Renamed())
	assert.Zero(t, res.Skipped())
	assert.Zero(t, res.Failed())
	assert.NoError(t, res.Err())

	assertContent(t, fs, "photo-001.png", "img_001.png")
	assertContent(t, fs, "photo-002.png", "img_002.png")
	assertContent(t, fs, "notes.txt", "notes.txt")
	assertMissing(t, fs, "img_001.png")
	assertMissing(t, fs, "img_002.png")
}

func TestApplySkipsExistingTarget(t *testing.T) {
	fs := newFolder(t, "img_001.png", "img_002.png", "notes.txt", "photo-001.png")
	plan, err := Build([]string{"img_001.png", "img_002.png", "notes.txt"}, photoParams)
	require.NoError(t, err)

	res := NewApplier(fs).Apply(dir, plan)

	require.Len(t, res.Items, 2)
	assert.Equal(t, StatusSkipped, res.Items[0].Status)
	assert.Equal(t, StatusRenamed, res.Items[1].Status)
	assert.Equal(t, 1, res.Renamed())
	assert.Equal(t, 1, res.Skipped())
	assert.NoError(t, res.Err())

	assertContent(t, fs, "img_001.png", "img_001.png")
	assertContent(t, fs, "photo-001.png", "photo-001.png")
	assertContent(t, fs, "photo-002.png", "img_002.png")
}

func TestApplyTwiceRenamesOnce(t *testing.T) {
	fs := newFolder(t, "img_001.png", "img_002.png")
	plan, err := Build([]string{"img_001.png", "img_002.png"}, photoParams)
	require.NoError(t, err)
	a := NewApplier(fs)

	first := a.Apply(dir, plan)
	assert.Equal(t, 2, first.Renamed())

	second := a.Apply(dir, plan)
	assert.Zero(t, second.Renamed())
	assert.Equal(t, 2, second.Skipped())

	assertContent(t, fs, "photo-001.png", "img_001.png")
	assertContent(t, fs, "photo-002.png", "img_002.png")
}

func TestApplyEmptyPlan(t *testing.T) {
	fs := newFolder(t, "a")

	res := NewApplier(fs).Apply(dir, nil)
	assert.Empty(t, res.Items)
	assert.NoError(t, res.Err())
	assertContent(t, fs, "a", "a")
}

func TestApplyFirstCollisionWins(t *testing.T) {
	fs := newFolder(t, "img_1", "pic_1")
	plan := Plan{
		{Original: "img_1", Proposed: "x_1"},
		{Original: "pic_1", Proposed: "x_1"},
	}

	res := NewApplier(fs).Apply(dir, plan)

	assert.Equal(t, StatusRenamed, res.Items[0].Status)
	assert.Equal(t, StatusSkipped, res.Items[1].Status)
	assertContent(t, fs, "x_1", "img_1")
	assertContent(t, fs, "pic_1", "pic_1")
}

func TestApplyChainedNames(t *testing.T) {
	fs := newFolder(t, "a1", "aa1")
	plan, err := Build([]string{"a1", "aa1"}, Params{OldPrefix: "a"})
	require.NoError(t, err)

	res := NewApplier(fs).Apply(dir, plan)

	assert.Equal(t, 2, res.Renamed())
	assertContent(t, fs, "1", "a1")
	assertContent(t, fs, "a1", "aa1")
}

func TestApplyContinuesAfterFailure(t *testing.T) {
	fs := newFolder(t, "img_2")
	plan := Plan{
		{Original: "img_1", Proposed: "photo_1"},
		{Original: "img_2", Proposed: "photo_2"},
	}

	res := NewApplier(fs).Apply(dir, plan)

	require.Len(t, res.Items, 2)
	assert.Equal(t, StatusFailed, res.Items[0].Status)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(res.Items[0].Err))
	assert.NotEmpty(t, res.Items[0].Reason)
	assert.Equal(t, StatusRenamed, res.Items[1].Status)

	assert.Equal(t, 1, res.Failed())
	require.Len(t, res.Failures(), 1)
	assert.Equal(t, "img_1", res.Failures()[0].Original)
	assert.ErrorIs(t, res.Err(), res.Items[0].Err)
	assertContent(t, fs, "photo_2", "img_2")
}

func TestApplyRejectsPathSeparator(t *testing.T) {
	fs := newFolder(t, "img_1")
	require.NoError(t, fs.MkdirAll(fs.Join(dir, "sub"), 0o755))

	plan, err := Build([]string{"img_1"}, Params{OldPrefix: "img", NewPrefix: "sub", Separator: "/"})
	require.NoError(t, err)
	require.Equal(t, "sub/_1", plan[0].Proposed)

	res := NewApplier(fs).Apply(dir, plan)

	assert.Equal(t, StatusFailed, res.Items[0].Status)
	assert.Equal(t, apperr.CodeInvalidInput, apperr.CodeOf(res.Items[0].Err))
	assertContent(t, fs, "img_1", "img_1")
}

func TestApplyEmptyProposalIsSkipped(t *testing.T) {
	fs := newFolder(t, "img_")
	plan, err := Build([]string{"img_"}, Params{OldPrefix: "img_"})
	require.NoError(t, err)
	require.Equal(t, "", plan[0].Proposed)

	res := NewApplier(fs).Apply(dir, plan)

	assert.Equal(t, StatusSkipped, res.Items[0].Status)
	assertContent(t, fs, "img_", "img_")
}

func TestApplySkipsDanglingSymlinkTarget(t *testing.T) {
	fs := newFolder(t, "img_001.png")
	require.NoError(t, fs.Symlink(fs.Join(dir, "missing.png"), fs.Join(dir, "photo-001.png")))
	plan, err := Build([]string{"img_001.png"}, photoParams)
	require.NoError(t, err)

	res := NewApplier(fs).Apply(dir, plan)

	require.Len(t, res.Items, 1)
	assert.Equal(t, StatusSkipped, res.Items[0].Status)
	assertContent(t, fs, "img_001.png", "img_001.png")

	target, err := fs.Readlink(fs.Join(dir, "photo-001.png"))
	require.NoError(t, err)
	assert.Equal(t, fs.Join(dir, "missing.png"), target)
}

func TestApplyOSFilesystem(t *testing.T) {
	root := t.TempDir()
	for _, n := range []string{"img_001.png", "img_002.png", "notes.txt", "photo-001.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, n), []byte(n), 0o644))
	}
	plan, err := Build([]string{"img_001.png", "img_002.png", "notes.txt"}, photoParams)
	require.NoError(t, err)

	res := NewApplier(osfs.New("/")).Apply(root, plan)

	assert.Equal(t, 1, res.Renamed())
	assert.Equal(t, 1, res.Skipped())
	assert.FileExists(t, filepath.Join(root, "img_001.png"))
	assert.FileExists(t, filepath.Join(root, "photo-002.png"))
	assert.NoFileExists(t, filepath.Join(root, "img_002.png"))
}
