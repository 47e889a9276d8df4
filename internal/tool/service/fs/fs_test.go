package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDir_ReturnsImmediateChildren(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "deep.txt"), []byte("d"), 0o644))

	infos, err := NewOSFileSystem().ListDir(root)

	require.NoError(t, err)
	names := map[string]bool{}
	for _, info := range infos {
		names[info.Name()] = info.IsDir()
	}
	assert.Equal(t, map[string]bool{"a.txt": false, "sub": true}, names)
}

func TestListDir_MissingDirectory(t *testing.T) {
	_, err := NewOSFileSystem().ListDir(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, os.IsNotExist(err))
}

func TestListDir_ReportsSymlinkWithoutFollowing(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "target"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(root, "target"), filepath.Join(root, "link")))

	infos, err := NewOSFileSystem().ListDir(root)

	require.NoError(t, err)
	for _, info := range infos {
		if info.Name() == "link" {
			assert.NotZero(t, info.Mode()&os.ModeSymlink)
			return
		}
	}
	t.Fatal("link entry missing")
}

func TestReadFileAndStat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))
	fsys := NewOSFileSystem()

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	info, err := fsys.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
}

func TestListDir_KeepsDanglingSymlink(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	infos, err := NewOSFileSystem().ListDir(root)

	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "dangling", infos[0].Name())

	_, err = NewOSFileSystem().Stat(filepath.Join(root, "dangling"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGetwd(t *testing.T) {
	want, err := os.Getwd()
	require.NoError(t, err)

	got, err := NewOSFileSystem().Getwd()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
