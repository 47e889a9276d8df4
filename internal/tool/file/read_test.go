package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Cyclone1070/fsnav/internal/testing/mocks"
	"github.com/Cyclone1070/fsnav/internal/tool/service/fs"
	"github.com/Cyclone1070/fsnav/internal/tool/workdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkdir(t *testing.T, mfs *mocks.MockFileSystem) *workdir.Context {
	t.Helper()
	mfs.CreateDir("/work")
	wd, err := workdir.New(mfs, "/work")
	require.NoError(t, err)
	return wd
}

func TestReadFile_MixedResults(t *testing.T) {
	mfs := mocks.NewMockFileSystem()
	mfs.CreateFile("/work/a.txt", []byte("alpha\n"))
	mfs.CreateFile("/other/b.txt", []byte("beta"))
	mfs.CreateFile("/work/locked.txt", []byte("x"))
	mfs.CreateFile("/work/blob.bin", []byte{0xff, 0xfe, 0x00})
	mfs.CreateDir("/work/dir")
	mfs.SetError("/work/locked.txt", &os.PathError{Op: "open", Path: "/work/locked.txt", Err: os.ErrPermission})

	tool := NewReadFileTool(mfs, nil)
	rec := &mocks.Recorder{}

	resp, err := tool.Run(context.Background(), newWorkdir(t, mfs), rec, ReadFileRequest{
		FilePaths: []string{"a.txt", "/other/b.txt", "missing.txt", "locked.txt", "blob.bin", "dir"},
	})
	require.NoError(t, err)

	assert.Equal(t, "alpha\n", resp.Results["/work/a.txt"])
	assert.Equal(t, "beta", resp.Results["/other/b.txt"])
	assert.Equal(t, PlaceholderNotFound, resp.Results["/work/missing.txt"])
	assert.Equal(t, PlaceholderPermissionDenied, resp.Results["/work/locked.txt"])
	assert.Equal(t, "[Error: file is not valid UTF-8 text]", resp.Results["/work/blob.bin"])
	assert.Contains(t, resp.Results["/work/dir"], "is a directory")
	assert.Equal(t, "Read 6 files.", resp.ResponseMessage)

	descs := rec.Descriptions()
	require.Len(t, descs, 7)
	assert.Equal(t, "Extracting /work/a.txt.", descs[0])
	assert.Equal(t, "Extracted 6 files", descs[6])
	assert.Equal(t, 1, rec.DoneCount())
}

func TestReadFile_SingleFileTerminalEvent(t *testing.T) {
	mfs := mocks.NewMockFileSystem()
	mfs.CreateFile("/work/notes/today.md", []byte("# today"))
	tool := NewReadFileTool(mfs, nil)
	rec := &mocks.Recorder{}

	resp, err := tool.Run(context.Background(), newWorkdir(t, mfs), rec, ReadFileRequest{FilePaths: []string{"notes/today.md"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"/work/notes/today.md": "# today"}, resp.Results)
	assert.Equal(t, "Extracted today.md.", rec.Last().Data.Description)
	assert.True(t, rec.Last().Data.Done)
}

func TestReadFile_NoPaths(t *testing.T) {
	mfs := mocks.NewMockFileSystem()
	tool := NewReadFileTool(mfs, nil)
	rec := &mocks.Recorder{}

	resp, err := tool.Run(context.Background(), newWorkdir(t, mfs), rec, ReadFileRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Results)
	assert.Equal(t, "Read 0 files.", resp.ResponseMessage)
	assert.Equal(t, []string{"Extracted 0 files"}, rec.Descriptions())
}

func TestReadFile_RealFilesystem(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "f.txt"), []byte("line 1\nline 2\n"), 0o644))

	osfs := fs.NewOSFileSystem()
	wd, err := workdir.New(osfs, root)
	require.NoError(t, err)

	resp, err := NewReadFileTool(osfs, nil).Run(context.Background(), wd, nil, ReadFileRequest{FilePaths: []string{"f.txt", "nope.txt"}})
	require.NoError(t, err)
	assert.Equal(t, "line 1\nline 2\n", resp.Results[filepath.Join(root, "f.txt")])
	assert.Equal(t, PlaceholderNotFound, resp.Results[filepath.Join(root, "nope.txt")])
}

func TestReadFile_ContextCancelled(t *testing.T) {
	mfs := mocks.NewMockFileSystem()
	mfs.CreateFile("/work/a.txt", []byte("a"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReadFileTool(mfs, nil).Run(ctx, newWorkdir(t, mfs), nil, ReadFileRequest{FilePaths: []string{"a.txt"}})
	assert.ErrorIs(t, err, context.Canceled)
}
