package workdir

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/Cyclone1070/fsnav/internal/testing/mocks"
	"github.com/Cyclone1070/fsnav/internal/tool/service/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *mocks.MockFileSystem {
	fs := mocks.NewMockFileSystem()
	fs.Cwd = "/home/user"
	fs.CreateDir("/home/user/project/sub")
	fs.CreateDir("/srv")
	fs.CreateFile("/home/user/notes.txt", []byte("n"))
	return fs
}

func TestNew_DefaultsToProcessWorkingDirectory(t *testing.T) {
	c, err := New(newFS(), "")

	require.NoError(t, err)
	assert.Equal(t, "/home/user", c.Initial())
	assert.Equal(t, "/home/user", c.Current())
}

func TestNew_RelativeBaseDirResolvedAgainstCwd(t *testing.T) {
	c, err := New(newFS(), "project")

	require.NoError(t, err)
	assert.Equal(t, "/home/user/project", c.Initial())
}

func TestNew_InvalidBaseDir(t *testing.T) {
	_, err := New(newFS(), "/nope")
	var rootErr *path.RootError
	require.ErrorAs(t, err, &rootErr)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = New(newFS(), "/home/user/notes.txt")
	assert.ErrorIs(t, err, path.ErrNotADirectory)
}

func TestChange_RoundTrip(t *testing.T) {
	c, err := New(newFS(), "")
	require.NoError(t, err)
	rec := &mocks.Recorder{}

	res := c.Change(context.Background(), rec, "project/sub")

	assert.True(t, res.Success)
	assert.Equal(t, "Changed directory to `/home/user/project/sub`.", res.ResponseMessage)
	assert.Equal(t, "/home/user/project/sub", c.Get().CurrentDir)
	require.Len(t, rec.Events(), 1)
	assert.True(t, rec.Last().Data.Done)
	assert.Equal(t, "Changed working directory to /home/user/project/sub.", rec.Last().Data.Description)
}

func TestChange_RelativeToCurrent(t *testing.T) {
	c, _ := New(newFS(), "")
	c.Change(context.Background(), nil, "project")

	res := c.Change(context.Background(), nil, "..")

	assert.True(t, res.Success)
	assert.Equal(t, "/home/user", c.Current())
}

func TestChange_EmptyReturnsToInitial(t *testing.T) {
	c, _ := New(newFS(), "")
	c.Change(context.Background(), nil, "/srv")
	c.Change(context.Background(), nil, "/home/user/project/sub")

	res := c.Change(context.Background(), nil, "")

	assert.True(t, res.Success)
	assert.Equal(t, "/home/user", c.Current())
}

func TestChange_MissingTargetKeepsCurrent(t *testing.T) {
	c, _ := New(newFS(), "")
	c.Change(context.Background(), nil, "/srv")
	rec := &mocks.Recorder{}

	res := c.Change(context.Background(), rec, "/missing")

	assert.False(t, res.Success)
	assert.Equal(t, "Directory `/missing` does not exist. Reverting to `/srv`.", res.ResponseMessage)
	assert.Equal(t, "/srv", c.Current())
	assert.Equal(t, 1, rec.DoneCount())
	assert.Equal(t, "Directory /missing does not exist.", rec.Last().Data.Description)
}

func TestChange_FileTargetKeepsCurrent(t *testing.T) {
	c, _ := New(newFS(), "")

	res := c.Change(context.Background(), nil, "notes.txt")

	assert.False(t, res.Success)
	assert.Contains(t, res.ResponseMessage, "is not a directory")
	assert.Equal(t, "/home/user", c.Current())
}

func TestChange_UnreadableTargetKeepsCurrent(t *testing.T) {
	fs := newFS()
	fs.SetError("/home/user/project", os.ErrPermission)
	c, _ := New(fs, "")

	res := c.Change(context.Background(), nil, "project/../project")

	assert.False(t, res.Success)
	assert.Equal(t, "Directory `project/../project` does not exist. Reverting to `/home/user`.", res.ResponseMessage)
	assert.Equal(t, "/home/user", c.Current())
}

func TestNew_BaseDirIsCleaned(t *testing.T) {
	c, err := New(newFS(), "project/sub/..")

	require.NoError(t, err)
	assert.Equal(t, "/home/user/project", c.Initial())
}

func TestAbs_ResolvesAgainstCurrent(t *testing.T) {
	c, _ := New(newFS(), "")
	c.Change(context.Background(), nil, "/srv")

	assert.Equal(t, "/srv/x.txt", c.Abs("x.txt"))
	assert.Equal(t, "/etc/hosts", c.Abs("/etc/hosts"))
	assert.Equal(t, "/srv", c.Abs(""))
}

type failingGetwd struct{ *mocks.MockFileSystem }

func (failingGetwd) Getwd() (string, error) { return "", errors.New("gone") }

func TestNew_GetwdFailure(t *testing.T) {
	_, err := New(failingGetwd{newFS()}, "/srv")

	var gwErr *GetwdError
	assert.ErrorAs(t, err, &gwErr)
}
