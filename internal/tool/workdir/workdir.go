// Package workdir holds the session-scoped current directory that every tool
// resolves relative paths against.
package workdir

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/Cyclone1070/fsnav/internal/progress"
	"github.com/Cyclone1070/fsnav/internal/tool/service/path"
)

// fileSystem defines the filesystem operations needed by the context.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	Getwd() (string, error)
}

// Context is the working directory of one session. The initial directory is
// fixed at construction; the current directory always names an existing
// directory because Change only commits validated targets.
type Context struct {
	fs      fileSystem
	mu      sync.RWMutex
	initial string
	current string
}

// New creates a Context rooted at baseDir, or at the process working
// directory when baseDir is empty.
func New(fs fileSystem, baseDir string) (*Context, error) {
	cwd, err := fs.Getwd()
	if err != nil {
		return nil, &GetwdError{Cause: err}
	}

	initial := cwd
	if baseDir != "" {
		initial, err = path.AbsDir(fs.Stat, cwd, baseDir)
		if err != nil {
			return nil, err
		}
	}

	return &Context{fs: fs, initial: initial, current: initial}, nil
}

// Initial returns the directory the session started in.
func (c *Context) Initial() string {
	return c.initial
}

// Current returns the current directory.
func (c *Context) Current() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Abs resolves p against the current directory.
func (c *Context) Abs(p string) string {
	return path.Abs(c.Current(), p)
}

// ChangeResult is the outcome of a directory change.
type ChangeResult struct {
	Success         bool   `json:"success"`
	ResponseMessage string `json:"response_message"`
}

// CurrentDirResult is the payload of a current-directory query.
type CurrentDirResult struct {
	CurrentDir string `json:"current_dir"`
}

// Get reports the current directory.
func (c *Context) Get() *CurrentDirResult {
	return &CurrentDirResult{CurrentDir: c.Current()}
}

// Change moves the current directory to target, resolved against the current
// directory. An empty target returns to the initial directory. A missing or
// non-directory target leaves the current directory untouched.
// Exactly one terminal progress event is emitted either way.
func (c *Context) Change(ctx context.Context, reporter progress.Reporter, target string) *ChangeResult {
	reporter = progress.OrNop(reporter)

	c.mu.Lock()
	defer c.mu.Unlock()

	if target == "" {
		target = c.initial
	}
	abs, err := path.AbsDir(c.fs.Stat, c.current, target)
	if errors.Is(err, path.ErrNotADirectory) {
		reporter.Report(ctx, progress.Finished(fmt.Sprintf("%s is not a directory.", target)))
		return &ChangeResult{
			Success:         false,
			ResponseMessage: fmt.Sprintf("`%s` is not a directory. Reverting to `%s`.", target, c.current),
		}
	}
	if err != nil {
		reporter.Report(ctx, progress.Finished(fmt.Sprintf("Directory %s does not exist.", target)))
		return &ChangeResult{
			Success:         false,
			ResponseMessage: fmt.Sprintf("Directory `%s` does not exist. Reverting to `%s`.", target, c.current),
		}
	}

	c.current = abs
	reporter.Report(ctx, progress.Finished(fmt.Sprintf("Changed working directory to %s.", abs)))
	return &ChangeResult{
		Success:         true,
		ResponseMessage: fmt.Sprintf("Changed directory to `%s`.", abs),
	}
}

// GetwdError is returned when the process working directory cannot be determined.
type GetwdError struct {
	Cause error
}

func (e *GetwdError) Error() string {
	return fmt.Sprintf("failed to get working directory: %v", e.Cause)
}
func (e *GetwdError) Unwrap() error { return e.Cause }
