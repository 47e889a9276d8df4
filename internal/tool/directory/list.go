package directory

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Cyclone1070/fsnav/internal/config"
	"github.com/Cyclone1070/fsnav/internal/logging"
	"github.com/Cyclone1070/fsnav/internal/progress"
	"github.com/Cyclone1070/fsnav/internal/tool/paginationutil"
	"github.com/Cyclone1070/fsnav/internal/tool/service/git"
)

// ListDirectoryTool handles directory listing operations.
type ListDirectoryTool struct {
	fs     listFileSystem
	config *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewListDirectoryTool creates a new ListDirectoryTool with injected dependencies.
func NewListDirectoryTool(fs listFileSystem, cfg *config.Config, logger *slog.Logger) *ListDirectoryTool {
	return &ListDirectoryTool{
		fs:     fs,
		config: cfg,
		logger: logging.OrDiscard(logger),
		now:    time.Now,
	}
}

// Run lists the immediate children of a directory, sorted by name.
// Hidden entries are dropped unless requested, then StartFrom entries are
// skipped and at most Limit are returned (a negative limit returns all).
func (t *ListDirectoryTool) Run(ctx context.Context, wd resolver, reporter progress.Reporter, req ListRequest) (*ListResponse, error) {
	reporter = progress.OrNop(reporter)
	start := t.now()

	limit := t.config.Tools.DefaultListLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	base := wd.Abs(req.BaseDir)
	info, err := t.fs.Stat(base)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, &FileMissingError{Path: base}
		}
		return nil, &ListDirError{Path: base, Cause: err}
	}
	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: base}
	}

	reporter.Report(ctx, progress.Working(fmt.Sprintf("Finding files in %s.", base)))

	entries, err := t.fs.ListDir(base)
	if err != nil {
		return nil, &ListDirError{Path: base, Cause: err}
	}

	var matcher *git.IgnoreMatcher
	if req.RespectGitignore {
		matcher, err = git.NewIgnoreMatcher(base, t.fs)
		if err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !req.ShowHidden && strings.HasPrefix(name, t.config.Tools.HiddenPrefix) {
			continue
		}
		if matcher.ShouldIgnore(name, entry.IsDir()) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	page, pagination := paginationutil.ApplyPagination(names, req.StartFrom, limit)

	results := make([]string, 0, len(page))
	for _, name := range page {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if req.AbsPath {
			results = append(results, filepath.Join(base, name))
		} else {
			results = append(results, name)
		}
		reporter.Report(ctx, progress.Working(fmt.Sprintf("Found %d files from %s.", len(results), base)))
	}

	message := fmt.Sprintf("Found %d files from %s.", len(results), base)
	if pagination.Truncated {
		message = fmt.Sprintf("Limit exceeded. Returned %d/%d files.", len(results), pagination.Available)
	}
	reporter.Report(ctx, progress.Finished(fmt.Sprintf("Found %d files from %s.", len(results), base)))

	t.logger.DebugContext(ctx, "listed directory",
		"dir", base, "returned", len(results), "eligible", pagination.TotalCount)

	return &ListResponse{
		Results:         results,
		ResponseMessage: message,
		TimeElapsed:     t.now().Sub(start).Seconds(),
	}, nil
}
