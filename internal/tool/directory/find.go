package directory

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Cyclone1070/fsnav/internal/config"
	"github.com/Cyclone1070/fsnav/internal/logging"
	"github.com/Cyclone1070/fsnav/internal/progress"
)

// FindFileTool searches for files by name, level by level.
type FindFileTool struct {
	fs     fileSystem
	config *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewFindFileTool creates a new FindFileTool with injected dependencies.
func NewFindFileTool(fs fileSystem, cfg *config.Config, logger *slog.Logger) *FindFileTool {
	return &FindFileTool{
		fs:     fs,
		config: cfg,
		logger: logging.OrDiscard(logger),
		now:    time.Now,
	}
}

// Run walks the tree under req.Path breadth first and collects every
// non-directory entry whose bare name matches any include pattern.
//
// A directory whose full path matches an exclude pattern is skipped when it is
// dequeued, so its whole subtree is pruned. Directories deeper than MaxLevel
// are never queued. When TimeLimit runs out the results found so far are
// returned with an explanatory message; this is not an error. Unreadable
// directories are skipped.
func (t *FindFileTool) Run(ctx context.Context, wd resolver, reporter progress.Reporter, req FindRequest) (*FindResponse, error) {
	reporter = progress.OrNop(reporter)

	if len(req.Patterns) == 0 {
		return nil, &PatternRequiredError{}
	}

	timeLimit := t.config.Tools.DefaultFindTimeLimit
	if req.TimeLimit != nil {
		timeLimit = *req.TimeLimit
	}
	maxDepth := t.config.Tools.DefaultFindMaxDepth
	if req.MaxLevel != nil {
		maxDepth = *req.MaxLevel
	}

	root := wd.Abs(req.Path)
	info, err := t.fs.Stat(root)
	if err != nil {
		shown := req.Path
		if shown == "" {
			shown = root
		}
		message := fmt.Sprintf("Path `%s` does not exist.", shown)
		reporter.Report(ctx, progress.Finished(message))
		return &FindResponse{Results: []string{}, ResponseMessage: message}, nil
	}

	include, err := compilePatterns(req.Patterns)
	if err != nil {
		return nil, err
	}
	exclude, err := compilePatterns(req.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, &NotDirectoryError{Path: root}
	}

	start := t.now()
	patterns := strings.Join(req.Patterns, ", ")
	reporter.Report(ctx, progress.Working(fmt.Sprintf("Searching for %s in %s.", patterns, root)))

	results := []string{}
	frontier := []frontierEntry{{dir: root, depth: 0}}

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := frontier[0]
		frontier = frontier[1:]

		if matchesAny(exclude, current.dir) {
			continue
		}

		if timeLimit != -1 && t.now().Sub(start).Seconds() > timeLimit {
			sort.Strings(results)
			reporter.Report(ctx, progress.Finished(fmt.Sprintf("Time limit exceeded. Found %d files", len(results))))
			t.logger.DebugContext(ctx, "filename search hit time limit",
				"root", root, "depth", current.depth, "found", len(results))
			return &FindResponse{
				Results:         results,
				ResponseMessage: fmt.Sprintf("Time limit exceeded after %d levels. Found %d files.", current.depth, len(results)),
				TimeElapsed:     t.now().Sub(start).Seconds(),
			}, nil
		}

		entries, err := t.fs.ListDir(current.dir)
		if err != nil {
			t.logger.DebugContext(ctx, "skipping unreadable directory", "dir", current.dir, "error", err)
			continue
		}

		reporter.Report(ctx, progress.Working(fmt.Sprintf("Searching for %s in %s.", patterns, current.dir)))

		for _, entry := range entries {
			full := filepath.Join(current.dir, entry.Name())
			if t.isDir(full, entry) {
				if maxDepth < 0 || current.depth < maxDepth {
					frontier = append(frontier, frontierEntry{dir: full, depth: current.depth + 1})
				}
				continue
			}
			if matchesAny(include, entry.Name()) {
				results = append(results, full)
			}
		}
	}

	sort.Strings(results)
	message := fmt.Sprintf("Found %d matching files.", len(results))
	reporter.Report(ctx, progress.Finished(message))

	return &FindResponse{
		Results:         results,
		ResponseMessage: message,
		TimeElapsed:     t.now().Sub(start).Seconds(),
	}, nil
}

// isDir reports whether entry is a directory, following symlinks.
func (t *FindFileTool) isDir(full string, entry os.FileInfo) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Mode()&os.ModeSymlink == 0 {
		return false
	}
	info, err := t.fs.Stat(full)
	return err == nil && info.IsDir()
}
