package search

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/Cyclone1070/fsnav/internal/config"
	"github.com/Cyclone1070/fsnav/internal/logging"
	"github.com/Cyclone1070/fsnav/internal/progress"
	"github.com/Cyclone1070/fsnav/internal/tool/helper/content"
)

// SearchLinesTool handles line-level content searching across files.
type SearchLinesTool struct {
	fs     fileSystem
	config *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewSearchLinesTool creates a new SearchLinesTool with injected dependencies.
func NewSearchLinesTool(fs fileSystem, cfg *config.Config, logger *slog.Logger) *SearchLinesTool {
	return &SearchLinesTool{
		fs:     fs,
		config: cfg,
		logger: logging.OrDiscard(logger),
		now:    time.Now,
	}
}

// Run scans each file in order for lines matching any pattern and records one
// block per matching line, spanning ContextLines lines on each side and
// clipped to the file. Overlapping blocks are kept separate.
//
// Files without a match are left out of the results; files that cannot be read
// get a placeholder instead and the search moves on. Once TimeLimit is used up
// no further files are opened and the collected results are returned.
func (t *SearchLinesTool) Run(ctx context.Context, wd resolver, reporter progress.Reporter, req SearchLinesRequest) (*SearchLinesResponse, error) {
	reporter = progress.OrNop(reporter)
	start := t.now()

	if len(req.Patterns) == 0 {
		return nil, &PatternRequiredError{}
	}

	contextLines := t.config.Tools.DefaultContextLines
	if req.ContextLines != nil {
		contextLines = *req.ContextLines
	}
	if contextLines < 0 {
		return nil, &NegativeValueError{Field: "context_lines", Value: int64(contextLines)}
	}
	timeLimit := t.config.Tools.DefaultSearchTimeLimit
	if req.TimeLimit != nil {
		timeLimit = *req.TimeLimit
	}

	patterns := make([]*regexp.Regexp, 0, len(req.Patterns))
	for _, p := range req.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: p, Cause: err}
		}
		patterns = append(patterns, re)
	}

	results := make(map[string]FileMatches)

	for i, p := range req.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if timeLimit >= 0 && t.now().Sub(start).Seconds() > timeLimit {
			message := fmt.Sprintf("Time limit exceeded. Processed %d files.", i)
			reporter.Report(ctx, progress.Finished(message))
			t.logger.DebugContext(ctx, "content search hit time limit", "processed", i, "total", len(req.Paths))
			return &SearchLinesResponse{
				Results:         results,
				ResponseMessage: message,
				TimeElapsed:     t.now().Sub(start).Seconds(),
			}, nil
		}

		abs := wd.Abs(p)
		reporter.Report(ctx, progress.Working(fmt.Sprintf("Extracting lines from %s.", abs)))

		data, err := t.fs.ReadFile(abs)
		if err != nil {
			t.logger.DebugContext(ctx, "cannot read file", "path", abs, "error", err)
			results[p] = FileMatches{Err: placeholder(err)}
			continue
		}

		blocks := matchBlocks(content.SplitLinesKeepEnds(content.DecodeText(data)), patterns, contextLines)
		if len(blocks) > 0 {
			results[p] = FileMatches{Blocks: blocks}
		}
	}

	matched := 0
	for _, m := range results {
		if !m.Failed() {
			matched++
		}
	}

	reporter.Report(ctx, progress.Finished(fmt.Sprintf("Found %d/%d files containing matches.", matched, len(req.Paths))))

	return &SearchLinesResponse{
		Results:         results,
		ResponseMessage: fmt.Sprintf("Processed %d files. Found %d files containing matches.", len(req.Paths), matched),
		TimeElapsed:     t.now().Sub(start).Seconds(),
	}, nil
}

// matchBlocks returns one joined block of lines around every matching line.
// Patterns are tested against the line without its terminator; the block keeps
// terminators so it reproduces the file text verbatim.
func matchBlocks(lines []string, patterns []*regexp.Regexp, contextLines int) []string {
	var blocks []string
	for idx, line := range lines {
		if !matchesAny(patterns, trimEOL(line)) {
			continue
		}
		from := max(0, idx-contextLines)
		to := min(len(lines), idx+contextLines+1)
		blocks = append(blocks, strings.Join(lines[from:to], ""))
	}
	return blocks
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// placeholder maps a read failure to the text recorded for that file.
func placeholder(err error) string {
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		return PlaceholderNotFound
	case errors.Is(err, iofs.ErrPermission):
		return PlaceholderPermissionDenied
	default:
		return fmt.Sprintf("[Error: %v]", err)
	}
}
