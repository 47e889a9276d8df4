package file

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path/filepath"
	"unicode/utf8"

	"github.com/Cyclone1070/fsnav/internal/logging"
	"github.com/Cyclone1070/fsnav/internal/progress"
)

// ReadFileTool handles file reading operations.
type ReadFileTool struct {
	fileOps fileReader
	logger  *slog.Logger
}

// NewReadFileTool creates a new ReadFileTool with injected dependencies.
func NewReadFileTool(fileOps fileReader, logger *slog.Logger) *ReadFileTool {
	return &ReadFileTool{
		fileOps: fileOps,
		logger:  logging.OrDiscard(logger),
	}
}

// Run reads every requested file in full. A file that cannot be read, or is
// not UTF-8 text, gets a bracketed placeholder instead of content; one bad
// file never fails the batch.
func (t *ReadFileTool) Run(ctx context.Context, wd resolver, reporter progress.Reporter, req ReadFileRequest) (*ReadFileResponse, error) {
	reporter = progress.OrNop(reporter)

	results := make(map[string]string, len(req.FilePaths))
	last := ""
	for _, p := range req.FilePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		abs := wd.Abs(p)
		last = abs
		reporter.Report(ctx, progress.Working(fmt.Sprintf("Extracting %s.", abs)))

		text, err := t.read(abs)
		if err != nil {
			t.logger.DebugContext(ctx, "cannot read file", "path", abs, "error", err)
			results[abs] = placeholder(err)
			continue
		}
		results[abs] = text
	}

	done := fmt.Sprintf("Extracted %d files", len(results))
	if len(results) == 1 {
		done = fmt.Sprintf("Extracted %s.", filepath.Base(last))
	}
	reporter.Report(ctx, progress.Finished(done))

	return &ReadFileResponse{
		Results:         results,
		ResponseMessage: fmt.Sprintf("Read %d files.", len(results)),
	}, nil
}

func (t *ReadFileTool) read(abs string) (string, error) {
	data, err := t.fileOps.ReadFile(abs)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}

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
