package adapter

import (
	"context"
	"os"

	"github.com/Cyclone1070/fsnav/internal/config"
	"github.com/Cyclone1070/fsnav/internal/tool"
	"github.com/Cyclone1070/fsnav/internal/tool/directory"
	"github.com/Cyclone1070/fsnav/internal/tool/file"
	"github.com/Cyclone1070/fsnav/internal/tool/pathtype"
	"github.com/Cyclone1070/fsnav/internal/tool/search"
	"github.com/Cyclone1070/fsnav/internal/tool/workdir"
)

// This file wires every filesystem tool into a BaseAdapter.
// Tool names and argument names are the ones hosts already call.

// fileSystem defines every filesystem operation the tools need.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// DefaultTools builds all tools over fs for the given session.
func DefaultTools(session *Session, fs fileSystem, cfg *config.Config) []Tool {
	logger := session.Logger
	return []Tool{
		NewGetCurrentDir(session),
		NewChangeDir(session),
		NewGetPathType(session, pathtype.NewClassifier(fs)),
		NewListFiles(session, directory.NewListDirectoryTool(fs, cfg, logger)),
		NewSearchFileName(session, directory.NewFindFileTool(fs, cfg, logger)),
		NewReadFile(session, file.NewReadFileTool(fs, logger)),
		NewSearchFileLines(session, search.NewSearchLinesTool(fs, cfg, logger)),
	}
}

type changeDirRequest struct {
	Path string `json:"path"`
}

type emptyRequest struct{}

// NewGetCurrentDir creates a get_current_dir adapter
func NewGetCurrentDir(session *Session) Tool {
	return NewBaseAdapter(
		"get_current_dir",
		"Get the current directory. Equivalent to `pwd`.",
		tool.Object(nil),
		session,
		func(_ context.Context, s *Session, _ emptyRequest) (*workdir.CurrentDirResult, error) {
			return s.WorkDir.Get(), nil
		},
	)
}

// NewChangeDir creates a change_dir adapter
func NewChangeDir(session *Session) Tool {
	return NewBaseAdapter(
		"change_dir",
		"Change the current directory. Equivalent to `cd`.",
		tool.Object(map[string]*tool.Schema{
			"path": tool.Scalar(tool.TypeString, "Path to change to. Leave empty to revert to the initial directory."),
		}),
		session,
		func(ctx context.Context, s *Session, req changeDirRequest) (*workdir.ChangeResult, error) {
			return s.WorkDir.Change(ctx, s.reporter(ctx), req.Path), nil
		},
	)
}

// NewGetPathType creates a get_path_type adapter
func NewGetPathType(session *Session, classifier *pathtype.Classifier) Tool {
	return NewBaseAdapter(
		"get_path_type",
		"Get the type of the given paths: not-found, directory, symbolic-link, file or unknown.",
		tool.Object(map[string]*tool.Schema{
			"paths": tool.StringList("List of paths or a single path to get the type of."),
		}, "paths"),
		session,
		func(_ context.Context, s *Session, req pathtype.Request) (*pathtype.Response, error) {
			return classifier.Run(s.WorkDir, req), nil
		},
	)
}

// NewListFiles creates a list_files adapter
func NewListFiles(session *Session, lister *directory.ListDirectoryTool) Tool {
	return NewBaseAdapter(
		"list_files",
		"List files in the given directory. Results are sorted alphabetically.",
		tool.Object(map[string]*tool.Schema{
			"base_dir":          tool.Scalar(tool.TypeString, "Directory to list. Defaults to the current directory."),
			"show_hidden":       tool.Scalar(tool.TypeBoolean, "Include hidden files (those starting with '.')."),
			"limit":             tool.Scalar(tool.TypeInteger, "Maximum number of files to return. Set to -1 for no limit."),
			"start_from":        tool.Scalar(tool.TypeInteger, "Starting index of files to return."),
			"abs_path":          tool.Scalar(tool.TypeBoolean, "If true, return absolute paths."),
			"respect_gitignore": tool.Scalar(tool.TypeBoolean, "Skip entries matched by the directory's .gitignore."),
		}),
		session,
		func(ctx context.Context, s *Session, req directory.ListRequest) (*directory.ListResponse, error) {
			return lister.Run(ctx, s.WorkDir, s.reporter(ctx), req)
		},
	)
}

// NewSearchFileName creates a search_file_name adapter
func NewSearchFileName(session *Session, finder *directory.FindFileTool) Tool {
	return NewBaseAdapter(
		"search_file_name",
		"Search level by level for files whose name matches any of the given regex patterns. Results are sorted alphabetically.",
		tool.Object(map[string]*tool.Schema{
			"regex_pattern":          tool.StringList("Regex patterns to match against file names. Be sure to escape special characters."),
			"exclude_regex_patterns": tool.StringList("Regex patterns; directories whose path matches are skipped with their whole subtree."),
			"path":                   tool.Scalar(tool.TypeString, "Directory to start from. Defaults to the current directory."),
			"time_limit":             tool.Scalar(tool.TypeNumber, "Seconds after which to stop and return partial results (-1 = no limit)."),
			"max_level":              tool.Scalar(tool.TypeInteger, "Depth to recurse: 0 = only root, 1 = root and its subdirectories, -1 = unlimited."),
		}, "regex_pattern"),
		session,
		func(ctx context.Context, s *Session, req directory.FindRequest) (*directory.FindResponse, error) {
			return finder.Run(ctx, s.WorkDir, s.reporter(ctx), req)
		},
	)
}

// NewReadFile creates a read_file adapter
func NewReadFile(session *Session, reader *file.ReadFileTool) Tool {
	return NewBaseAdapter(
		"read_file",
		"Read the full text of the given files. Cannot read PDFs.",
		tool.Object(map[string]*tool.Schema{
			"file_paths": tool.StringList("List of file paths to read."),
		}, "file_paths"),
		session,
		func(ctx context.Context, s *Session, req file.ReadFileRequest) (*file.ReadFileResponse, error) {
			return reader.Run(ctx, s.WorkDir, s.reporter(ctx), req)
		},
	)
}

// NewSearchFileLines creates a search_file_lines adapter
func NewSearchFileLines(session *Session, searcher *search.SearchLinesTool) Tool {
	return NewBaseAdapter(
		"search_file_lines",
		"Search each file for lines matching any of the regex patterns and return the surrounding line blocks. Unreadable files get an error string.",
		tool.Object(map[string]*tool.Schema{
			"paths":          tool.StringList("List of file paths to search."),
			"regex_patterns": tool.StringList("Regex patterns to match lines against."),
			"context_lines":  tool.Scalar(tool.TypeInteger, "Number of context lines before and after each match."),
			"time_limit":     tool.Scalar(tool.TypeNumber, "Seconds after which to stop early (-1 = no limit)."),
		}, "paths", "regex_patterns"),
		session,
		func(ctx context.Context, s *Session, req search.SearchLinesRequest) (*search.SearchLinesResponse, error) {
			return searcher.Run(ctx, s.WorkDir, s.reporter(ctx), req)
		},
	)
}
