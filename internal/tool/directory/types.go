package directory

import (
	"os"
	"regexp"
)

// fileSystem defines the filesystem operations needed for traversal.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.FileInfo, error)
}

// listFileSystem adds the read needed to load .gitignore files.
type listFileSystem interface {
	fileSystem
	ReadFile(path string) ([]byte, error)
}

// resolver resolves caller paths against the session working directory.
// An empty path resolves to the current directory.
type resolver interface {
	Abs(path string) string
}

// ListRequest is the wire format for the list operation.
// Nil pointer fields take the configured defaults.
type ListRequest struct {
	BaseDir          string `json:"base_dir"`
	ShowHidden       bool   `json:"show_hidden"`
	Limit            *int   `json:"limit"`
	StartFrom        int    `json:"start_from"`
	AbsPath          bool   `json:"abs_path"`
	RespectGitignore bool   `json:"respect_gitignore"`
}

// ListResponse contains the result of a list operation.
type ListResponse struct {
	Results         []string `json:"results"`
	ResponseMessage string   `json:"response_message"`
	TimeElapsed     float64  `json:"time_elapsed"`
}

// FindRequest is the wire format for the filename search operation.
// Nil pointer fields take the configured defaults.
type FindRequest struct {
	Patterns        []string `json:"regex_pattern"`
	ExcludePatterns []string `json:"exclude_regex_patterns"`
	Path            string   `json:"path"`
	TimeLimit       *float64 `json:"time_limit"`
	MaxLevel        *int     `json:"max_level"`
}

// FindResponse contains the result of a filename search. Results are sorted.
type FindResponse struct {
	Results         []string `json:"results"`
	ResponseMessage string   `json:"response_message"`
	TimeElapsed     float64  `json:"time_elapsed"`
}

// frontierEntry is one queued directory of a breadth-first search.
type frontierEntry struct {
	dir   string
	depth int
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, &InvalidPatternError{Pattern: p, Cause: err}
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
