package search

import "encoding/json"

// Placeholders recorded in place of match blocks when a file cannot be read.
const (
	PlaceholderNotFound         = "[File not found]"
	PlaceholderPermissionDenied = "[Permission denied]"
)

// fileSystem defines the filesystem operations needed by content search.
type fileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// resolver resolves caller paths against the session working directory.
type resolver interface {
	Abs(path string) string
}

// SearchLinesRequest is the wire format for the content search operation.
// Nil pointer fields take the configured defaults.
type SearchLinesRequest struct {
	Paths        []string `json:"paths"`
	Patterns     []string `json:"regex_patterns"`
	ContextLines *int     `json:"context_lines"`
	TimeLimit    *float64 `json:"time_limit"`
}

// FileMatches is the outcome for one file: either the match blocks or, when
// the file could not be read, a bracketed error placeholder.
type FileMatches struct {
	Blocks []string
	Err    string
}

// Failed reports whether the file could not be read.
func (m FileMatches) Failed() bool {
	return m.Err != ""
}

// MarshalJSON renders the blocks as a JSON array, or the placeholder as a JSON string.
func (m FileMatches) MarshalJSON() ([]byte, error) {
	if m.Failed() {
		return json.Marshal(m.Err)
	}
	if m.Blocks == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.Blocks)
}

// SearchLinesResponse contains the result of a content search.
// Results are keyed by the path exactly as given in the request.
type SearchLinesResponse struct {
	Results         map[string]FileMatches `json:"results"`
	ResponseMessage string                 `json:"response_message"`
	TimeElapsed     float64                `json:"time_elapsed"`
}
