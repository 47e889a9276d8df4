package file

// Placeholders recorded in place of content when a file cannot be read.
const (
	PlaceholderNotFound         = "[File not found]"
	PlaceholderPermissionDenied = "[Permission denied]"
)

// ReadFileRequest is the wire format for the read operation.
type ReadFileRequest struct {
	FilePaths []string `json:"file_paths"`
}

// ReadFileResponse maps each absolute path to its text or an error placeholder.
type ReadFileResponse struct {
	Results         map[string]string `json:"results"`
	ResponseMessage string            `json:"response_message"`
}
