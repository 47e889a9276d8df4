package file

// fileReader defines the minimal filesystem operations needed for reading files.
type fileReader interface {
	ReadFile(path string) ([]byte, error)
}

// resolver resolves caller paths against the session working directory.
type resolver interface {
	Abs(path string) string
}
