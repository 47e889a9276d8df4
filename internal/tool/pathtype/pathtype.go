// Package pathtype reports whether paths exist and what kind of entry they are.
package pathtype

import (
	"encoding/json"
	"os"
)

// Kind is the classification of a path.
type Kind string

const (
	KindNotFound  Kind = "not-found"
	KindDirectory Kind = "directory"
	KindSymlink   Kind = "symbolic-link"
	KindFile      Kind = "file"
	KindUnknown   Kind = "unknown"
)

// fileSystem defines the stat operations needed for classification.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
}

// resolver resolves caller paths against the session working directory.
type resolver interface {
	Abs(path string) string
}

// PathType pairs a path, as given by the caller, with its kind.
type PathType struct {
	Path string
	Kind Kind
}

// MarshalJSON renders the pair as a two-element array.
func (p PathType) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Path, string(p.Kind)})
}

// Request lists the paths to classify.
type Request struct {
	Paths []string `json:"paths"`
}

// Response holds one entry per requested path, in request order.
type Response struct {
	PathType []PathType `json:"path_type"`
}

// Classifier classifies paths without modifying anything.
type Classifier struct {
	fs fileSystem
}

// NewClassifier creates a Classifier.
func NewClassifier(fs fileSystem) *Classifier {
	return &Classifier{fs: fs}
}

// Run classifies every path in req. Relative paths are resolved with wd.
func (c *Classifier) Run(wd resolver, req Request) *Response {
	out := make([]PathType, 0, len(req.Paths))
	for _, p := range req.Paths {
		out = append(out, PathType{Path: p, Kind: c.Classify(wd.Abs(p))})
	}
	return &Response{PathType: out}
}

// Classify checks existence first (following symlinks, so a dangling link is
// not found), then directory, then symlink, then regular file.
func (c *Classifier) Classify(abs string) Kind {
	info, err := c.fs.Stat(abs)
	if err != nil {
		return KindNotFound
	}
	if info.IsDir() {
		return KindDirectory
	}
	if linfo, err := c.fs.Lstat(abs); err == nil && linfo.Mode()&os.ModeSymlink != 0 {
		return KindSymlink
	}
	if info.Mode().IsRegular() {
		return KindFile
	}
	return KindUnknown
}
