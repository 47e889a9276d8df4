// Package mocks provides in-memory test doubles shared by the tool packages.
package mocks

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// MockFileInfo implements os.FileInfo
type MockFileInfo struct {
	NameVal  string
	SizeVal  int64
	ModeVal  os.FileMode
	IsDirVal bool
}

func (f *MockFileInfo) Name() string       { return f.NameVal }
func (f *MockFileInfo) Size() int64        { return f.SizeVal }
func (f *MockFileInfo) Mode() os.FileMode  { return f.ModeVal }
func (f *MockFileInfo) ModTime() time.Time { return time.Time{} }
func (f *MockFileInfo) IsDir() bool        { return f.IsDirVal }
func (f *MockFileInfo) Sys() any           { return nil }

// MockFileSystem is an in-memory tree of files, directories and symlinks.
// Paths are absolute and slash-separated. Errors registered for a path are
// returned by every operation on exactly that path.
type MockFileSystem struct {
	Mu       sync.Mutex
	Files    map[string][]byte
	Dirs     map[string]bool
	Symlinks map[string]string
	Errors   map[string]error
	Cwd      string

	// Calls counts ListDir invocations per path.
	Calls map[string]int
}

// NewMockFileSystem creates an empty filesystem containing only "/".
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files:    make(map[string][]byte),
		Dirs:     map[string]bool{"/": true},
		Symlinks: make(map[string]string),
		Errors:   make(map[string]error),
		Calls:    make(map[string]int),
		Cwd:      "/",
	}
}

// CreateDir adds a directory and all its parents.
func (m *MockFileSystem) CreateDir(path string) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.mkdirAll(path)
}

// CreateFile adds a file, creating parent directories.
func (m *MockFileSystem) CreateFile(path string, content []byte) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.mkdirAll(filepath.Dir(path))
	m.Files[path] = content
}

// CreateSymlink adds a symlink at path pointing to target.
func (m *MockFileSystem) CreateSymlink(path, target string) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.mkdirAll(filepath.Dir(path))
	m.Symlinks[path] = target
}

// SetError makes every operation on path fail with err.
func (m *MockFileSystem) SetError(path string, err error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	m.Errors[path] = err
}

func (m *MockFileSystem) mkdirAll(path string) {
	for p := path; ; p = filepath.Dir(p) {
		m.Dirs[p] = true
		if p == "/" || p == "." {
			return
		}
	}
}

// resolve follows symlinks; ok is false for dangling links.
func (m *MockFileSystem) resolve(path string) (string, bool) {
	for range 40 {
		target, isLink := m.Symlinks[path]
		if !isLink {
			return path, true
		}
		path = target
	}
	return "", false
}

func (m *MockFileSystem) info(path string) (os.FileInfo, error) {
	if m.Dirs[path] {
		return &MockFileInfo{NameVal: filepath.Base(path), ModeVal: os.ModeDir | 0o755, IsDirVal: true}, nil
	}
	if content, ok := m.Files[path]; ok {
		return &MockFileInfo{NameVal: filepath.Base(path), SizeVal: int64(len(content)), ModeVal: 0o644}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

// Stat returns file info, following symlinks.
func (m *MockFileSystem) Stat(path string) (os.FileInfo, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if err, ok := m.Errors[path]; ok {
		return nil, err
	}
	final, ok := m.resolve(path)
	if !ok {
		return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
	}
	info, err := m.info(final)
	if err != nil {
		return nil, err
	}
	if mi, ok := info.(*MockFileInfo); ok {
		mi.NameVal = filepath.Base(path)
	}
	return info, nil
}

// Lstat returns file info without following symlinks.
func (m *MockFileSystem) Lstat(path string) (os.FileInfo, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if err, ok := m.Errors[path]; ok {
		return nil, err
	}
	if _, ok := m.Symlinks[path]; ok {
		return &MockFileInfo{NameVal: filepath.Base(path), ModeVal: os.ModeSymlink | 0o777}, nil
	}
	return m.info(path)
}

// ListDir returns Lstat info for the immediate children of path, sorted by name.
func (m *MockFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	m.Calls[path]++
	if err, ok := m.Errors[path]; ok {
		return nil, err
	}
	final, ok := m.resolve(path)
	if !ok || !m.Dirs[final] {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}

	var names []string
	seen := map[string]bool{}
	add := func(p string) {
		if p != final && filepath.Dir(p) == final && !seen[p] {
			seen[p] = true
			names = append(names, p)
		}
	}
	for p := range m.Dirs {
		add(p)
	}
	for p := range m.Files {
		add(p)
	}
	for p := range m.Symlinks {
		add(p)
	}
	sort.Strings(names)

	infos := make([]os.FileInfo, 0, len(names))
	for _, p := range names {
		if _, isLink := m.Symlinks[p]; isLink {
			infos = append(infos, &MockFileInfo{NameVal: filepath.Base(p), ModeVal: os.ModeSymlink | 0o777})
			continue
		}
		info, _ := m.info(p)
		infos = append(infos, info)
	}
	return infos, nil
}

// ReadFile returns file content, following symlinks.
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if err, ok := m.Errors[path]; ok {
		return nil, err
	}
	final, ok := m.resolve(path)
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	if m.Dirs[final] {
		return nil, &os.PathError{Op: "read", Path: path, Err: errIsDir}
	}
	content, ok := m.Files[final]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return content, nil
}

// Getwd returns Cwd.
func (m *MockFileSystem) Getwd() (string, error) {
	return m.Cwd, nil
}

type isDirError struct{}

func (isDirError) Error() string { return "is a directory" }

var errIsDir = isDirError{}
