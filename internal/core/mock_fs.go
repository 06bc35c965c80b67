package core

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests. Paths use forward
// slashes. Directories are derived from file paths and can also be created
// explicitly with SetDir. Per-path errors can be injected with SetError.
type MockFileSystem struct {
	files  map[string][]byte
	dirs   map[string]bool
	errors map[string]error
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:  make(map[string][]byte),
		dirs:   make(map[string]bool),
		errors: make(map[string]error),
	}
}

// SetFile stores file content, creating all parent directories.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	p = path.Clean(p)
	m.files[p] = data
	for dir := path.Dir(p); dir != "/" && dir != "."; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
}

// SetDir creates a directory (and its parents) without any files.
func (m *MockFileSystem) SetDir(p string) {
	p = path.Clean(p)
	for ; p != "/" && p != "."; p = path.Dir(p) {
		m.dirs[p] = true
	}
}

// SetError injects an error returned by any operation on the given path.
func (m *MockFileSystem) SetError(p string, err error) {
	m.errors[path.Clean(p)] = err
}

// ReadFile returns the stored content for path.
func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p = path.Clean(p)
	if err := m.errors[p]; err != nil {
		return nil, err
	}
	data, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return data, nil
}

// ReadDir lists the direct children of dir in lexical order.
func (m *MockFileSystem) ReadDir(ctx context.Context, dir string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir = path.Clean(dir)
	if err := m.errors[dir]; err != nil {
		return nil, err
	}
	if !m.dirs[dir] {
		return nil, &fs.PathError{Op: "open", Path: dir, Err: fs.ErrNotExist}
	}

	seen := make(map[string]mockEntry)
	prefix := dir + "/"
	for p := range m.files {
		if rest, ok := strings.CutPrefix(p, prefix); ok {
			name, _, nested := strings.Cut(rest, "/")
			seen[name] = mockEntry{name: name, dir: nested}
		}
	}
	for p := range m.dirs {
		if rest, ok := strings.CutPrefix(p, prefix); ok && !strings.Contains(rest, "/") {
			seen[rest] = mockEntry{name: rest, dir: true}
		}
	}

	entries := make([]fs.DirEntry, 0, len(seen))
	for _, e := range seen {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Stat returns info for a stored file or directory.
func (m *MockFileSystem) Stat(ctx context.Context, p string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p = path.Clean(p)
	if err := m.errors[p]; err != nil {
		return nil, err
	}
	if data, ok := m.files[p]; ok {
		return mockInfo{name: path.Base(p), size: int64(len(data))}, nil
	}
	if m.dirs[p] {
		return mockInfo{name: path.Base(p), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

type mockEntry struct {
	name string
	dir  bool
}

func (e mockEntry) Name() string               { return e.name }
func (e mockEntry) IsDir() bool                { return e.dir }
func (e mockEntry) Type() fs.FileMode          { return e.info().Mode().Type() }
func (e mockEntry) Info() (fs.FileInfo, error) { return e.info(), nil }

func (e mockEntry) info() mockInfo {
	return mockInfo{name: e.name, dir: e.dir}
}

type mockInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockInfo) Name() string { return i.name }
func (i mockInfo) Size() int64  { return i.size }
func (i mockInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i mockInfo) ModTime() time.Time { return time.Time{} }
func (i mockInfo) IsDir() bool        { return i.dir }
func (i mockInfo) Sys() any           { return nil }

var _ FileSystem = (*MockFileSystem)(nil)
var _ FileSystem = (*OSFileSystem)(nil)
