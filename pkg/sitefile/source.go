package sitefile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Source identifies where a definition is read from.
type Source interface {
	Location() string
	read(ctx context.Context) ([]byte, error)
}

type fileSource struct {
	path string
}

// SourceFromFile returns a Source reading path from disk.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(s.path)
}

type fsSource struct {
	files fs.FS
	name  string
}

// SourceFromFS returns a Source reading name from files.
func SourceFromFS(files fs.FS, name string) Source {
	return fsSource{files: files, name: name}
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) read(ctx context.Context) ([]byte, error) {
	if s.files == nil {
		return nil, errors.New("sitefile: filesystem is not configured")
	}
	if s.name == "" {
		return nil, errors.New("sitefile: fs path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return fs.ReadFile(s.files, s.name)
}
