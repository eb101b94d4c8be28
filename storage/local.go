// storage/local.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalProvider stores files in a directory on disk.
type LocalProvider struct {
	dir string
}

// NewLocalProvider creates the directory if needed.
func NewLocalProvider(dir string) (*LocalProvider, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalProvider{dir: dir}, nil
}

// Dir returns the storage root, used to serve uploads statically.
func (p *LocalProvider) Dir() string {
	return p.dir
}

func (p *LocalProvider) path(name string) (string, error) {
	clean, err := CleanName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(p.dir, clean), nil
}

// Save writes the file atomically through a temp file in the same directory.
func (p *LocalProvider) Save(ctx context.Context, name string, data []byte, contentType string) error {
	path, err := p.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(p.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}

// Load reads a file, returning ErrNotFound if it does not exist.
func (p *LocalProvider) Load(ctx context.Context, name string) ([]byte, error) {
	path, err := p.path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// Exists reports whether a file is stored under name.
func (p *LocalProvider) Exists(ctx context.Context, name string) (bool, error) {
	path, err := p.path(name)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return true, nil
}
