// Package storage keeps uploaded CVs and their review results, either on the
// local disk or in an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrInvalidName is returned for names that do not reduce to a plain file name.
var ErrInvalidName = errors.New("invalid file name")

// Provider stores files by flat name.
type Provider interface {
	Save(ctx context.Context, name string, data []byte, contentType string) error
	Load(ctx context.Context, name string) ([]byte, error)
	Exists(ctx context.Context, name string) (bool, error)
}

// CleanName reduces a client supplied name to its base name so it can never
// point outside the storage root.
func CleanName(name string) (string, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	base := filepath.Base(name)
	if base == "." || base == ".." || base == "/" || base == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return base, nil
}
