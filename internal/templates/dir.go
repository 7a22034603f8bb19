package templates

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const templateExt = ".svg"

// DirStore serves templates from <baseDir>/<key>.svg.
type DirStore struct {
	baseDir string
}

// NewDirStore creates a store rooted at baseDir.
func NewDirStore(baseDir string) *DirStore {
	return &DirStore{baseDir: baseDir}
}

// Get reads the template for key.
func (s *DirStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, key+templateExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		return nil, fmt.Errorf("reading template %q: %w", key, err)
	}
	return data, nil
}

// Stat reports the file behind key. UpdatedAt is its modification time.
func (s *DirStore) Stat(ctx context.Context, key string) (*Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	name := key + templateExt
	info, err := os.Stat(filepath.Join(s.baseDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		return nil, fmt.Errorf("reading template %q: %w", key, err)
	}
	return &Template{Key: key, SourcePath: name, UpdatedAt: info.ModTime().UTC()}, nil
}

// List returns the keys of every template file, sorted. Files whose name is
// not a sanitized key are not reachable through Get and are left out.
func (s *DirStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("listing templates in %s: %w", s.baseDir, err)
	}

	keys := []string{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != templateExt {
			continue
		}
		key := strings.TrimSuffix(e.Name(), templateExt)
		if validKey(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
