package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"json-diff/core/reconcile"
)

// Directory offers the *.json files of a local directory.
type Directory struct {
	dir string
}

// NewDirectory creates a directory source.
func NewDirectory(dir string) *Directory {
	if dir == "" {
		dir = "."
	}
	return &Directory{dir: dir}
}

// Kind returns KindDirectory.
func (d *Directory) Kind() string {
	return KindDirectory
}

// Path returns the scanned directory.
func (d *Directory) Path() string {
	return d.dir
}

// List returns the names of the JSON files in the directory.
func (d *Directory) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", d.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", d.dir, ErrNoInputFiles)
	}

	sortNames(names)
	return names, nil
}

// Load reads and validates one JSON file of the directory.
func (d *Directory) Load(ctx context.Context, name string) (*reconcile.Collection, error) {
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	data, err := os.ReadFile(filepath.Join(d.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return decode(name, data)
}
