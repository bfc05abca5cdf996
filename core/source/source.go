package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"json-diff/core/reconcile"
	"json-diff/core/storage"

	"facette.io/natsort"
	"gorm.io/gorm"
)

const (
	KindDirectory = "directory"
	KindBucket    = "bucket"
	KindTable     = "table"
)

var (
	// ErrNoInputFiles is returned when a source has nothing to compare.
	ErrNoInputFiles = errors.New("no JSON files found")

	// ErrNotFound is returned when a named collection does not exist.
	ErrNotFound = errors.New("not found")
)

// Source lists and loads record collections.
type Source interface {
	// Kind returns the source type.
	Kind() string
	// List returns the names of the available collections in natural order.
	List(ctx context.Context) ([]string, error)
	// Load reads, decodes and validates one collection.
	Load(ctx context.Context, name string) (*reconcile.Collection, error)
}

// Deps holds the connections a source may need.
// Only the one matching the configured kind must be set.
type Deps struct {
	Storage storage.Client
	Bucket  string
	DB      *gorm.DB
}

// New builds the Source described by cfg.
func New(cfg Config, deps Deps) (Source, error) {
	var src Source
	switch cfg.Kind {
	case KindDirectory, "":
		src = NewDirectory(cfg.Directory)
	case KindBucket:
		if deps.Storage == nil {
			return nil, fmt.Errorf("bucket source requires a storage client")
		}
		src = NewBucket(deps.Storage, deps.Bucket, cfg.Prefix)
	case KindTable:
		if deps.DB == nil {
			return nil, fmt.Errorf("table source requires a database connection")
		}
		src = NewTable(deps.DB)
	default:
		return nil, fmt.Errorf("unknown source kind: %s", cfg.Kind)
	}

	if cfg.CacheTTLSeconds > 0 {
		src = NewCached(src, time.Duration(cfg.CacheTTLSeconds)*time.Second)
	}
	return src, nil
}

// decode parses a JSON document into a collection.
func decode(name string, data []byte) (*reconcile.Collection, error) {
	v, err := reconcile.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return reconcile.NewCollection(name, v)
}

// sortNames orders names naturally so that "export2" precedes "export10".
func sortNames(names []string) {
	natsort.Sort(names)
}
