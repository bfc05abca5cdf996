package source

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"json-diff/core/reconcile"
	"json-diff/core/storage"

	"github.com/minio/minio-go/v7"
)

// Bucket offers the *.json objects stored under a prefix of a bucket.
// Names are object keys relative to the prefix.
type Bucket struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucket creates a bucket source.
func NewBucket(client storage.Client, bucket, prefix string) *Bucket {
	return &Bucket{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Kind returns KindBucket.
func (b *Bucket) Kind() string {
	return KindBucket
}

// List returns the JSON objects below the prefix.
func (b *Bucket) List(ctx context.Context) ([]string, error) {
	if err := b.checkBucket(ctx); err != nil {
		return nil, err
	}

	listPrefix := ""
	if b.prefix != "" {
		listPrefix = b.prefix + "/"
	}

	var names []string
	for obj := range b.client.ListObjects(ctx, b.bucket, minio.ListObjectsOptions{Prefix: listPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		names = append(names, strings.TrimPrefix(obj.Key, listPrefix))
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s/%s: %w", b.bucket, listPrefix, ErrNoInputFiles)
	}

	sortNames(names)
	return names, nil
}

// Load downloads and validates one JSON object.
func (b *Bucket) Load(ctx context.Context, name string) (*reconcile.Collection, error) {
	if err := b.checkBucket(ctx); err != nil {
		return nil, err
	}

	key := path.Join(b.prefix, name)
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return decode(name, data)
}

func (b *Bucket) checkBucket(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", b.bucket)
	}
	return nil
}
