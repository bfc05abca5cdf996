// Package storage reads JSON exports from S3-compatible object storage.
//
// Client is the read-only subset of the MinIO client the bucket source needs:
// BucketExists, GetObject and ListObjects. NewClient connects with the
// configured endpoint and credentials, works against AWS S3 and self-hosted
// MinIO alike, and bounds connection setup with TimeoutSeconds.
//
// IsNotFound tells missing keys and buckets apart from transport failures.
// The mocks subpackage provides a testify mock of Client.
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err != nil {
//	    return err
//	}
//	obj, err := client.GetObject(ctx, cfg.Storage.Bucket, "daily/users.json", minio.GetObjectOptions{})
package storage
