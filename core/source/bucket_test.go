package source

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"json-diff/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBucket_List(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "exports").Return(true, nil)
	client.On("ListObjects", mock.Anything, "exports", minio.ListObjectsOptions{Prefix: "daily/", Recursive: true}).
		Return([]minio.ObjectInfo{
			{Key: "daily/users10.json"},
			{Key: "daily/users2.json"},
			{Key: "daily/readme.txt"},
			{Key: "daily/old/users1.json"},
		})

	src := NewBucket(client, "exports", "/daily/")
	names, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"old/users1.json", "users2.json", "users10.json"}, names)
	assert.Equal(t, KindBucket, src.Kind())
	client.AssertExpectations(t)
}

func TestBucket_ListEmpty(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "exports").Return(true, nil)
	client.On("ListObjects", mock.Anything, "exports", mock.Anything).Return([]minio.ObjectInfo{{Key: "a.csv"}})

	_, err := NewBucket(client, "exports", "").List(context.Background())
	assert.ErrorIs(t, err, ErrNoInputFiles)
}

func TestBucket_ListMissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "exports").Return(false, nil)

	_, err := NewBucket(client, "exports", "").List(context.Background())
	assert.ErrorContains(t, err, "does not exist")
	client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestBucket_Load(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "exports").Return(true, nil)
	client.On("GetObject", mock.Anything, "exports", "daily/users.json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(`[{"id":"u1","age":30}]`))), nil)
	client.On("GetObject", mock.Anything, "exports", "daily/gone.json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	src := NewBucket(client, "exports", "daily")

	col, err := src.Load(context.Background(), "users.json")
	require.NoError(t, err)
	assert.Equal(t, 1, col.Len())
	v, ok := col.Records()[0].Value("age")
	require.True(t, ok)
	assert.Equal(t, json.Number("30"), v)

	_, err = src.Load(context.Background(), "gone.json")
	assert.ErrorIs(t, err, ErrNotFound)
}
