package storage

import (
	"context"
	"io"
	"path"

	"github.com/google/uuid"
)

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	ObjectURL(key string) string
	Bucket() string
}

// ImageStore stores uploaded cover images in an object-storage backend.
// Upload returns a durable public URL plus the object key, which acts as
// the deletion handle for a later Delete.
type ImageStore struct {
	backend ObjectStorage
	prefix  string
}

// NewImageStore constructs an ImageStore over the provided backend.
// Objects are stored under the given key prefix (e.g. "books").
func NewImageStore(backend ObjectStorage, prefix string) *ImageStore {
	return &ImageStore{backend: backend, prefix: prefix}
}

// EnsureBucket ensures the configured bucket exists.
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	return s.backend.EnsureBucket(ctx)
}

// Upload decodes an inline-encoded image payload (a base64 data URI) and
// stores it under a fresh object key. It returns the object's public URL
// and its key.
func (s *ImageStore) Upload(ctx context.Context, payload string) (string, string, error) {
	img, err := decodeInlineImage(payload)
	if err != nil {
		return "", "", err
	}

	key := path.Join(s.prefix, uuid.New().String()+img.Extension())
	if err := s.backend.Put(ctx, key, img.Reader(), img.Size(), img.ContentType); err != nil {
		return "", "", err
	}

	return s.backend.ObjectURL(key), key, nil
}

// Delete removes a previously uploaded image by its key.
func (s *ImageStore) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}
