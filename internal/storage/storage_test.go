package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	putKey         string
	putData        []byte
	putContentType string
	putErr         error
	deletedKey     string
	deleteErr      error
}

func (f *fakeBackend) EnsureBucket(ctx context.Context) error { return nil }

func (f *fakeBackend) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.putKey = key
	f.putData = data
	f.putContentType = contentType
	return nil
}

func (f *fakeBackend) Delete(ctx context.Context, key string) error {
	f.deletedKey = key
	return f.deleteErr
}

func (f *fakeBackend) ObjectURL(key string) string {
	return "http://objects.local/test-bucket/" + key
}

func (f *fakeBackend) Bucket() string { return "test-bucket" }

func TestImageStore_Upload(t *testing.T) {
	backend := &fakeBackend{}
	images := NewImageStore(backend, "books")

	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	url, key, err := images.Upload(context.Background(), payload)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "books/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, "http://objects.local/test-bucket/"+key, url)
	assert.Equal(t, raw, backend.putData)
	assert.Equal(t, "image/png", backend.putContentType)
}

func TestImageStore_Upload_UniqueKeys(t *testing.T) {
	backend := &fakeBackend{}
	images := NewImageStore(backend, "books")

	payload := base64.StdEncoding.EncodeToString([]byte("cover"))

	_, first, err := images.Upload(context.Background(), payload)
	require.NoError(t, err)
	_, second, err := images.Upload(context.Background(), payload)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestImageStore_Upload_InvalidPayload(t *testing.T) {
	backend := &fakeBackend{}
	images := NewImageStore(backend, "books")

	_, _, err := images.Upload(context.Background(), "!!not base64!!")

	assert.ErrorIs(t, err, ErrInvalidImagePayload)
	assert.Empty(t, backend.putKey)
}

func TestImageStore_Upload_BackendError(t *testing.T) {
	backend := &fakeBackend{putErr: errors.New("bucket unavailable")}
	images := NewImageStore(backend, "books")

	payload := base64.StdEncoding.EncodeToString([]byte("cover"))
	_, _, err := images.Upload(context.Background(), payload)

	assert.Error(t, err)
}

func TestImageStore_Delete(t *testing.T) {
	backend := &fakeBackend{}
	images := NewImageStore(backend, "books")

	require.NoError(t, images.Delete(context.Background(), "books/k.jpg"))
	assert.Equal(t, "books/k.jpg", backend.deletedKey)
}
