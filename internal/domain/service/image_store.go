package service

import (
	"context"
	"io"
)

// StoredImage describes an object held by the ImageStore.
type StoredImage struct {
	Key         string
	ContentType string
	Size        int64
}

// ImageStore persists uploaded product images.
type ImageStore interface {
	// Put writes the content under key and returns the stored object's metadata.
	Put(ctx context.Context, key, contentType string, r io.Reader) (*StoredImage, error)

	// Open returns a reader for key. The caller must close it.
	// Returns domain ErrImageNotFound when the key is absent.
	Open(ctx context.Context, key string) (io.ReadCloser, *StoredImage, error)

	// URL returns the public URL under which key is served.
	URL(key string) string
}
