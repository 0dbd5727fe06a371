// Package storage keeps uploaded images in a gocloud.dev bucket. Local directories (file://)
// and Google Cloud Storage (gs://) are supported.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"farmnaturals/config"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the dependencies of the image store
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Image bucket opened", slog.String("bucket", cfg.BucketURL))

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, cfg.PublicBaseURL), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket, publicBaseURL string) service.ImageStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *blobStore) Put(ctx context.Context, key, contentType string, r io.Reader) (*service.StoredImage, error) {
	if !validKey(key) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid object key")
	}

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob writer")
	}

	size, err := io.Copy(w, r)
	if err != nil {
		_ = w.Close()

		return nil, errors.Wrap(err, "failed to write blob")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to commit blob")
	}

	return &service.StoredImage{Key: key, ContentType: contentType, Size: size}, nil
}

func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, *service.StoredImage, error) {
	if !validKey(key) {
		return nil, nil, domainerrors.ErrImageNotFound
	}

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, domainerrors.ErrImageNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to open blob")
	}

	return r, &service.StoredImage{Key: key, ContentType: r.ContentType(), Size: r.Size()}, nil
}

func (s *blobStore) URL(key string) string {
	return s.publicBaseURL + "/" + url.PathEscape(key)
}

// validKey accepts flat keys only.
func validKey(key string) bool {
	return key != "" && !strings.Contains(key, "/") && !strings.Contains(key, `\`) && !strings.HasPrefix(key, ".")
}
