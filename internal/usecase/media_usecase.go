package usecase

import (
	"context"
	"io"

	"farmnaturals/internal/domain/service"
)

// UploadInput is one uploaded file. ContentType is what the client claimed; the
// content itself decides.
type UploadInput struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// UploadOutput locates a stored image.
type UploadOutput struct {
	Key string
	URL string
}

// MediaUsecase stores and serves product images.
type MediaUsecase interface {
	Upload(ctx context.Context, input *UploadInput) (*UploadOutput, error)
	Open(ctx context.Context, key string) (io.ReadCloser, *service.StoredImage, error)
}
