package impl

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	deliverycontext "farmnaturals/internal/delivery/context"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/domain/service"
	"farmnaturals/internal/usecase"
	"farmnaturals/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sniffLen is how many bytes http.DetectContentType looks at.
const sniffLen = 512

// imageExtensions maps the accepted sniffed content types to the stored key extension.
var imageExtensions = map[string]string{
	"image/png":                ".png",
	"image/jpeg":               ".jpg",
	"image/gif":                ".gif",
	"image/webp":               ".webp",
	"image/bmp":                ".bmp",
	"image/x-icon":             ".ico",
	"image/vnd.microsoft.icon": ".ico",
}

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	store  service.ImageStore
	newKey func(ext string) string
	logger *slog.Logger
}

// NewMediaService creates a new media service.
func NewMediaService(store service.ImageStore, logger *slog.Logger) usecase.MediaUsecase {
	return &mediaService{
		store:  store,
		newKey: func(ext string) string { return uuid.New().String() + ext },
		logger: logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores an image under a fresh key. The type is decided from the content, not from the
// client's header or file name.
func (srv *mediaService) Upload(ctx context.Context, input *usecase.UploadInput) (*usecase.UploadOutput, error) {
	if input.Content == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	br := bufio.NewReaderSize(input.Content, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, errors.Wrap(err, "failed to read upload")
	}
	if len(head) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is empty")
	}

	contentType, ext, ok := detectImage(head)
	if !ok {
		srv.log(ctx).Warn("Rejected non-image upload",
			slog.String("filename", input.Filename),
			slog.String("claimedType", input.ContentType),
			slog.String("detectedType", contentType),
		)

		return nil, domainerrors.ErrUnsupportedMedia.WithDetails(contentType)
	}

	key := srv.newKey(ext)
	stored, err := srv.store.Put(ctx, key, contentType, br)
	if err != nil {
		srv.log(ctx).Error("Failed to store image", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store image")
	}

	srv.log(ctx).Info("Image uploaded",
		slog.String("key", stored.Key),
		slog.String("filename", path.Base(input.Filename)),
		slog.String("size", util.FormatBytes(stored.Size)),
	)

	return &usecase.UploadOutput{
		Key: stored.Key,
		URL: srv.store.URL(stored.Key),
	}, nil
}

func (srv *mediaService) Open(ctx context.Context, key string) (io.ReadCloser, *service.StoredImage, error) {
	rc, info, err := srv.store.Open(ctx, key)
	if err != nil {
		if errors.Is(err, domainerrors.ErrImageNotFound) {
			return nil, nil, domainerrors.ErrImageNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to open image")
	}

	return rc, info, nil
}

func detectImage(head []byte) (string, string, bool) {
	detected := http.DetectContentType(head)
	mediaType, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return detected, "", false
	}

	ext, ok := imageExtensions[strings.ToLower(mediaType)]

	return mediaType, ext, ok
}
