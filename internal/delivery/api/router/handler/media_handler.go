package handler

import (
	"net/http"
	"strconv"

	"farmnaturals/internal/delivery/api/response"
	domainerrors "farmnaturals/internal/domain/errors"
	"farmnaturals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler serves image uploads and downloads.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(mediaUC usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{mediaUC: mediaUC}
}

// UploadResponse locates the stored image
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadImage handles multipart image uploads in the "file" field
func (h *MediaHandler) UploadImage(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("file is required"))
	}

	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer f.Close()

	out, err := h.mediaUC.Upload(c.Request().Context(), &usecase.UploadInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Content:     f,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, UploadResponse{URL: out.URL})
}

// ServeImage streams a stored image
func (h *MediaHandler) ServeImage(c echo.Context) error {
	rc, info, err := h.mediaUC.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer rc.Close()

	if info.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}

	return c.Stream(http.StatusOK, info.ContentType, rc)
}
