package handler

import (
	"net/http"

	"farmnaturals/internal/delivery/api/render"
	"farmnaturals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StorefrontHandler serves the HTML pages.
type StorefrontHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewStorefrontHandler is the constructor for StorefrontHandler.
func NewStorefrontHandler(catalogUC usecase.CatalogUsecase) *StorefrontHandler {
	return &StorefrontHandler{catalogUC: catalogUC}
}

// CategoryPage renders the storefront page of one category from the current catalog.
func (h *StorefrontHandler) CategoryPage(c echo.Context) error {
	page, err := h.catalogUC.Storefront(c.Request().Context(), c.Param("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, render.CategoryPage, page)
}

// AdminPage serves the admin console. It authenticates against the API itself.
func (h *StorefrontHandler) AdminPage(c echo.Context) error {
	return c.Render(http.StatusOK, render.AdminPage, nil)
}
