package service

import (
	"io"

	"farmnaturals/internal/domain/entity"
)

// ProductExporter writes the catalog as a spreadsheet.
type ProductExporter interface {
	// ContentType is the MIME type of what Export writes.
	ContentType() string
	Export(w io.Writer, products []*entity.Product) error
}
