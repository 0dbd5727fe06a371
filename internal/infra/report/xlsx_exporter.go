// Package report renders catalog exports.
package report

import (
	"io"

	"farmnaturals/internal/domain/entity"
	"farmnaturals/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

const (
	sheetName       = "Products"
	timestampLayout = "2006-01-02 15:04:05"
	// XLSXContentType is the MIME type of the exported workbook.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var productHeaders = []string{
	"ID", "Name", "Category", "Price", "Unit", "Stock", "StockUnit",
	"Description", "ImageURL", "Featured", "CreatedAt", "UpdatedAt",
}

type xlsxExporter struct{}

// NewXLSXExporter returns a ProductExporter writing one sheet with a header row.
func NewXLSXExporter() service.ProductExporter {
	return &xlsxExporter{}
}

func (e *xlsxExporter) ContentType() string {
	return XLSXContentType
}

func (e *xlsxExporter) Export(w io.Writer, products []*entity.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create sheet")
	}

	header := sheet.AddRow()
	for _, h := range productHeaders {
		header.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Category)
		// Money stays a string so the sheet never shows float rounding.
		row.AddCell().SetValue(p.Price.StringFixed(2))
		row.AddCell().SetValue(p.Unit)
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(p.StockUnit)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.ImageURL)
		row.AddCell().SetValue(p.Featured)
		row.AddCell().SetValue(p.CreatedAt.Format(timestampLayout))
		row.AddCell().SetValue(p.UpdatedAt.Format(timestampLayout))
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}
