// Package export implementa los puertos CatalogExporter: escritura del
// catálogo normalizado a XLSX y PDF.
package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/inventory-console/internal/application/dto"
)

// XLSXExporter escribe el catálogo como hoja de cálculo.
type XLSXExporter struct{}

// NewXLSXExporter construye el exportador.
func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

var xlsxHeaders = []string{
	"id", "sku", "nombre", "categoría", "proveedor",
	"cantidad", "unidad", "precio", "costo", "mínimo",
}

// Export escribe una fila por item de catálogo. Los campos opcionales
// ausentes quedan como celdas vacías, no como ceros.
func (e *XLSXExporter) Export(rows []dto.CatalogRow, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range xlsxHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		item := row.Item
		set(1, item.ID)
		set(2, item.SKU)
		set(3, item.Name)
		set(4, row.CategoryName)
		set(5, row.SupplierName)
		set(6, item.Quantity)
		if item.Unit != nil {
			set(7, *item.Unit)
		}
		set(8, item.Price)
		if item.Cost != nil {
			set(9, *item.Cost)
		}
		if item.MinQuantity != nil {
			set(10, *item.MinQuantity)
		}
	}

	return f.SaveAs(outputPath)
}
