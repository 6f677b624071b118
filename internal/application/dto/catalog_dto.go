package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

// CatalogRow fila de la vista de catálogo: el item canónico más los nombres
// ya resueltos de su categoría y proveedor (vacíos si la FK no resuelve).
type CatalogRow struct {
	Item         entity.Item
	CategoryName string
	SupplierName string
}

// ValuationLine una línea del reporte de valorización.
type ValuationLine struct {
	ItemID    string
	Name      string
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal // Quantity × UnitPrice
	LowStock  bool            // true si quantity < minQuantity (cuando hay mínimo)
}

// ValuationReport reporte de valorización del inventario completo.
type ValuationReport struct {
	Lines      []ValuationLine
	TotalValue decimal.Decimal
	LowStock   int // cantidad de líneas bajo el mínimo
}
