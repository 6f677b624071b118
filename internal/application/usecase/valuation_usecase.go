package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/inventory-console/internal/application/dto"
	"github.com/tu-usuario/inventory-console/internal/domain/repository"
)

// ValuationUseCase calcula el valor del inventario a precio de venta.
// Los montos se suman como decimales: los float64 del registro canónico se
// convierten una vez por línea y nunca se acumulan en coma flotante.
type ValuationUseCase struct {
	items repository.ItemRepository
}

// NewValuationUseCase construye el caso de uso.
func NewValuationUseCase(items repository.ItemRepository) *ValuationUseCase {
	return &ValuationUseCase{items: items}
}

// Report valoriza el inventario completo y marca las líneas bajo el mínimo.
func (uc *ValuationUseCase) Report(ctx context.Context) (*dto.ValuationReport, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("valorización: listar items: %w", err)
	}

	report := &dto.ValuationReport{
		Lines:      make([]dto.ValuationLine, 0, len(items)),
		TotalValue: decimal.Zero,
	}
	for _, item := range items {
		unitPrice := decimal.NewFromFloat(item.Price)
		total := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

		line := dto.ValuationLine{
			ItemID:    item.ID,
			Name:      item.Name,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Total:     total,
		}
		if item.MinQuantity != nil && float64(item.Quantity) < *item.MinQuantity {
			line.LowStock = true
			report.LowStock++
		}
		report.Lines = append(report.Lines, line)
		report.TotalValue = report.TotalValue.Add(total)
	}
	return report, nil
}
