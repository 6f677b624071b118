package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

func numPtr(f float64) *float64 { return &f }

func TestValuationReport_TotalesDecimales(t *testing.T) {
	// 0.1 * 3 en float64 acumula error; en decimal da exactamente 0.3
	items := &fakeItemRepo{items: []entity.Item{
		{ID: "1", Name: "Clavo", Quantity: 3, Price: 0.1},
		{ID: "2", Name: "Tuerca", Quantity: 10, Price: 2.5},
	}}
	uc := NewValuationUseCase(items)

	report, err := uc.Report(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Lines, 2)

	assert.True(t, report.Lines[0].Total.Equal(decimal.RequireFromString("0.3")),
		"total de línea: %s", report.Lines[0].Total)
	assert.True(t, report.TotalValue.Equal(decimal.RequireFromString("25.3")),
		"total general: %s", report.TotalValue)
}

func TestValuationReport_MarcaBajoStock(t *testing.T) {
	items := &fakeItemRepo{items: []entity.Item{
		{ID: "1", Name: "Escaso", Quantity: 2, Price: 1, MinQuantity: numPtr(5)},
		{ID: "2", Name: "JustoEnMinimo", Quantity: 5, Price: 1, MinQuantity: numPtr(5)},
		{ID: "3", Name: "SinMinimo", Quantity: 0, Price: 1},
	}}
	uc := NewValuationUseCase(items)

	report, err := uc.Report(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Lines[0].LowStock)
	assert.False(t, report.Lines[1].LowStock, "igual al mínimo no es bajo stock")
	assert.False(t, report.Lines[2].LowStock, "sin mínimo configurado no se marca")
	assert.Equal(t, 1, report.LowStock)
}

func TestValuationReport_InventarioVacio(t *testing.T) {
	uc := NewValuationUseCase(&fakeItemRepo{})

	report, err := uc.Report(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report.Lines)
	assert.True(t, report.TotalValue.IsZero())
}
