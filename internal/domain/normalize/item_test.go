package normalize_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-console/internal/domain/normalize"
)

func TestItem_CampoCompleto(t *testing.T) {
	raw := map[string]any{
		"id":          float64(12),
		"name":        "Tornillo 3/8",
		"sku":         "TOR-038",
		"quantity":    float64(120),
		"price":       0.35,
		"cost":        0.21,
		"minQuantity": float64(50),
		"unit":        "unidad",
		"categoryId":  "3",
		"supplierId":  float64(9),
	}

	item := normalize.Item(raw)

	assert.Equal(t, "12", item.ID, "el id numérico se convierte a string")
	assert.Equal(t, "Tornillo 3/8", item.Name)
	assert.Equal(t, "TOR-038", item.SKU)
	assert.Equal(t, 120, item.Quantity)
	assert.Equal(t, 0.35, item.Price)
	require.NotNil(t, item.Cost)
	assert.Equal(t, 0.21, *item.Cost)
	require.NotNil(t, item.MinQuantity)
	assert.Equal(t, 50.0, *item.MinQuantity)
	require.NotNil(t, item.Unit)
	assert.Equal(t, "unidad", *item.Unit)
	require.NotNil(t, item.CategoryID)
	assert.Equal(t, "3", *item.CategoryID)
	require.NotNil(t, item.SupplierID)
	assert.Equal(t, "9", *item.SupplierID)
}

func TestItem_DefaultsNumericos(t *testing.T) {
	// Obligatorio no numérico cae a 0; opcional no numérico queda nil.
	item := normalize.Item(map[string]any{
		"quantity":    "oops",
		"minQuantity": "oops",
	})

	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, 0.0, item.Price, "price ausente también es 0")
	assert.Nil(t, item.MinQuantity)
	assert.Nil(t, item.Cost)
}

func TestItem_StringsNumericosConvierten(t *testing.T) {
	item := normalize.Item(map[string]any{"quantity": "300", "price": "1.20"})
	assert.Equal(t, 300, item.Quantity)
	assert.Equal(t, 1.20, item.Price)
}

func TestItem_ClavesForaneasAnidadas(t *testing.T) {
	item := normalize.Item(map[string]any{
		"category": map[string]any{"id": float64(2), "name": "Cables"},
		"supplier": map[string]any{"id": "s-1"},
	})

	require.NotNil(t, item.CategoryID)
	assert.Equal(t, "2", *item.CategoryID)
	require.NotNil(t, item.SupplierID)
	assert.Equal(t, "s-1", *item.SupplierID)
}

func TestItem_SinonimoSnakeCase(t *testing.T) {
	item := normalize.Item(map[string]any{"_id": "abc", "min_quantity": float64(5)})
	assert.Equal(t, "abc", item.ID)
	require.NotNil(t, item.MinQuantity)
	assert.Equal(t, 5.0, *item.MinQuantity)
}

func TestItem_PayloadMalformadoNoFalla(t *testing.T) {
	for _, raw := range []any{nil, "texto", float64(3), []any{"x"}} {
		item := normalize.Item(raw)
		assert.Equal(t, "", item.ID)
		assert.Equal(t, 0, item.Quantity)
	}
}

func TestItemEnvelope_Desempaqueta(t *testing.T) {
	payload := map[string]any{"data": map[string]any{"id": "7", "name": "Pintura"}}
	item := normalize.ItemEnvelope(payload)
	assert.Equal(t, "7", item.ID)
	assert.Equal(t, "Pintura", item.Name)
}

// TestItem_Idempotencia verifica que reserializar el registro canónico y
// volver a normalizarlo produce exactamente el mismo registro.
func TestItem_Idempotencia(t *testing.T) {
	first := normalize.Item(map[string]any{
		"_id":      "i-1",
		"name":     "Cable UTP",
		"sku":      "CAB-CT6",
		"quantity": "300",
		"price":    1.2,
		"unit":     "metro",
		"supplier": map[string]any{"id": float64(4)},
	})

	blob, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTrip any
	require.NoError(t, json.Unmarshal(blob, &roundTrip))

	second := normalize.Item(roundTrip)
	assert.Equal(t, first, second)
}
