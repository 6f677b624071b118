package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-console/internal/domain/normalize"
)

func TestSupplier_ComposicionDeDireccion(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]any
		want *string
	}{
		{
			name: "objeto con partes vacías descartadas",
			raw: map[string]any{"address": map[string]any{
				"street": "1 Main St", "city": "Metropolis", "country": "",
			}},
			want: ptr("1 Main St, Metropolis"),
		},
		{
			name: "todas las partes en orden",
			raw: map[string]any{"address": map[string]any{
				"line1": "Calle 26 # 13-25", "line2": "Torre B", "city": "Bogotá",
				"state": "Cundinamarca", "postalCode": "110311", "country": "CO",
			}},
			want: ptr("Calle 26 # 13-25, Torre B, Bogotá, Cundinamarca, 110311, CO"),
		},
		{
			name: "sinónimos de calle y región",
			raw: map[string]any{"address": map[string]any{
				"addressLine1": "Av. 68", "region": "Antioquia", "zip": "050001",
			}},
			want: ptr("Av. 68, Antioquia, 050001"),
		},
		{
			name: "string pasa tal cual",
			raw:  map[string]any{"address": "123 Elsewhere"},
			want: ptr("123 Elsewhere"),
		},
		{
			name: "partes con solo espacios se recortan",
			raw: map[string]any{"address": map[string]any{
				"street": "  1 Main St  ", "city": "   ",
			}},
			want: ptr("1 Main St"),
		},
		{
			name: "objeto sin partes útiles queda nil",
			raw:  map[string]any{"address": map[string]any{"planet": "Tierra"}},
			want: nil,
		},
		{
			name: "sin address queda nil",
			raw:  map[string]any{},
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			supplier := normalize.Supplier(tc.raw)
			if tc.want == nil {
				assert.Nil(t, supplier.Address)
				return
			}
			require.NotNil(t, supplier.Address)
			assert.Equal(t, *tc.want, *supplier.Address)
		})
	}
}

func TestSupplier_ContactoAnidado(t *testing.T) {
	supplier := normalize.Supplier(map[string]any{
		"id":   float64(4),
		"name": "Distribuciones El Dorado",
		"contact": map[string]any{
			"fullName":    "María Pérez",
			"email":       "ventas@eldorado.example",
			"phoneNumber": "+57 1 555 0101",
		},
	})

	assert.Equal(t, "4", supplier.ID)
	require.NotNil(t, supplier.ContactName)
	assert.Equal(t, "María Pérez", *supplier.ContactName)
	require.NotNil(t, supplier.Email)
	assert.Equal(t, "ventas@eldorado.example", *supplier.Email)
	require.NotNil(t, supplier.Phone)
	assert.Equal(t, "+57 1 555 0101", *supplier.Phone)
}

func TestSupplier_ContactoPlanoGanaSobreAnidado(t *testing.T) {
	supplier := normalize.Supplier(map[string]any{
		"contact_name": "María",
		"contact":      map[string]any{"name": "Otra Persona"},
	})
	require.NotNil(t, supplier.ContactName)
	assert.Equal(t, "María", *supplier.ContactName)
}

func TestSupplier_EstadoActivo(t *testing.T) {
	active := normalize.Supplier(map[string]any{"status": "Active"})
	require.NotNil(t, active.IsActive)
	assert.True(t, *active.IsActive)

	unknown := normalize.Supplier(map[string]any{"name": "X"})
	assert.Nil(t, unknown.IsActive)
}

func TestSupplierEnvelope_ClaveSingular(t *testing.T) {
	payload := map[string]any{"supplier": map[string]any{"id": "s-2", "name": "Andina"}}
	supplier := normalize.SupplierEnvelope(payload)
	assert.Equal(t, "s-2", supplier.ID)
	assert.Equal(t, "Andina", supplier.Name)
}

func ptr(s string) *string { return &s }
