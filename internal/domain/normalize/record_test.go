package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-console/internal/domain/normalize"
)

func TestFirst_PrecedenciaDeRutas(t *testing.T) {
	r := normalize.Record{
		"reason_text": "segundo",
		"reason":      "tercero",
	}

	v := r.First("reasonText", "reason_text", "reason")
	assert.Equal(t, "segundo", v, "debe ganar el primer sinónimo presente, no el último")

	assert.Nil(t, r.First("noExiste", "tampoco"), "sin candidatos presentes el resultado es nil")
}

func TestFirst_RutasAnidadas(t *testing.T) {
	r := normalize.Record{
		"contact": map[string]any{"name": "María"},
	}

	assert.Equal(t, "María", r.First("contactName", "contact.name"))
	assert.Nil(t, r.First("contact.phone.mobile"), "segmento intermedio no objeto devuelve nil")
}

func TestStringOr_CoercionDeEscalares(t *testing.T) {
	r := normalize.Record{
		"numeric": float64(7),
		"flag":    true,
		"nested":  map[string]any{"x": 1},
	}

	assert.Equal(t, "7", r.StringOr("", "numeric"), "los números se formatean sin decimales sobrantes")
	assert.Equal(t, "true", r.StringOr("", "flag"))
	assert.Equal(t, "def", r.StringOr("def", "nested"), "un objeto no coerciona: gana el default")
	assert.Equal(t, "def", r.StringOr("def", "ausente"))
}

func TestNumberOr_ConversionEstricta(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want float64
	}{
		{"número JSON", float64(42.5), 42.5},
		{"string numérico", "300", 300},
		{"string con espacios", " 12.5 ", 12.5},
		{"string no numérico", "oops", 0},
		{"booleano no convierte", true, 0},
		{"objeto no convierte", map[string]any{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := normalize.Record{"quantity": tc.raw}
			assert.Equal(t, tc.want, r.NumberOr(0, "quantity"))
		})
	}
}

func TestNumberPtr_OpcionalAusenteEsNil(t *testing.T) {
	r := normalize.Record{"minQuantity": "oops"}

	assert.Nil(t, r.NumberPtr("minQuantity"), "opcional no numérico queda nil, no 0")
	assert.Nil(t, r.NumberPtr("ausente"))

	r = normalize.Record{"minQuantity": float64(5)}
	p := r.NumberPtr("minQuantity")
	require.NotNil(t, p)
	assert.Equal(t, 5.0, *p)
}

func TestIDPtr_VacioCuentaComoAusente(t *testing.T) {
	r := normalize.Record{
		"categoryId": "",
		"category":   map[string]any{"id": float64(9)},
	}

	p := r.IDPtr("categoryId", "category.id")
	require.NotNil(t, p, "el string vacío debe dejar pasar al candidato anidado")
	assert.Equal(t, "9", *p, "el id numérico anidado se convierte a string decimal")

	assert.Nil(t, normalize.Record{}.IDPtr("categoryId", "category.id"))
}

func TestActiveFlag_TablaDeCoercion(t *testing.T) {
	truePtr := true
	falsePtr := false
	cases := []struct {
		name string
		raw  normalize.Record
		want *bool
	}{
		{"isActive booleano gana sobre status", normalize.Record{"isActive": false, "status": "active"}, &falsePtr},
		{"status booleano", normalize.Record{"status": true}, &truePtr},
		{"status string sin distinguir mayúsculas", normalize.Record{"status": "ACTIVE"}, &truePtr},
		{"status string inactivo", normalize.Record{"status": "inactive"}, &falsePtr},
		{"sin señal queda indefinido", normalize.Record{}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.raw.ActiveFlag()
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}
