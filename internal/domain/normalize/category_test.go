package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-console/internal/domain/normalize"
)

func TestCategory_StatusCrudoYDerivado(t *testing.T) {
	category := normalize.Category(map[string]any{
		"id":          float64(3),
		"name":        "Ferretería",
		"description": "Fijaciones y herrajes",
		"status":      "ACTIVE",
	})

	assert.Equal(t, "3", category.ID)
	assert.Equal(t, "Ferretería", category.Name)
	require.NotNil(t, category.Description)
	assert.Equal(t, "Fijaciones y herrajes", *category.Description)
	assert.Equal(t, "ACTIVE", category.Status, "status se conserva crudo, sin minúsculas")
	require.NotNil(t, category.IsActive)
	assert.True(t, *category.IsActive)
}

func TestCategory_IsActiveBooleanoGana(t *testing.T) {
	category := normalize.Category(map[string]any{"isActive": false, "status": "active"})
	require.NotNil(t, category.IsActive)
	assert.False(t, *category.IsActive, "isActive booleano tiene prioridad sobre status")
}

func TestCategory_StatusDesdeIsActive(t *testing.T) {
	// Sin status, el crudo cae al valor de isActive.
	category := normalize.Category(map[string]any{"isActive": true})
	assert.Equal(t, true, category.Status)
	require.NotNil(t, category.IsActive)
	assert.True(t, *category.IsActive)
}

func TestCategory_SinSenalQuedaIndefinido(t *testing.T) {
	category := normalize.Category(map[string]any{"name": "Varios"})
	assert.Nil(t, category.Status)
	assert.Nil(t, category.IsActive)
	assert.Nil(t, category.Description)
}

func TestCategoryEnvelope_ClaveSingular(t *testing.T) {
	payload := map[string]any{"category": map[string]any{"id": "c-1", "name": "Cables"}}
	category := normalize.CategoryEnvelope(payload)
	assert.Equal(t, "c-1", category.ID)
	assert.Equal(t, "Cables", category.Name)
}
