package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

// ── fakes de repositorio ──

type fakeItemRepo struct {
	items []entity.Item
	err   error
}

func (f *fakeItemRepo) List(ctx context.Context) ([]entity.Item, error) { return f.items, f.err }
func (f *fakeItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) Create(ctx context.Context, in entity.ItemInput) (*entity.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) Update(ctx context.Context, id string, in entity.ItemInput) (*entity.Item, error) {
	return nil, nil
}
func (f *fakeItemRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeCategoryRepo struct {
	categories []entity.Category
	err        error
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	return f.categories, f.err
}
func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) Create(ctx context.Context, in entity.CategoryInput) (*entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) Update(ctx context.Context, id string, in entity.CategoryInput) (*entity.Category, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeSupplierRepo struct {
	suppliers []entity.Supplier
	err       error
}

func (f *fakeSupplierRepo) List(ctx context.Context) ([]entity.Supplier, error) {
	return f.suppliers, f.err
}
func (f *fakeSupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Create(ctx context.Context, in entity.SupplierInput) (*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Update(ctx context.Context, id string, in entity.SupplierInput) (*entity.Supplier, error) {
	return nil, nil
}
func (f *fakeSupplierRepo) Delete(ctx context.Context, id string) error { return nil }

func strPtr(s string) *string { return &s }

func TestCatalogRows_ResuelveNombresYOrdena(t *testing.T) {
	items := &fakeItemRepo{items: []entity.Item{
		{ID: "1", Name: "Zanahoria", CategoryID: strPtr("c1"), SupplierID: strPtr("s1")},
		{ID: "2", Name: "Ñandú", CategoryID: strPtr("c2")},
		{ID: "3", Name: "almendra"},
	}}
	categories := &fakeCategoryRepo{categories: []entity.Category{
		{ID: "c1", Name: "Verduras"},
		{ID: "c2", Name: "Aves"},
	}}
	suppliers := &fakeSupplierRepo{suppliers: []entity.Supplier{
		{ID: "s1", Name: "Huerta SA"},
	}}

	uc := NewCatalogUseCase(items, categories, suppliers, language.Spanish)
	rows, err := uc.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// colación española: ñ entre n y o, minúsculas indistintas
	assert.Equal(t, "almendra", rows[0].Item.Name)
	assert.Equal(t, "Ñandú", rows[1].Item.Name)
	assert.Equal(t, "Zanahoria", rows[2].Item.Name)

	assert.Equal(t, "Aves", rows[1].CategoryName)
	assert.Equal(t, "Huerta SA", rows[2].SupplierName)
	assert.Empty(t, rows[0].CategoryName, "item sin FK queda con nombre vacío")
}

func TestCatalogRows_FKQueNoResuelveNoEsError(t *testing.T) {
	items := &fakeItemRepo{items: []entity.Item{
		{ID: "1", Name: "Suelto", CategoryID: strPtr("huerfana")},
	}}
	uc := NewCatalogUseCase(items, &fakeCategoryRepo{}, &fakeSupplierRepo{}, language.Spanish)

	rows, err := uc.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].CategoryName)
}

func TestCatalogRows_ErrorDeTransporteAborta(t *testing.T) {
	boom := errors.New("backend caído")
	uc := NewCatalogUseCase(&fakeItemRepo{err: boom}, &fakeCategoryRepo{}, &fakeSupplierRepo{}, language.Spanish)

	_, err := uc.Rows(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
