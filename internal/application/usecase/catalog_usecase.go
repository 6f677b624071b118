package usecase

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tu-usuario/inventory-console/internal/application/dto"
	"github.com/tu-usuario/inventory-console/internal/domain/repository"
)

// CatalogUseCase arma la vista de catálogo: items con los nombres de su
// categoría y proveedor resueltos, ordenados por nombre con colación del
// idioma configurado (para que Ñandú no quede después de Zanahoria).
type CatalogUseCase struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	collator   *collate.Collator
}

// NewCatalogUseCase construye el caso de uso. tag define la colación del
// ordenamiento (ej. language.Spanish).
func NewCatalogUseCase(
	items repository.ItemRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	tag language.Tag,
) *CatalogUseCase {
	return &CatalogUseCase{
		items:      items,
		categories: categories,
		suppliers:  suppliers,
		collator:   collate.New(tag, collate.IgnoreCase),
	}
}

// Rows lista el catálogo completo. Los errores de transporte de cualquiera
// de las tres colecciones abortan la vista; una FK que no resuelve deja el
// nombre vacío, no es un error.
func (uc *CatalogUseCase) Rows(ctx context.Context) ([]dto.CatalogRow, error) {
	items, err := uc.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catálogo: listar items: %w", err)
	}
	categories, err := uc.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catálogo: listar categorías: %w", err)
	}
	suppliers, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catálogo: listar proveedores: %w", err)
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	supplierNames := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		supplierNames[s.ID] = s.Name
	}

	rows := make([]dto.CatalogRow, 0, len(items))
	for _, item := range items {
		row := dto.CatalogRow{Item: item}
		if item.CategoryID != nil {
			row.CategoryName = categoryNames[*item.CategoryID]
		}
		if item.SupplierID != nil {
			row.SupplierName = supplierNames[*item.SupplierID]
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return uc.collator.CompareString(rows[i].Item.Name, rows[j].Item.Name) < 0
	})
	return rows, nil
}
