package rest

import (
	"context"
	"net/url"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
	"github.com/tu-usuario/inventory-console/internal/domain/normalize"
)

// SupplierRepository implementa repository.SupplierRepository sobre el backend REST.
type SupplierRepository struct {
	client *Client
	path   string
}

// NewSupplierRepository construye el repositorio con la ruta de colección configurada.
func NewSupplierRepository(client *Client, path string) *SupplierRepository {
	return &SupplierRepository{client: client, path: path}
}

// List devuelve todos los proveedores normalizados.
func (r *SupplierRepository) List(ctx context.Context) ([]entity.Supplier, error) {
	payload, err := r.client.Get(ctx, r.path)
	if err != nil {
		return nil, err
	}
	raw := normalize.ExtractArray(payload, normalize.SupplierListPaths)
	suppliers := make([]entity.Supplier, 0, len(raw))
	for _, element := range raw {
		suppliers = append(suppliers, normalize.Supplier(element))
	}
	return suppliers, nil
}

// GetByID devuelve un proveedor normalizado.
func (r *SupplierRepository) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	payload, err := r.client.Get(ctx, r.path+"/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	supplier := normalize.SupplierEnvelope(payload)
	return &supplier, nil
}

// Create registra un proveedor.
func (r *SupplierRepository) Create(ctx context.Context, input entity.SupplierInput) (*entity.Supplier, error) {
	payload, err := r.client.Post(ctx, r.path, input)
	if err != nil {
		return nil, err
	}
	supplier := normalize.SupplierEnvelope(payload)
	return &supplier, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepository) Update(ctx context.Context, id string, input entity.SupplierInput) (*entity.Supplier, error) {
	payload, err := r.client.Put(ctx, r.path+"/"+url.PathEscape(id), input)
	if err != nil {
		return nil, err
	}
	supplier := normalize.SupplierEnvelope(payload)
	return &supplier, nil
}

// Delete elimina un proveedor.
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.path+"/"+url.PathEscape(id))
}
