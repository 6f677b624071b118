package repository

import (
	"context"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

// SupplierRepository define el puerto de acceso remoto para Supplier (DIP).
type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Create(ctx context.Context, input entity.SupplierInput) (*entity.Supplier, error)
	Update(ctx context.Context, id string, input entity.SupplierInput) (*entity.Supplier, error)
	Delete(ctx context.Context, id string) error
}
