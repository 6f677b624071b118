package repository

import (
	"context"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

// ItemRepository define el puerto de acceso remoto para Item (DIP).
// La implementación concreta habla HTTP con el backend; para tests se
// puede inyectar un doble.
type ItemRepository interface {
	List(ctx context.Context) ([]entity.Item, error)
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Create(ctx context.Context, input entity.ItemInput) (*entity.Item, error)
	Update(ctx context.Context, id string, input entity.ItemInput) (*entity.Item, error)
	Delete(ctx context.Context, id string) error
}
