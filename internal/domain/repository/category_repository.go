package repository

import (
	"context"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

// CategoryRepository define el puerto de acceso remoto para Category (DIP).
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, input entity.CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, id string, input entity.CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
