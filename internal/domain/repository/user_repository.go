package repository

import (
	"context"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

// UserRepository define el puerto de acceso remoto para User (DIP).
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, input entity.UserInput) (*entity.User, error)
	Update(ctx context.Context, id string, input entity.UserInput) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
