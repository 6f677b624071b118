package repository

import (
	"context"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

// MovementRepository define el puerto de acceso remoto para Movement (DIP).
type MovementRepository interface {
	List(ctx context.Context) ([]entity.Movement, error)
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	Create(ctx context.Context, input entity.MovementInput) (*entity.Movement, error)
	Update(ctx context.Context, id string, input entity.MovementInput) (*entity.Movement, error)
	Delete(ctx context.Context, id string) error
}
