package rest

import (
	"context"
	"net/url"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
	"github.com/tu-usuario/inventory-console/internal/domain/normalize"
)

// MovementRepository implementa repository.MovementRepository sobre el backend REST.
type MovementRepository struct {
	client *Client
	path   string
}

// NewMovementRepository construye el repositorio con la ruta de colección configurada.
func NewMovementRepository(client *Client, path string) *MovementRepository {
	return &MovementRepository{client: client, path: path}
}

// List devuelve todos los movimientos normalizados.
func (r *MovementRepository) List(ctx context.Context) ([]entity.Movement, error) {
	payload, err := r.client.Get(ctx, r.path)
	if err != nil {
		return nil, err
	}
	raw := normalize.ExtractArray(payload, normalize.MovementListPaths)
	movements := make([]entity.Movement, 0, len(raw))
	for _, element := range raw {
		movements = append(movements, normalize.Movement(element))
	}
	return movements, nil
}

// GetByID devuelve un movimiento normalizado.
func (r *MovementRepository) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	payload, err := r.client.Get(ctx, r.path+"/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	movement := normalize.MovementEnvelope(payload)
	return &movement, nil
}

// Create registra un movimiento.
func (r *MovementRepository) Create(ctx context.Context, input entity.MovementInput) (*entity.Movement, error) {
	payload, err := r.client.Post(ctx, r.path, input)
	if err != nil {
		return nil, err
	}
	movement := normalize.MovementEnvelope(payload)
	return &movement, nil
}

// Update corrige un movimiento existente.
func (r *MovementRepository) Update(ctx context.Context, id string, input entity.MovementInput) (*entity.Movement, error) {
	payload, err := r.client.Put(ctx, r.path+"/"+url.PathEscape(id), input)
	if err != nil {
		return nil, err
	}
	movement := normalize.MovementEnvelope(payload)
	return &movement, nil
}

// Delete elimina un movimiento.
func (r *MovementRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.path+"/"+url.PathEscape(id))
}
