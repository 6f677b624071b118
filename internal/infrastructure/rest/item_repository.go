package rest

import (
	"context"
	"net/url"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
	"github.com/tu-usuario/inventory-console/internal/domain/normalize"
)

// ItemRepository implementa repository.ItemRepository sobre el backend REST.
type ItemRepository struct {
	client *Client
	path   string
}

// NewItemRepository construye el repositorio con la ruta de colección configurada.
func NewItemRepository(client *Client, path string) *ItemRepository {
	return &ItemRepository{client: client, path: path}
}

// List devuelve todos los items normalizados. Una respuesta con forma
// inesperada produce lista vacía, no error.
func (r *ItemRepository) List(ctx context.Context) ([]entity.Item, error) {
	payload, err := r.client.Get(ctx, r.path)
	if err != nil {
		return nil, err
	}
	raw := normalize.ExtractArray(payload, normalize.ItemListPaths)
	items := make([]entity.Item, 0, len(raw))
	for _, element := range raw {
		items = append(items, normalize.Item(element))
	}
	r.client.log.Trace().Int("count", len(items)).Msg("items normalizados")
	return items, nil
}

// GetByID devuelve un item normalizado.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	payload, err := r.client.Get(ctx, r.path+"/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	item := normalize.ItemEnvelope(payload)
	return &item, nil
}

// Create registra un item y devuelve la versión canónica que confirmó el backend.
func (r *ItemRepository) Create(ctx context.Context, input entity.ItemInput) (*entity.Item, error) {
	payload, err := r.client.Post(ctx, r.path, input)
	if err != nil {
		return nil, err
	}
	item := normalize.ItemEnvelope(payload)
	return &item, nil
}

// Update actualiza un item existente.
func (r *ItemRepository) Update(ctx context.Context, id string, input entity.ItemInput) (*entity.Item, error) {
	payload, err := r.client.Put(ctx, r.path+"/"+url.PathEscape(id), input)
	if err != nil {
		return nil, err
	}
	item := normalize.ItemEnvelope(payload)
	return &item, nil
}

// Delete elimina un item.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.path+"/"+url.PathEscape(id))
}
