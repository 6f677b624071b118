package rest

import (
	"context"
	"net/url"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
	"github.com/tu-usuario/inventory-console/internal/domain/normalize"
)

// CategoryRepository implementa repository.CategoryRepository sobre el backend REST.
type CategoryRepository struct {
	client *Client
	path   string
}

// NewCategoryRepository construye el repositorio con la ruta de colección configurada.
func NewCategoryRepository(client *Client, path string) *CategoryRepository {
	return &CategoryRepository{client: client, path: path}
}

// List devuelve todas las categorías normalizadas.
func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	payload, err := r.client.Get(ctx, r.path)
	if err != nil {
		return nil, err
	}
	raw := normalize.ExtractArray(payload, normalize.CategoryListPaths)
	categories := make([]entity.Category, 0, len(raw))
	for _, element := range raw {
		categories = append(categories, normalize.Category(element))
	}
	return categories, nil
}

// GetByID devuelve una categoría normalizada.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	payload, err := r.client.Get(ctx, r.path+"/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	category := normalize.CategoryEnvelope(payload)
	return &category, nil
}

// Create registra una categoría.
func (r *CategoryRepository) Create(ctx context.Context, input entity.CategoryInput) (*entity.Category, error) {
	payload, err := r.client.Post(ctx, r.path, input)
	if err != nil {
		return nil, err
	}
	category := normalize.CategoryEnvelope(payload)
	return &category, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepository) Update(ctx context.Context, id string, input entity.CategoryInput) (*entity.Category, error) {
	payload, err := r.client.Put(ctx, r.path+"/"+url.PathEscape(id), input)
	if err != nil {
		return nil, err
	}
	category := normalize.CategoryEnvelope(payload)
	return &category, nil
}

// Delete elimina una categoría.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.path+"/"+url.PathEscape(id))
}
