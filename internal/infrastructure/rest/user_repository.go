package rest

import (
	"context"
	"net/url"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
	"github.com/tu-usuario/inventory-console/internal/domain/normalize"
)

// UserRepository implementa repository.UserRepository sobre el backend REST.
type UserRepository struct {
	client *Client
	path   string
}

// NewUserRepository construye el repositorio con la ruta de colección configurada.
func NewUserRepository(client *Client, path string) *UserRepository {
	return &UserRepository{client: client, path: path}
}

// List devuelve todos los usuarios normalizados.
func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	payload, err := r.client.Get(ctx, r.path)
	if err != nil {
		return nil, err
	}
	raw := normalize.ExtractArray(payload, normalize.UserListPaths)
	users := make([]entity.User, 0, len(raw))
	for _, element := range raw {
		users = append(users, normalize.User(element))
	}
	r.client.log.Trace().Int("count", len(users)).Msg("usuarios normalizados")
	return users, nil
}

// GetByID devuelve un usuario normalizado.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	payload, err := r.client.Get(ctx, r.path+"/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	user := normalize.UserEnvelope(payload)
	return &user, nil
}

// Create registra un usuario.
func (r *UserRepository) Create(ctx context.Context, input entity.UserInput) (*entity.User, error) {
	payload, err := r.client.Post(ctx, r.path, input)
	if err != nil {
		return nil, err
	}
	user := normalize.UserEnvelope(payload)
	return &user, nil
}

// Update actualiza un usuario existente.
func (r *UserRepository) Update(ctx context.Context, id string, input entity.UserInput) (*entity.User, error) {
	payload, err := r.client.Put(ctx, r.path+"/"+url.PathEscape(id), input)
	if err != nil {
		return nil, err
	}
	user := normalize.UserEnvelope(payload)
	return &user, nil
}

// Delete elimina un usuario.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.path+"/"+url.PathEscape(id))
}
