package normalize

import "github.com/tu-usuario/inventory-console/internal/domain/entity"

// CategoryListPaths orden de resolución de envolturas para listados de categorías.
var CategoryListPaths = []Path{
	{"data"},
	{"items"},
	{"results"},
	{"data", "categories"},
	{"data", "items"},
	{"data", "results"},
}

// Category normaliza un elemento crudo a entity.Category.
// Status se conserva crudo (string, bool o nil); IsActive es la lectura
// booleana derivada con la precedencia de Record.ActiveFlag.
func Category(raw any) entity.Category {
	r := AsRecord(raw)
	return entity.Category{
		ID:          r.ID("id", "_id"),
		Name:        r.StringOr("", "name"),
		Description: r.StringPtr("description"),
		Status:      r.First("status", "isActive"),
		IsActive:    r.ActiveFlag(),
	}
}

// CategoryEnvelope desempaqueta la envoltura de entidad única y normaliza.
func CategoryEnvelope(payload any) entity.Category {
	return Category(UnwrapEntity(payload, "category"))
}
