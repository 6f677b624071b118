package normalize

import (
	"strings"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

// MovementListPaths orden de resolución de envolturas para listados de movimientos.
var MovementListPaths = []Path{
	{"data"},
	{"items"},
	{"results"},
	{"data", "movements"},
	{"data", "items"},
	{"data", "results"},
}

// Movement normaliza un elemento crudo a entity.Movement.
// Las claves foráneas se resuelven por sinónimos y después por el id del
// objeto anidado; los resúmenes item/user solo se pueblan si el backend
// envió el objeto anidado no nulo.
func Movement(raw any) entity.Movement {
	r := AsRecord(raw)
	return entity.Movement{
		ID:            r.ID("id", "_id"),
		MovementType:  r.StringOr("", "movementType", "movement_type", "type"),
		Quantity:      r.NumberOr(0, "quantity"),
		ReasonText:    r.StringPtr("reasonText", "reason_text", "reason"),
		ReferenceText: r.StringPtr("referenceText", "reference_text", "reference"),
		Notes:         r.StringPtr("notes"),
		ItemID:        r.IDPtr("itemId", "item_id", "item.id"),
		UserID:        r.IDPtr("userId", "user_id", "user.id"),
		Item:          movementItemRef(r.get("item")),
		User:          movementUserRef(r.get("user")),
	}
}

// MovementEnvelope desempaqueta la envoltura de entidad única y normaliza.
func MovementEnvelope(payload any) entity.Movement {
	return Movement(UnwrapEntity(payload, "movement"))
}

func movementItemRef(raw any) *entity.MovementItemRef {
	r := AsRecord(raw)
	if r == nil {
		return nil
	}
	return &entity.MovementItemRef{
		ID:   r.ID("id", "_id"),
		Name: r.StringOr("", "name"),
		SKU:  r.StringOr("", "sku"),
	}
}

// movementUserRef deriva el nombre visible del usuario: nombre y apellido
// unidos si existen, después el campo name, después username, y vacío si
// no hay nada.
func movementUserRef(raw any) *entity.MovementUserRef {
	r := AsRecord(raw)
	if r == nil {
		return nil
	}
	name := strings.TrimSpace(strings.TrimSpace(
		r.StringOr("", "firstname", "first_name", "firstName")) + " " +
		strings.TrimSpace(r.StringOr("", "lastname", "last_name", "lastName")))
	if name == "" {
		name = r.StringOr("", "name", "username")
	}
	return &entity.MovementUserRef{
		ID:   r.ID("id", "_id"),
		Name: name,
	}
}
