package normalize

import "github.com/tu-usuario/inventory-console/internal/domain/entity"

// ItemListPaths orden de resolución de envolturas para listados de items.
// La variante data.* acepta cualquier plural porque algunos despliegues
// responden el listado de items bajo la clave de otra colección.
var ItemListPaths = []Path{
	{"data"},
	{"items"},
	{"results"},
	{"data", "items"},
	{"data", "results"},
	{"data", "users"},
	{"data", "categories"},
	{"data", "suppliers"},
	{"data", "movements"},
}

// Item normaliza un elemento crudo a entity.Item.
// Quantity y Price son obligatorios: ausentes o no numéricos quedan en 0.
// Cost, MinQuantity y Unit son opcionales: ausentes quedan en nil.
func Item(raw any) entity.Item {
	r := AsRecord(raw)
	return entity.Item{
		ID:          r.ID("id", "_id"),
		Name:        r.StringOr("", "name"),
		SKU:         r.StringOr("", "sku"),
		Quantity:    r.IntOr(0, "quantity"),
		Price:       r.NumberOr(0, "price"),
		Cost:        r.NumberPtr("cost"),
		MinQuantity: r.NumberPtr("minQuantity", "min_quantity"),
		Unit:        r.StringPtr("unit"),
		CategoryID:  r.IDPtr("categoryId", "category_id", "category.id"),
		SupplierID:  r.IDPtr("supplierId", "supplier_id", "supplier.id"),
	}
}

// ItemEnvelope desempaqueta la envoltura de entidad única y normaliza.
func ItemEnvelope(payload any) entity.Item {
	return Item(UnwrapEntity(payload, "item"))
}
