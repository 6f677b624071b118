package normalize

import (
	"strings"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

// SupplierListPaths orden de resolución de envolturas para listados de proveedores.
var SupplierListPaths = []Path{
	{"data"},
	{"items"},
	{"results"},
	{"data", "suppliers"},
	{"data", "items"},
	{"data", "results"},
}

// Supplier normaliza un elemento crudo a entity.Supplier.
// Los datos de contacto caen a través del objeto anidado contact; la
// dirección se compone en una línea si llega como objeto.
func Supplier(raw any) entity.Supplier {
	r := AsRecord(raw)
	return entity.Supplier{
		ID:          r.ID("id", "_id"),
		Name:        r.StringOr("", "name"),
		ContactName: r.StringPtr("contactName", "contact_name", "contact.name", "contact.fullName"),
		Email:       r.StringPtr("email", "emailAddress", "contact.email"),
		Phone:       r.StringPtr("phone", "phoneNumber", "contact.phone", "contact.phoneNumber"),
		Address:     composeAddress(r),
		IsActive:    r.ActiveFlag(),
	}
}

// SupplierEnvelope desempaqueta la envoltura de entidad única y normaliza.
func SupplierEnvelope(payload any) entity.Supplier {
	return Supplier(UnwrapEntity(payload, "supplier"))
}

// Partes de la dirección en el orden en que se concatenan. Cada parte tiene
// su propia cadena de sinónimos.
var addressParts = [][]string{
	{"line1", "addressLine1", "street"},
	{"line2", "addressLine2"},
	{"city"},
	{"state", "region", "province"},
	{"postalCode", "zip"},
	{"country"},
}

// composeAddress deriva la dirección plana del proveedor:
//   - si address es un objeto, concatena con comas las partes no vacías
//     (calle, línea 2, ciudad, región, código postal, país);
//   - si el objeto no aporta ninguna parte, o address es un string, usa el
//     string tal cual;
//   - nil si no hay nada utilizable.
func composeAddress(r Record) *string {
	obj := AsRecord(r.get("address"))
	if obj != nil {
		parts := make([]string, 0, len(addressParts))
		for _, synonyms := range addressParts {
			v := obj.First(synonyms...)
			if v == nil {
				continue
			}
			s, ok := asString(v)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			joined := strings.Join(parts, ", ")
			return &joined
		}
	}
	if s, ok := r.get("address").(string); ok {
		return &s
	}
	return nil
}
