package normalize

import (
	"strings"

	"github.com/tu-usuario/inventory-console/internal/domain/entity"
)

// UserListPaths orden de resolución de envolturas para listados de usuarios.
// A diferencia de las demás colecciones, los listados de usuarios nunca
// llegan bajo items: el plural users ocupa ese lugar.
var UserListPaths = []Path{
	{"data"},
	{"users"},
	{"results"},
	{"data", "users"},
	{"data", "results"},
}

// User normaliza un elemento crudo a entity.User.
//
// Resolución de nombre:
//   - firstname sale del primer sinónimo explícito presente (firstname,
//     first_name, firstName);
//   - si no hay ninguno pero existe un campo name único, se divide por
//     espacios: primer token a firstname, el resto unido a lastname;
//   - un sinónimo explícito de lastname (lastname, last_name, lastName)
//     pisa lo que haya dejado la división.
//
// Con firstname explícito presente, la división no ocurre: name se ignora y
// lastname queda vacío salvo sinónimo explícito.
func User(raw any) entity.User {
	r := AsRecord(raw)

	firstname := ""
	lastname := ""
	if p := r.StringPtr("firstname", "first_name", "firstName"); p != nil {
		firstname = *p
	} else if name := r.StringOr("", "name"); name != "" {
		tokens := strings.Fields(name)
		if len(tokens) > 0 {
			firstname = tokens[0]
			lastname = strings.Join(tokens[1:], " ")
		}
	}
	if p := r.StringPtr("lastname", "last_name", "lastName"); p != nil {
		lastname = *p
	}

	return entity.User{
		ID:        r.ID("id", "_id"),
		Firstname: firstname,
		Lastname:  lastname,
		Email:     r.StringPtr("email"),
		Username:  r.StringPtr("username"),
	}
}

// UserEnvelope desempaqueta la envoltura de entidad única y normaliza.
func UserEnvelope(payload any) entity.User {
	return User(UnwrapEntity(payload, "user"))
}
