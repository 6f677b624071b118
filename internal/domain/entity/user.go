package entity

import "strings"

// User representa un usuario del sistema ya normalizado.
// Firstname y Lastname siempre existen (pueden ser vacíos); si el backend
// solo envía un campo name completo, la normalización lo divide.
type User struct {
	ID        string  `json:"id"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Email     *string `json:"email,omitempty"`
	Username  *string `json:"username,omitempty"`
}

// FullName devuelve nombre y apellido unidos, sin espacios sobrantes.
func (u User) FullName() string {
	return strings.TrimSpace(u.Firstname + " " + u.Lastname)
}

// UserInput datos de escritura para crear o actualizar un User.
type UserInput struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
}
