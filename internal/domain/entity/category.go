package entity

// Category representa una categoría de artículos ya normalizada.
// Status conserva el valor crudo del backend (string, bool o nil) porque
// distintos despliegues lo envían con tipos distintos; IsActive es la
// interpretación booleana derivada de ese valor.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      any     `json:"status,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// CategoryInput datos de escritura para crear o actualizar una Category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      any    `json:"status,omitempty"`
}
