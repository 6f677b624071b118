package entity

// Supplier representa un proveedor ya normalizado.
// Address es siempre un string plano: si el backend envía un objeto de
// dirección, la normalización lo compone en una sola línea separada por comas.
type Supplier struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ContactName *string `json:"contactName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// SupplierInput datos de escritura para crear o actualizar un Supplier.
type SupplierInput struct {
	Name        string `json:"name"`
	ContactName string `json:"contactName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}
