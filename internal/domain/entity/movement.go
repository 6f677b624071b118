package entity

// Tipos de movimiento conocidos. El backend puede enviar otros valores;
// la normalización no valida pertenencia a esta lista.
const (
	MovementTypeIn         = "IN"
	MovementTypeOut        = "OUT"
	MovementTypeTransfer   = "TRANSFER"
	MovementTypeAdjustment = "ADJUSTMENT"
	MovementTypeReturn     = "RETURN"
)

// MovementItemRef resumen desnormalizado del artículo asociado a un movimiento.
type MovementItemRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku"`
}

// MovementUserRef resumen desnormalizado del usuario que registró el movimiento.
type MovementUserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Movement representa un movimiento de inventario ya normalizado.
// ItemID y UserID se conservan como strings planos tal cual llegan;
// Item y User solo se pueblan si el backend envió el objeto anidado.
type Movement struct {
	ID            string           `json:"id"`
	MovementType  string           `json:"movementType"`
	Quantity      float64          `json:"quantity"`
	ReasonText    *string          `json:"reasonText,omitempty"`
	ReferenceText *string          `json:"referenceText,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	ItemID        *string          `json:"itemId,omitempty"`
	UserID        *string          `json:"userId,omitempty"`
	Item          *MovementItemRef `json:"item,omitempty"`
	User          *MovementUserRef `json:"user,omitempty"`
}

// MovementInput datos de escritura para registrar o corregir un movimiento.
type MovementInput struct {
	MovementType  string  `json:"movementType"`
	Quantity      float64 `json:"quantity"`
	ReasonText    string  `json:"reasonText,omitempty"`
	ReferenceText string  `json:"referenceText,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	ItemID        string  `json:"itemId"`
	UserID        string  `json:"userId"`
}
