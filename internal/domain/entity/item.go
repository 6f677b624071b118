package entity

// Item representa un artículo de inventario ya normalizado (registro canónico).
// Los campos opcionales usan punteros: nil significa que el backend no envió
// el dato, nunca se confunde con el cero.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	SKU         string   `json:"sku"`
	Quantity    int      `json:"quantity"`
	Price       float64  `json:"price"`
	Cost        *float64 `json:"cost,omitempty"`
	MinQuantity *float64 `json:"minQuantity,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	CategoryID  *string  `json:"categoryId,omitempty"`
	SupplierID  *string  `json:"supplierId,omitempty"`
}

// ItemInput datos de escritura para crear o actualizar un Item.
// Se serializa con los nombres camelCase que espera el backend.
type ItemInput struct {
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	MinQuantity float64 `json:"minQuantity"`
	Unit        string  `json:"unit"`
	CategoryID  string  `json:"categoryId"`
	SupplierID  string  `json:"supplierId"`
}
