package dto

import "time"

// StockInLine una variante recibida: details + cantidad.
type StockInLine struct {
	Details  string `json:"details"`
	Quantity int64  `json:"quantity"`
}

// StockInGroup un producto del formulario de recepción con sus variantes.
type StockInGroup struct {
	ProductName string        `json:"product_name"`
	SKU         string        `json:"sku"`
	FactorySKU  string        `json:"factory_sku"`
	Lines       []StockInLine `json:"lines"`
}

// StockInRequest entrada de POST /api/products/stock-in. Un (sku, details)
// ya existente acumula stock; uno nuevo crea el producto. Líneas incompletas
// se omiten sin rechazar el lote.
type StockInRequest struct {
	Groups []StockInGroup `json:"groups" validate:"required,min=1"`
}

// UpdateProductRequest entrada de PUT /api/products/:id.
type UpdateProductRequest struct {
	Name       string `json:"name" validate:"required"`
	SKU        string `json:"sku" validate:"required"`
	FactorySKU string `json:"factory_sku" validate:"required"`
	Details    string `json:"details"`
	Stock      int64  `json:"stock"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         int64      `json:"product_id"`
	Name       string     `json:"name"`
	SKU        string     `json:"sku"`
	FactorySKU string     `json:"factory_sku"`
	Details    string     `json:"details"`
	Stock      int64      `json:"stock"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}
