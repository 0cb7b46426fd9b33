package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest una línea del formulario de compra a fábrica.
type OrderLineRequest struct {
	ProductDetails string          `json:"product_details"`
	FactorySKU     string          `json:"factory_sku"`
	Quantity       int64           `json:"quantity"`
	CostPerItem    decimal.Decimal `json:"cost_per_item"`
}

// SubmitOrdersRequest entrada de POST /api/orders/submit. Las líneas con
// campos vacíos o cantidades en cero se omiten sin rechazar el lote.
type SubmitOrdersRequest struct {
	Orders []OrderLineRequest `json:"orders" validate:"required,min=1"`
}

// UpdateOrderRequest entrada de PUT /api/orders/:id.
type UpdateOrderRequest struct {
	ProductDetails string          `json:"product_details" validate:"required"`
	FactorySKU     string          `json:"factory_sku" validate:"required"`
	Quantity       int64           `json:"quantity" validate:"required"`
	CostPerItem    decimal.Decimal `json:"cost_per_item"`
}

// OrderResponse salida de una orden de compra.
type OrderResponse struct {
	ID             int64           `json:"order_id"`
	ProductDetails string          `json:"product_details"`
	FactorySKU     string          `json:"factory_sku"`
	Quantity       int64           `json:"quantity"`
	CostPerItem    decimal.Decimal `json:"cost_per_item"`
	OrderDate      time.Time       `json:"order_date"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
	DeletedAt      *time.Time      `json:"deleted_at,omitempty"`
}
