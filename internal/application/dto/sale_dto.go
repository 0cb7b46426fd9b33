package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOutLine una variante vendida: details + cantidad + precio unitario.
type StockOutLine struct {
	Details  string          `json:"details"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// StockOutGroup un SKU del formulario de venta con sus variantes.
type StockOutGroup struct {
	SKU   string         `json:"sku"`
	Lines []StockOutLine `json:"lines"`
}

// StockOutRequest entrada de POST /api/sales/stock-out. Cada línea válida
// registra una venta y descuenta stock del producto (sin piso: puede quedar
// negativo). Líneas incompletas o de productos inexistentes se omiten.
type StockOutRequest struct {
	Groups []StockOutGroup `json:"groups" validate:"required,min=1"`
}

// UpdateSaleRequest entrada de PUT /api/sales/:id.
type UpdateSaleRequest struct {
	ProductID    int64           `json:"product_id" validate:"required"`
	Quantity     int64           `json:"quantity" validate:"required"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           int64           `json:"sale_id"`
	ProductID    int64           `json:"product_id"`
	Quantity     int64           `json:"quantity"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
	SaleDate     time.Time       `json:"sale_date"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
	DeletedAt    *time.Time      `json:"deleted_at,omitempty"`
}

// SaleWithProductResponse venta junto al producto vendido, para el listado
// de gestión de datos.
type SaleWithProductResponse struct {
	ID           int64           `json:"sale_id"`
	SKU          string          `json:"sku"`
	Details      string          `json:"details"`
	Quantity     int64           `json:"quantity"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
	SaleDate     time.Time       `json:"sale_date"`
	UpdatedAt    *time.Time      `json:"updated_at,omitempty"`
}
