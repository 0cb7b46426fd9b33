package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa una compra a fábrica. Define el costo unitario vigente del
// FactorySKU en el momento de la compra; no hay historial de costos versionado.
type Order struct {
	ID             int64
	UserID         string
	ProductDetails string
	FactorySKU     string
	Quantity       int64
	CostPerItem    decimal.Decimal
	OrderDate      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time // nil = activo
}

// TotalCost devuelve Quantity * CostPerItem.
func (o Order) TotalCost() decimal.Decimal {
	return o.CostPerItem.Mul(decimal.NewFromInt(o.Quantity))
}
