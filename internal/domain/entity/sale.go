package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta (salida de stock). Registrarla descuenta Quantity
// del stock del producto referenciado, sin piso: sobrevender produce stock negativo.
type Sale struct {
	ID           int64
	UserID       string
	ProductID    int64
	Quantity     int64
	PricePerItem decimal.Decimal
	SaleDate     time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time // nil = activo
}

// Revenue devuelve Quantity * PricePerItem.
func (s Sale) Revenue() decimal.Decimal {
	return s.PricePerItem.Mul(decimal.NewFromInt(s.Quantity))
}
