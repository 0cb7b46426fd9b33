package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un abono parcial o total al costo de una orden de compra.
type Payment struct {
	ID          int64
	UserID      string
	OrderID     int64
	Amount      decimal.Decimal
	PaymentDate time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time // nil = activo
}
