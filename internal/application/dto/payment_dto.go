package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitPaymentRequest entrada de POST /api/payments. PaymentDate es opcional
// en formato YYYY-MM-DD; vacío usa la fecha actual.
type SubmitPaymentRequest struct {
	OrderID     int64           `json:"order_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdatePaymentRequest entrada de PUT /api/payments/:id.
type UpdatePaymentRequest struct {
	OrderID     int64           `json:"order_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
}

// PaymentResponse salida de un abono.
type PaymentResponse struct {
	ID          int64           `json:"payment_id"`
	OrderID     int64           `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
}
