package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountingRowDTO una orden del libro contable con lo pagado y lo pendiente.
// El costo sale de la propia orden, no de la resolución por factory_sku.
type AccountingRowDTO struct {
	OrderID        int64           `json:"order_id"`
	ProductDetails string          `json:"product_details"`
	FactorySKU     string          `json:"factory_sku"`
	OrderDate      time.Time       `json:"order_date"`
	TotalCost      decimal.Decimal `json:"total_cost"`  // qty * cost_per_item
	PaidAmount     decimal.Decimal `json:"paid_amount"` // Σ abonos activos de la orden
	Outstanding    decimal.Decimal `json:"outstanding"` // TotalCost - PaidAmount (puede ser negativo)
}

// AccountingReportDTO respuesta de GET /api/accounting: todas las órdenes
// activas (la más reciente primero) con totales globales.
type AccountingReportDTO struct {
	Rows             []AccountingRowDTO `json:"rows"`
	TotalOrderCosts  decimal.Decimal    `json:"total_order_costs"`
	TotalPaidAmount  decimal.Decimal    `json:"total_paid_amount"`
	TotalOutstanding decimal.Decimal    `json:"total_outstanding"`
}

// OutstandingItemDTO una orden con saldo pendiente estrictamente positivo.
type OutstandingItemDTO struct {
	OrderID    int64           `json:"order_id"`
	FactorySKU string          `json:"factory_sku"`
	Amount     decimal.Decimal `json:"amount"`
}
