package dto

import "github.com/shopspring/decimal"

// ProductProfitDTO ganancia acumulada de un producto, agrupada por la
// etiqueta "Nombre (details)".
type ProductProfitDTO struct {
	Label  string          `json:"label"`
	Profit decimal.Decimal `json:"profit"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Todos los agregados se calculan solo sobre registros activos del usuario.
type DashboardSummaryDTO struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`     // Σ qty * price de las ventas
	TotalItemsSold  int64           `json:"total_items_sold"`  // Σ qty de las ventas
	TotalCOGS       decimal.Decimal `json:"total_cogs"`        // Σ costo(factory_sku) * qty
	NetProfit       decimal.Decimal `json:"net_profit"`        // TotalRevenue - TotalCOGS
	NetProfitMargin decimal.Decimal `json:"net_profit_margin"` // % sobre ingresos; 0 si no hay ingresos

	CurrentStockValue decimal.Decimal `json:"current_stock_value"` // Σ costo(factory_sku) * stock
	TotalOutstanding  decimal.Decimal `json:"total_outstanding"`   // Σ costos de órdenes - Σ abonos

	LowStockProducts      []ProductResponse  `json:"low_stock_products"`      // stock <= umbral
	TopProfitableProducts []ProductProfitDTO `json:"top_profitable_products"` // top 5, ganancia desc
}
