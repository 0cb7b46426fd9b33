package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Libreta-api/internal/domain/entity"
)

// AnalyticsRepository define las consultas de lectura que alimentan los
// reportes (dashboard, serie temporal, contabilidad, saldos pendientes).
// Las implementaciones son read-only y filtran siempre por userID y
// deleted_at IS NULL; los agregados se calculan en los use cases.
type AnalyticsRepository interface {
	// ActiveOrders devuelve todas las órdenes activas del usuario, sin orden garantizado.
	ActiveOrders(ctx context.Context, userID string) ([]entity.Order, error)

	// ActiveOrdersByDateDesc devuelve las órdenes activas, OrderDate descendente
	// (la más reciente primero). Alimenta el libro contable.
	ActiveOrdersByDateDesc(ctx context.Context, userID string) ([]entity.Order, error)

	// ActiveProducts devuelve todos los productos activos del usuario.
	ActiveProducts(ctx context.Context, userID string) ([]entity.Product, error)

	// ActiveSalesWithProduct devuelve las ventas activas con su producto,
	// SaleDate ascendente. El JOIN trae FactorySKU en un solo viaje: los
	// reportes resuelven costos por lote, nunca consulta por venta.
	ActiveSalesWithProduct(ctx context.Context, userID string) ([]SaleWithProduct, error)

	// PaymentsTotalByOrder devuelve la suma de abonos activos agrupada por
	// order_id. Órdenes sin abonos simplemente no aparecen en el mapa.
	PaymentsTotalByOrder(ctx context.Context, userID string) (map[int64]decimal.Decimal, error)
}
