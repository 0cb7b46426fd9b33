package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura que alimentan los reportes.
// Siempre filtra por user_id y deleted_at IS NULL; los agregados de negocio
// (ingresos, COGS, saldos) se calculan en los use cases.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de lectura para reportes.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// ActiveOrders devuelve todas las órdenes activas del usuario.
func (r *AnalyticsRepo) ActiveOrders(ctx context.Context, userID string) ([]entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 AND deleted_at IS NULL`
	return r.queryOrders(ctx, query, userID)
}

// ActiveOrdersByDateDesc devuelve las órdenes activas, la más reciente primero.
func (r *AnalyticsRepo) ActiveOrdersByDateDesc(ctx context.Context, userID string) ([]entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY order_date DESC, id DESC`
	return r.queryOrders(ctx, query, userID)
}

// ActiveProducts devuelve todos los productos activos del usuario.
func (r *AnalyticsRepo) ActiveProducts(ctx context.Context, userID string) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE user_id = $1 AND deleted_at IS NULL`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.SKU, &p.FactorySKU, &p.Details,
			&p.Stock, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ActiveSalesWithProduct devuelve las ventas activas con su producto, fecha
// ascendente. El JOIN trae el factory_sku de cada venta en un solo viaje.
func (r *AnalyticsRepo) ActiveSalesWithProduct(ctx context.Context, userID string) ([]repository.SaleWithProduct, error) {
	query := `
		SELECT s.id, s.user_id, s.product_id, s.quantity, s.price_per_item, s.sale_date,
		       s.updated_at, s.deleted_at, p.name, p.sku, p.factory_sku, p.details
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.user_id = $1 AND s.deleted_at IS NULL
		ORDER BY s.sale_date ASC, s.id ASC`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics sales: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleWithProduct
	for rows.Next() {
		var sp repository.SaleWithProduct
		if err := rows.Scan(&sp.Sale.ID, &sp.Sale.UserID, &sp.Sale.ProductID, &sp.Sale.Quantity,
			&sp.Sale.PricePerItem, &sp.Sale.SaleDate, &sp.Sale.UpdatedAt, &sp.Sale.DeletedAt,
			&sp.ProductName, &sp.SKU, &sp.FactorySKU, &sp.Details); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, sp)
	}
	return list, rows.Err()
}

// PaymentsTotalByOrder devuelve la suma de abonos activos agrupada por orden.
func (r *AnalyticsRepo) PaymentsTotalByOrder(ctx context.Context, userID string) (map[int64]decimal.Decimal, error) {
	query := `
		SELECT order_id, COALESCE(SUM(amount), 0)
		FROM payments
		WHERE user_id = $1 AND deleted_at IS NULL
		GROUP BY order_id`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics payments: %w", err)
	}
	defer rows.Close()
	totals := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var orderID int64
		var total decimal.Decimal
		if err := rows.Scan(&orderID, &total); err != nil {
			return nil, fmt.Errorf("scan payment total: %w", err)
		}
		totals[orderID] = total
	}
	return totals, rows.Err()
}

func (r *AnalyticsRepo) queryOrders(ctx context.Context, query, userID string) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics orders: %w", err)
	}
	defer rows.Close()
	var list []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductDetails, &o.FactorySKU, &o.Quantity,
			&o.CostPerItem, &o.OrderDate, &o.UpdatedAt, &o.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
