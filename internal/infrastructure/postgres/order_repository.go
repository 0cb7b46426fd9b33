package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, user_id, product_details, factory_sku, quantity, cost_per_item, order_date, updated_at, deleted_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden y devuelve el ID generado.
func (r *OrderRepo) Create(o *entity.Order) (int64, error) {
	query := `
		INSERT INTO orders (user_id, product_details, factory_sku, quantity, cost_per_item, order_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		o.UserID, o.ProductDetails, o.FactorySKU, o.Quantity, o.CostPerItem, o.OrderDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return id, nil
}

// GetByID obtiene una orden del usuario por ID.
func (r *OrderRepo) GetByID(userID string, id int64) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 AND id = $2`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&o.ID, &o.UserID, &o.ProductDetails, &o.FactorySKU, &o.Quantity,
		&o.CostPerItem, &o.OrderDate, &o.UpdatedAt, &o.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListActive lista las órdenes activas del usuario, ID descendente.
func (r *OrderRepo) ListActive(userID string) ([]entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY id DESC`
	return r.list(query, userID)
}

// Update sobreescribe los campos editables de la orden.
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `
		UPDATE orders
		SET product_details = $3, factory_sku = $4, quantity = $5, cost_per_item = $6, updated_at = $7
		WHERE user_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		o.UserID, o.ID, o.ProductDetails, o.FactorySKU, o.Quantity, o.CostPerItem, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la orden como eliminada.
func (r *OrderRepo) SoftDelete(userID string, id int64, at time.Time) error {
	query := `
		UPDATE orders SET deleted_at = $3
		WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, userID, id, at)
	if err != nil {
		return fmt.Errorf("soft delete order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore reactiva una orden eliminada.
func (r *OrderRepo) Restore(userID string, id int64) error {
	query := `
		UPDATE orders SET deleted_at = NULL
		WHERE user_id = $1 AND id = $2 AND deleted_at IS NOT NULL`
	cmd, err := r.q.Exec(context.Background(), query, userID, id)
	if err != nil {
		return fmt.Errorf("restore order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListDeletedSince lista las órdenes eliminadas dentro de la ventana de papelera.
func (r *OrderRepo) ListDeletedSince(userID string, cutoff time.Time) ([]entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 AND deleted_at >= $2
		ORDER BY deleted_at DESC`
	return r.list(query, userID, cutoff)
}

func (r *OrderRepo) list(query string, args ...any) ([]entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
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
