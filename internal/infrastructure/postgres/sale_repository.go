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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, user_id, product_id, quantity, price_per_item, sale_date, updated_at, deleted_at`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una nueva venta y devuelve el ID generado.
func (r *SaleRepo) Create(s *entity.Sale) (int64, error) {
	query := `
		INSERT INTO sales (user_id, product_id, quantity, price_per_item, sale_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		s.UserID, s.ProductID, s.Quantity, s.PricePerItem, s.SaleDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	return id, nil
}

// GetByID obtiene una venta del usuario por ID.
func (r *SaleRepo) GetByID(userID string, id int64) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE user_id = $1 AND id = $2`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.PricePerItem,
		&s.SaleDate, &s.UpdatedAt, &s.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListActiveWithProduct lista las ventas activas del usuario con los datos del
// producto vendido, ID descendente. El JOIN no filtra el producto por
// deleted_at: una venta activa de un producto ya eliminado sigue listándose.
func (r *SaleRepo) ListActiveWithProduct(userID string) ([]repository.SaleWithProduct, error) {
	query := `
		SELECT s.id, s.user_id, s.product_id, s.quantity, s.price_per_item, s.sale_date,
		       s.updated_at, s.deleted_at, p.name, p.sku, p.factory_sku, p.details
		FROM sales s
		JOIN products p ON p.id = s.product_id
		WHERE s.user_id = $1 AND s.deleted_at IS NULL
		ORDER BY s.id DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list sales with product: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleWithProduct
	for rows.Next() {
		var sp repository.SaleWithProduct
		if err := rows.Scan(&sp.Sale.ID, &sp.Sale.UserID, &sp.Sale.ProductID, &sp.Sale.Quantity,
			&sp.Sale.PricePerItem, &sp.Sale.SaleDate, &sp.Sale.UpdatedAt, &sp.Sale.DeletedAt,
			&sp.ProductName, &sp.SKU, &sp.FactorySKU, &sp.Details); err != nil {
			return nil, fmt.Errorf("scan sale with product: %w", err)
		}
		list = append(list, sp)
	}
	return list, rows.Err()
}

// Update sobreescribe los campos editables de la venta.
func (r *SaleRepo) Update(s *entity.Sale) error {
	query := `
		UPDATE sales
		SET product_id = $3, quantity = $4, price_per_item = $5, updated_at = $6
		WHERE user_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		s.UserID, s.ID, s.ProductID, s.Quantity, s.PricePerItem, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca la venta como eliminada.
func (r *SaleRepo) SoftDelete(userID string, id int64, at time.Time) error {
	query := `
		UPDATE sales SET deleted_at = $3
		WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, userID, id, at)
	if err != nil {
		return fmt.Errorf("soft delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore reactiva una venta eliminada.
func (r *SaleRepo) Restore(userID string, id int64) error {
	query := `
		UPDATE sales SET deleted_at = NULL
		WHERE user_id = $1 AND id = $2 AND deleted_at IS NOT NULL`
	cmd, err := r.q.Exec(context.Background(), query, userID, id)
	if err != nil {
		return fmt.Errorf("restore sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListDeletedSince lista las ventas eliminadas dentro de la ventana de papelera.
func (r *SaleRepo) ListDeletedSince(userID string, cutoff time.Time) ([]entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE user_id = $1 AND deleted_at >= $2
		ORDER BY deleted_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list deleted sales: %w", err)
	}
	defer rows.Close()
	var list []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.PricePerItem,
			&s.SaleDate, &s.UpdatedAt, &s.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
