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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, user_id, name, sku, factory_sku, details, stock, created_at, updated_at, deleted_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.SKU, &p.FactorySKU, &p.Details,
		&p.Stock, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto y devuelve el ID generado.
func (r *ProductRepo) Create(product *entity.Product) (int64, error) {
	query := `
		INSERT INTO products (user_id, name, sku, factory_sku, details, stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		product.UserID, product.Name, product.SKU, product.FactorySKU,
		product.Details, product.Stock, product.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

// GetByID obtiene un producto del usuario por ID.
func (r *ProductRepo) GetByID(userID string, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 AND id = $2`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetActiveBySKUAndDetails busca por la identidad de negocio (sku, details)
// entre los productos activos del usuario.
func (r *ProductRepo) GetActiveBySKUAndDetails(userID, sku, details string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE user_id = $1 AND sku = $2 AND details = $3 AND deleted_at IS NULL
		LIMIT 1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, userID, sku, details))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku and details: %w", err)
	}
	return p, nil
}

// ListActive lista los productos activos del usuario, ID descendente.
func (r *ProductRepo) ListActive(userID string) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY id DESC`
	return r.list(query, userID)
}

// Update sobreescribe los campos editables del producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $3, sku = $4, factory_sku = $5, details = $6, stock = $7, updated_at = $8
		WHERE user_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		product.UserID, product.ID, product.Name, product.SKU, product.FactorySKU,
		product.Details, product.Stock, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddStock suma delta al stock del producto. Delta negativo descuenta; no hay piso.
func (r *ProductRepo) AddStock(userID string, id int64, delta int64) error {
	query := `
		UPDATE products
		SET stock = stock + $3, updated_at = now()
		WHERE user_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query, userID, id, delta)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el producto como eliminado.
func (r *ProductRepo) SoftDelete(userID string, id int64, at time.Time) error {
	query := `
		UPDATE products SET deleted_at = $3
		WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, userID, id, at)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore reactiva un producto eliminado.
func (r *ProductRepo) Restore(userID string, id int64) error {
	query := `
		UPDATE products SET deleted_at = NULL
		WHERE user_id = $1 AND id = $2 AND deleted_at IS NOT NULL`
	cmd, err := r.q.Exec(context.Background(), query, userID, id)
	if err != nil {
		return fmt.Errorf("restore product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListDeletedSince lista los productos eliminados dentro de la ventana de papelera.
func (r *ProductRepo) ListDeletedSince(userID string, cutoff time.Time) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE user_id = $1 AND deleted_at >= $2
		ORDER BY deleted_at DESC`
	return r.list(query, userID, cutoff)
}

func (r *ProductRepo) list(query string, args ...any) ([]entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
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
