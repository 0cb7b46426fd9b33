package repository

import (
	"time"

	"github.com/jhoicas/Libreta-api/internal/domain/entity"
)

// OrderRepository puerto de persistencia para órdenes de compra.
type OrderRepository interface {
	// Create inserta y devuelve el ID generado.
	Create(o *entity.Order) (int64, error)
	// GetByID devuelve (nil, nil) si no existe o no pertenece al usuario.
	GetByID(userID string, id int64) (*entity.Order, error)
	// ListActive lista las órdenes activas del usuario, ID descendente.
	ListActive(userID string) ([]entity.Order, error)
	// Update sobreescribe product_details, factory_sku, quantity, cost_per_item
	// y updated_at. domain.ErrNotFound si no afecta filas.
	Update(o *entity.Order) error
	// SoftDelete marca deleted_at = at. domain.ErrNotFound si no afecta filas.
	SoftDelete(userID string, id int64, at time.Time) error
	// Restore limpia deleted_at. domain.ErrNotFound si no afecta filas.
	Restore(userID string, id int64) error
	// ListDeletedSince lista las eliminadas con deleted_at >= cutoff.
	ListDeletedSince(userID string, cutoff time.Time) ([]entity.Order, error)
}
