package repository

import (
	"time"

	"github.com/jhoicas/Libreta-api/internal/domain/entity"
)

// SaleWithProduct fila de venta junto a los datos del producto vendido.
// La produce la DB con un JOIN; los use cases la consumen tal cual.
type SaleWithProduct struct {
	Sale        entity.Sale
	ProductName string
	SKU         string
	FactorySKU  string
	Details     string
}

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	// Create inserta y devuelve el ID generado.
	Create(s *entity.Sale) (int64, error)
	// GetByID devuelve (nil, nil) si no existe o no pertenece al usuario.
	GetByID(userID string, id int64) (*entity.Sale, error)
	// ListActiveWithProduct lista ventas activas con su producto, ID descendente.
	ListActiveWithProduct(userID string) ([]SaleWithProduct, error)
	// Update sobreescribe product_id, quantity, price_per_item y updated_at.
	// domain.ErrNotFound si no afecta filas.
	Update(s *entity.Sale) error
	// SoftDelete marca deleted_at = at. domain.ErrNotFound si no afecta filas.
	SoftDelete(userID string, id int64, at time.Time) error
	// Restore limpia deleted_at. domain.ErrNotFound si no afecta filas.
	Restore(userID string, id int64) error
	// ListDeletedSince lista las eliminadas con deleted_at >= cutoff.
	ListDeletedSince(userID string, cutoff time.Time) ([]entity.Sale, error)
}
