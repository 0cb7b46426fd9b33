package repository

import (
	"time"

	"github.com/jhoicas/Libreta-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// Todas las operaciones exigen el userID dueño: una fila de otro usuario se
// comporta como inexistente (0 filas afectadas / nil).
type ProductRepository interface {
	// Create inserta y devuelve el ID generado.
	Create(p *entity.Product) (int64, error)
	// GetByID devuelve (nil, nil) si no existe o no pertenece al usuario.
	GetByID(userID string, id int64) (*entity.Product, error)
	// GetActiveBySKUAndDetails busca por la identidad de negocio (sku, details)
	// entre los productos activos del usuario. (nil, nil) si no hay coincidencia.
	GetActiveBySKUAndDetails(userID, sku, details string) (*entity.Product, error)
	// ListActive lista los productos activos del usuario, ID descendente.
	ListActive(userID string) ([]entity.Product, error)
	// Update sobreescribe name, sku, factory_sku, details, stock y updated_at.
	// domain.ErrNotFound si no afecta filas.
	Update(p *entity.Product) error
	// AddStock suma delta al stock (delta negativo descuenta; sin piso).
	AddStock(userID string, id int64, delta int64) error
	// SoftDelete marca deleted_at = at. domain.ErrNotFound si no afecta filas.
	SoftDelete(userID string, id int64, at time.Time) error
	// Restore limpia deleted_at. domain.ErrNotFound si no afecta filas.
	Restore(userID string, id int64) error
	// ListDeletedSince lista los eliminados con deleted_at >= cutoff.
	ListDeletedSince(userID string, cutoff time.Time) ([]entity.Product, error)
}
