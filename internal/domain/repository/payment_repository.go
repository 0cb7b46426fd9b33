package repository

import (
	"time"

	"github.com/jhoicas/Libreta-api/internal/domain/entity"
)

// PaymentRepository puerto de persistencia para abonos.
// El ciclo soft-delete/restore es uniforme con el resto de entidades.
type PaymentRepository interface {
	// Create inserta y devuelve el ID generado.
	Create(p *entity.Payment) (int64, error)
	// GetByID devuelve (nil, nil) si no existe o no pertenece al usuario.
	GetByID(userID string, id int64) (*entity.Payment, error)
	// Update sobreescribe order_id, amount, payment_date y updated_at.
	// domain.ErrNotFound si no afecta filas.
	Update(p *entity.Payment) error
	// SoftDelete marca deleted_at = at. domain.ErrNotFound si no afecta filas.
	SoftDelete(userID string, id int64, at time.Time) error
	// Restore limpia deleted_at. domain.ErrNotFound si no afecta filas.
	Restore(userID string, id int64) error
	// ListDeletedSince lista los eliminados con deleted_at >= cutoff.
	ListDeletedSince(userID string, cutoff time.Time) ([]entity.Payment, error)
}
