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

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

const paymentColumns = `id, user_id, order_id, amount, payment_date, updated_at, deleted_at`

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de persistencia para abonos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un nuevo abono y devuelve el ID generado.
func (r *PaymentRepo) Create(p *entity.Payment) (int64, error) {
	query := `
		INSERT INTO payments (user_id, order_id, amount, payment_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		p.UserID, p.OrderID, p.Amount, p.PaymentDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert payment: %w", err)
	}
	return id, nil
}

// GetByID obtiene un abono del usuario por ID.
func (r *PaymentRepo) GetByID(userID string, id int64) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 AND id = $2`
	var p entity.Payment
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&p.ID, &p.UserID, &p.OrderID, &p.Amount, &p.PaymentDate, &p.UpdatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// Update sobreescribe los campos editables del abono.
func (r *PaymentRepo) Update(p *entity.Payment) error {
	query := `
		UPDATE payments
		SET order_id = $3, amount = $4, payment_date = $5, updated_at = $6
		WHERE user_id = $1 AND id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		p.UserID, p.ID, p.OrderID, p.Amount, p.PaymentDate, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el abono como eliminado.
func (r *PaymentRepo) SoftDelete(userID string, id int64, at time.Time) error {
	query := `
		UPDATE payments SET deleted_at = $3
		WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`
	cmd, err := r.q.Exec(context.Background(), query, userID, id, at)
	if err != nil {
		return fmt.Errorf("soft delete payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Restore reactiva un abono eliminado.
func (r *PaymentRepo) Restore(userID string, id int64) error {
	query := `
		UPDATE payments SET deleted_at = NULL
		WHERE user_id = $1 AND id = $2 AND deleted_at IS NOT NULL`
	cmd, err := r.q.Exec(context.Background(), query, userID, id)
	if err != nil {
		return fmt.Errorf("restore payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListDeletedSince lista los abonos eliminados dentro de la ventana de papelera.
func (r *PaymentRepo) ListDeletedSince(userID string, cutoff time.Time) ([]entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE user_id = $1 AND deleted_at >= $2
		ORDER BY deleted_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list deleted payments: %w", err)
	}
	defer rows.Close()
	var list []entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.OrderID, &p.Amount, &p.PaymentDate,
			&p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
