package usecase

import (
	"time"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

const paymentDateLayout = "2006-01-02"

// PaymentUseCase registro y edición de abonos a órdenes de compra.
type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, orderRepo: orderRepo}
}

// SubmitPayment registra un abono. Primero verifica que la orden pertenezca
// al usuario; una orden ajena responde domain.ErrNotFound sin revelar su
// existencia. PaymentDate vacío usa la fecha actual.
func (uc *PaymentUseCase) SubmitPayment(userID string, in dto.SubmitPaymentRequest) (*dto.PaymentResponse, error) {
	order, err := uc.orderRepo.GetByID(userID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	paymentDate := time.Now()
	if in.PaymentDate != "" {
		paymentDate, err = time.Parse(paymentDateLayout, in.PaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	payment := &entity.Payment{
		UserID:      userID,
		OrderID:     in.OrderID,
		Amount:      in.Amount,
		PaymentDate: paymentDate,
	}
	id, err := uc.paymentRepo.Create(payment)
	if err != nil {
		return nil, err
	}
	payment.ID = id
	resp := dto.NewPaymentResponse(*payment)
	return &resp, nil
}

// UpdatePayment edita un abono del usuario y marca updated_at.
func (uc *PaymentUseCase) UpdatePayment(userID string, id int64, in dto.UpdatePaymentRequest) error {
	order, err := uc.orderRepo.GetByID(userID, in.OrderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}

	paymentDate := time.Now()
	if in.PaymentDate != "" {
		paymentDate, err = time.Parse(paymentDateLayout, in.PaymentDate)
		if err != nil {
			return domain.ErrInvalidInput
		}
	}

	now := time.Now()
	payment := &entity.Payment{
		ID:          id,
		UserID:      userID,
		OrderID:     in.OrderID,
		Amount:      in.Amount,
		PaymentDate: paymentDate,
		UpdatedAt:   &now,
	}
	return uc.paymentRepo.Update(payment)
}
