package usecase

import (
	"time"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

// OrderUseCase registro, listado y edición de órdenes de compra.
type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orderRepo: orderRepo}
}

// SubmitOrders registra un lote de órdenes de compra. Las líneas con campos
// vacíos o cantidad en cero se omiten sin rechazar el lote; el resultado
// informa cuántas entraron y cuántas no.
func (uc *OrderUseCase) SubmitOrders(userID string, in dto.SubmitOrdersRequest) (*dto.SubmitResultDTO, error) {
	result := &dto.SubmitResultDTO{}
	now := time.Now()
	for _, line := range in.Orders {
		if line.ProductDetails == "" || line.FactorySKU == "" || line.Quantity == 0 {
			result.Skipped++
			continue
		}
		order := &entity.Order{
			UserID:         userID,
			ProductDetails: line.ProductDetails,
			FactorySKU:     line.FactorySKU,
			Quantity:       line.Quantity,
			CostPerItem:    line.CostPerItem,
			OrderDate:      now,
		}
		if _, err := uc.orderRepo.Create(order); err != nil {
			return nil, err
		}
		result.Inserted++
	}
	return result, nil
}

// ListOrders lista las órdenes activas del usuario (la más reciente primero).
func (uc *OrderUseCase) ListOrders(userID string) ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.ListActive(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.NewOrderResponse(o))
	}
	return out, nil
}

// GetOrder devuelve una orden del usuario. domain.ErrNotFound si no existe
// o pertenece a otro usuario (nunca se revela cuál de los dos casos fue).
func (uc *OrderUseCase) GetOrder(userID string, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewOrderResponse(*order)
	return &resp, nil
}

// UpdateOrder edita una orden del usuario y marca updated_at.
func (uc *OrderUseCase) UpdateOrder(userID string, id int64, in dto.UpdateOrderRequest) error {
	now := time.Now()
	order := &entity.Order{
		ID:             id,
		UserID:         userID,
		ProductDetails: in.ProductDetails,
		FactorySKU:     in.FactorySKU,
		Quantity:       in.Quantity,
		CostPerItem:    in.CostPerItem,
		UpdatedAt:      &now,
	}
	return uc.orderRepo.Update(order)
}
