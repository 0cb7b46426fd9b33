// Package trash implementa el ciclo de vida de la papelera: borrado suave,
// restauración y el listado limitado a la ventana de gracia.
package trash

import (
	"time"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

// retentionDays días que un registro eliminado permanece visible en la
// papelera. Pasada la ventana sigue en la DB pero deja de ser recuperable
// desde la API (no hay purga automática).
const retentionDays = 3

// ItemType tipo de registro sobre el que opera la papelera.
type ItemType string

// Tipos soportados. El ciclo es uniforme para las cuatro entidades.
const (
	ItemOrder   ItemType = "order"
	ItemProduct ItemType = "product"
	ItemSale    ItemType = "sale"
	ItemPayment ItemType = "payment"
)

// TrashUseCase borrado suave, restauración y vista de papelera.
type TrashUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	paymentRepo repository.PaymentRepository
}

// NewTrashUseCase construye el caso de uso.
func NewTrashUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	paymentRepo repository.PaymentRepository,
) *TrashUseCase {
	return &TrashUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		paymentRepo: paymentRepo,
	}
}

// Delete marca deleted_at = ahora. El registro desaparece de inmediato de
// todos los listados activos y de los agregados. Un registro ajeno responde
// domain.ErrNotFound.
func (uc *TrashUseCase) Delete(userID string, itemType ItemType, id int64) error {
	now := time.Now()
	switch itemType {
	case ItemOrder:
		return uc.orderRepo.SoftDelete(userID, id, now)
	case ItemProduct:
		return uc.productRepo.SoftDelete(userID, id, now)
	case ItemSale:
		return uc.saleRepo.SoftDelete(userID, id, now)
	case ItemPayment:
		return uc.paymentRepo.SoftDelete(userID, id, now)
	default:
		return domain.ErrInvalidInput
	}
}

// Restore limpia deleted_at y el registro vuelve a las vistas activas.
func (uc *TrashUseCase) Restore(userID string, itemType ItemType, id int64) error {
	switch itemType {
	case ItemOrder:
		return uc.orderRepo.Restore(userID, id)
	case ItemProduct:
		return uc.productRepo.Restore(userID, id)
	case ItemSale:
		return uc.saleRepo.Restore(userID, id)
	case ItemPayment:
		return uc.paymentRepo.Restore(userID, id)
	default:
		return domain.ErrInvalidInput
	}
}

// GetTrashBin lista lo eliminado dentro de la ventana de gracia, por tipo.
func (uc *TrashUseCase) GetTrashBin(userID string) (*dto.TrashBinDTO, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	orders, err := uc.orderRepo.ListDeletedSince(userID, cutoff)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListDeletedSince(userID, cutoff)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListDeletedSince(userID, cutoff)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListDeletedSince(userID, cutoff)
	if err != nil {
		return nil, err
	}

	bin := &dto.TrashBinDTO{
		Orders:   []dto.OrderResponse{},
		Products: []dto.ProductResponse{},
		Sales:    []dto.SaleResponse{},
		Payments: []dto.PaymentResponse{},
	}
	for _, o := range orders {
		bin.Orders = append(bin.Orders, dto.NewOrderResponse(o))
	}
	for _, p := range products {
		bin.Products = append(bin.Products, dto.NewProductResponse(p))
	}
	for _, s := range sales {
		bin.Sales = append(bin.Sales, dto.NewSaleResponse(s))
	}
	for _, p := range payments {
		bin.Payments = append(bin.Payments, dto.NewPaymentResponse(p))
	}
	return bin, nil
}
