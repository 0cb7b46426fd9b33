package dto

import (
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

// Conversión entity -> DTO compartida por los use cases.

func NewOrderResponse(o entity.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		ProductDetails: o.ProductDetails,
		FactorySKU:     o.FactorySKU,
		Quantity:       o.Quantity,
		CostPerItem:    o.CostPerItem,
		OrderDate:      o.OrderDate,
		UpdatedAt:      o.UpdatedAt,
		DeletedAt:      o.DeletedAt,
	}
}

func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		SKU:        p.SKU,
		FactorySKU: p.FactorySKU,
		Details:    p.Details,
		Stock:      p.Stock,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		DeletedAt:  p.DeletedAt,
	}
}

func NewSaleResponse(s entity.Sale) SaleResponse {
	return SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		Quantity:     s.Quantity,
		PricePerItem: s.PricePerItem,
		SaleDate:     s.SaleDate,
		UpdatedAt:    s.UpdatedAt,
		DeletedAt:    s.DeletedAt,
	}
}

func NewSaleWithProductResponse(r repository.SaleWithProduct) SaleWithProductResponse {
	return SaleWithProductResponse{
		ID:           r.Sale.ID,
		SKU:          r.SKU,
		Details:      r.Details,
		Quantity:     r.Sale.Quantity,
		PricePerItem: r.Sale.PricePerItem,
		SaleDate:     r.Sale.SaleDate,
		UpdatedAt:    r.Sale.UpdatedAt,
	}
}

func NewPaymentResponse(p entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		OrderID:     p.OrderID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		UpdatedAt:   p.UpdatedAt,
		DeletedAt:   p.DeletedAt,
	}
}
