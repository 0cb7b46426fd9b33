package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

// SaleUseCase venta de mercancía (salida de stock), listado y edición.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso. txRunner garantiza que la venta y
// el descuento de stock se confirmen juntos.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// SubmitStockOut registra un lote de ventas. Cada línea válida busca el
// producto por (sku, details), inserta la venta y descuenta stock sin piso
// (sobrevender deja stock negativo). Líneas incompletas o de productos
// inexistentes se omiten. Todo el lote entra en una sola transacción.
func (uc *SaleUseCase) SubmitStockOut(ctx context.Context, userID string, in dto.StockOutRequest) (*dto.SubmitResultDTO, error) {
	result := &dto.SubmitResultDTO{}
	now := time.Now()

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		for _, group := range in.Groups {
			if group.SKU == "" {
				result.Skipped += len(group.Lines)
				continue
			}
			for _, line := range group.Lines {
				if line.Details == "" || line.Quantity == 0 {
					result.Skipped++
					continue
				}
				product, err := productRepo.GetActiveBySKUAndDetails(userID, group.SKU, line.Details)
				if err != nil {
					return err
				}
				if product == nil {
					result.Skipped++
					continue
				}
				sale := &entity.Sale{
					UserID:       userID,
					ProductID:    product.ID,
					Quantity:     line.Quantity,
					PricePerItem: line.Price,
					SaleDate:     now,
				}
				if _, err := saleRepo.Create(sale); err != nil {
					return err
				}
				if err := productRepo.AddStock(userID, product.ID, -line.Quantity); err != nil {
					return err
				}
				result.Inserted++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListSales lista las ventas activas con su producto (la más reciente primero).
func (uc *SaleUseCase) ListSales(userID string) ([]dto.SaleWithProductResponse, error) {
	rows, err := uc.saleRepo.ListActiveWithProduct(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleWithProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewSaleWithProductResponse(r))
	}
	return out, nil
}

// GetSale devuelve una venta del usuario, o domain.ErrNotFound.
func (uc *SaleUseCase) GetSale(userID string, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewSaleResponse(*sale)
	return &resp, nil
}

// UpdateSale edita una venta del usuario y marca updated_at. No recalcula
// stock: la edición corrige el registro, no repite el movimiento.
func (uc *SaleUseCase) UpdateSale(userID string, id int64, in dto.UpdateSaleRequest) error {
	now := time.Now()
	sale := &entity.Sale{
		ID:           id,
		UserID:       userID,
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		PricePerItem: in.PricePerItem,
		UpdatedAt:    &now,
	}
	return uc.saleRepo.Update(sale)
}
