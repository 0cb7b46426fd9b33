package usecase

import (
	"time"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

// ProductUseCase recepción de mercancía, listado y edición de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// SubmitStockIn registra una recepción de mercancía. Cada grupo trae los
// datos del producto y sus variantes; por línea:
//   - (sku, details) ya existente y activo -> acumula stock
//   - par nuevo -> crea el producto con ese stock inicial
//
// Grupos o líneas con campos vacíos se omiten sin rechazar el lote.
func (uc *ProductUseCase) SubmitStockIn(userID string, in dto.StockInRequest) (*dto.SubmitResultDTO, error) {
	result := &dto.SubmitResultDTO{}
	for _, group := range in.Groups {
		if group.ProductName == "" || group.SKU == "" || group.FactorySKU == "" {
			result.Skipped += len(group.Lines)
			continue
		}
		for _, line := range group.Lines {
			if line.Details == "" || line.Quantity == 0 {
				result.Skipped++
				continue
			}
			existing, err := uc.productRepo.GetActiveBySKUAndDetails(userID, group.SKU, line.Details)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				if err := uc.productRepo.AddStock(userID, existing.ID, line.Quantity); err != nil {
					return nil, err
				}
			} else {
				product := &entity.Product{
					UserID:     userID,
					Name:       group.ProductName,
					SKU:        group.SKU,
					FactorySKU: group.FactorySKU,
					Details:    line.Details,
					Stock:      line.Quantity,
					CreatedAt:  time.Now(),
				}
				if _, err := uc.productRepo.Create(product); err != nil {
					return nil, err
				}
			}
			result.Inserted++
		}
	}
	return result, nil
}

// ListProducts lista los productos activos del usuario (el más reciente primero).
func (uc *ProductUseCase) ListProducts(userID string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.ListActive(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}

// GetProduct devuelve un producto del usuario, o domain.ErrNotFound.
func (uc *ProductUseCase) GetProduct(userID string, id int64) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewProductResponse(*product)
	return &resp, nil
}

// UpdateProduct edita un producto del usuario y marca updated_at.
// El stock se sobreescribe tal cual llega: la corrección manual es válida.
func (uc *ProductUseCase) UpdateProduct(userID string, id int64, in dto.UpdateProductRequest) error {
	now := time.Now()
	product := &entity.Product{
		ID:         id,
		UserID:     userID,
		Name:       in.Name,
		SKU:        in.SKU,
		FactorySKU: in.FactorySKU,
		Details:    in.Details,
		Stock:      in.Stock,
		UpdatedAt:  &now,
	}
	return uc.productRepo.Update(product)
}
