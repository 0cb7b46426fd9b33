package usecase

import (
	"context"

	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción: la venta y el
// descuento de stock deben confirmarse o revertirse juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
