package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/application/usecase"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: repo de ventas en memoria + runner sin transacción real
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	nextID int64
	sales  map[int64]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{nextID: 1, sales: make(map[int64]*entity.Sale)}
}

func (f *fakeSaleRepo) Create(s *entity.Sale) (int64, error) {
	clone := *s
	clone.ID = f.nextID
	f.sales[clone.ID] = &clone
	f.nextID++
	return clone.ID, nil
}

func (f *fakeSaleRepo) GetByID(userID string, id int64) (*entity.Sale, error) {
	s, ok := f.sales[id]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSaleRepo) ListActiveWithProduct(userID string) ([]repository.SaleWithProduct, error) {
	var out []repository.SaleWithProduct
	for _, s := range f.sales {
		if s.UserID == userID && s.DeletedAt == nil {
			out = append(out, repository.SaleWithProduct{Sale: *s})
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) Update(s *entity.Sale) error {
	existing, ok := f.sales[s.ID]
	if !ok || existing.UserID != s.UserID {
		return domain.ErrNotFound
	}
	clone := *s
	clone.SaleDate = existing.SaleDate
	clone.DeletedAt = existing.DeletedAt
	f.sales[s.ID] = &clone
	return nil
}

func (f *fakeSaleRepo) SoftDelete(userID string, id int64, at time.Time) error {
	s, ok := f.sales[id]
	if !ok || s.UserID != userID || s.DeletedAt != nil {
		return domain.ErrNotFound
	}
	s.DeletedAt = &at
	return nil
}

func (f *fakeSaleRepo) Restore(userID string, id int64) error {
	s, ok := f.sales[id]
	if !ok || s.UserID != userID || s.DeletedAt == nil {
		return domain.ErrNotFound
	}
	s.DeletedAt = nil
	return nil
}

func (f *fakeSaleRepo) ListDeletedSince(userID string, cutoff time.Time) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range f.sales {
		if s.UserID == userID && s.DeletedAt != nil && !s.DeletedAt.Before(cutoff) {
			out = append(out, *s)
		}
	}
	return out, nil
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

// fakeTxRunner ejecuta el callback directo sobre los fakes, sin transacción.
type fakeTxRunner struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(f.saleRepo, f.productRepo)
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Tests SubmitStockOut
// ──────────────────────────────────────────────────────────────────────────────

func seedProduct(t *testing.T, repo *fakeProductRepo, sku, details string, stock int64) int64 {
	t.Helper()
	id, err := repo.Create(&entity.Product{
		UserID: testUserID, Name: "Camisa", SKU: sku, FactorySKU: "F1",
		Details: details, Stock: stock, CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return id
}

// La venta inserta el registro y descuenta stock.
func TestStockOut_RegistraVentaYDescuentaStock(t *testing.T) {
	productRepo := newFakeProductRepo()
	saleRepo := newFakeSaleRepo()
	id := seedProduct(t, productRepo, "S1", "azul", 10)
	uc := usecase.NewSaleUseCase(&fakeTxRunner{saleRepo, productRepo}, saleRepo)

	out, err := uc.SubmitStockOut(context.Background(), testUserID, dto.StockOutRequest{
		Groups: []dto.StockOutGroup{{
			SKU:   "S1",
			Lines: []dto.StockOutLine{{Details: "azul", Quantity: 4, Price: decimal.NewFromInt(8)}},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Inserted)
	p, _ := productRepo.GetByID(testUserID, id)
	assert.Equal(t, int64(6), p.Stock)

	sales, _ := saleRepo.ListActiveWithProduct(testUserID)
	require.Len(t, sales, 1)
	assert.Equal(t, id, sales[0].Sale.ProductID)
	assert.True(t, decimal.NewFromInt(8).Equal(sales[0].Sale.PricePerItem))
}

// Vender más de lo que hay deja el stock negativo; la venta no se bloquea.
func TestStockOut_PermiteStockNegativo(t *testing.T) {
	productRepo := newFakeProductRepo()
	saleRepo := newFakeSaleRepo()
	id := seedProduct(t, productRepo, "S1", "azul", 2)
	uc := usecase.NewSaleUseCase(&fakeTxRunner{saleRepo, productRepo}, saleRepo)

	out, err := uc.SubmitStockOut(context.Background(), testUserID, dto.StockOutRequest{
		Groups: []dto.StockOutGroup{{
			SKU:   "S1",
			Lines: []dto.StockOutLine{{Details: "azul", Quantity: 5, Price: decimal.NewFromInt(8)}},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Inserted)
	p, _ := productRepo.GetByID(testUserID, id)
	assert.Equal(t, int64(-3), p.Stock)
}

// Una línea de un producto inexistente se omite sin tumbar el lote.
func TestStockOut_ProductoInexistenteSeOmite(t *testing.T) {
	productRepo := newFakeProductRepo()
	saleRepo := newFakeSaleRepo()
	seedProduct(t, productRepo, "S1", "azul", 10)
	uc := usecase.NewSaleUseCase(&fakeTxRunner{saleRepo, productRepo}, saleRepo)

	out, err := uc.SubmitStockOut(context.Background(), testUserID, dto.StockOutRequest{
		Groups: []dto.StockOutGroup{{
			SKU: "S1",
			Lines: []dto.StockOutLine{
				{Details: "verde", Quantity: 1, Price: decimal.NewFromInt(8)}, // no existe
				{Details: "azul", Quantity: 2, Price: decimal.NewFromInt(8)},
			},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Inserted)
	assert.Equal(t, 1, out.Skipped)
}

// Un producto eliminado no recibe ventas nuevas: la línea se omite.
func TestStockOut_ProductoEliminadoSeOmite(t *testing.T) {
	productRepo := newFakeProductRepo()
	saleRepo := newFakeSaleRepo()
	id := seedProduct(t, productRepo, "S1", "azul", 10)
	require.NoError(t, productRepo.SoftDelete(testUserID, id, time.Now()))
	uc := usecase.NewSaleUseCase(&fakeTxRunner{saleRepo, productRepo}, saleRepo)

	out, err := uc.SubmitStockOut(context.Background(), testUserID, dto.StockOutRequest{
		Groups: []dto.StockOutGroup{{
			SKU:   "S1",
			Lines: []dto.StockOutLine{{Details: "azul", Quantity: 1, Price: decimal.NewFromInt(8)}},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Inserted)
	assert.Equal(t, 1, out.Skipped)
}
