package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/application/usecase"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de productos
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	nextID   int64
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, products: make(map[int64]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) (int64, error) {
	clone := *p
	clone.ID = f.nextID
	f.products[clone.ID] = &clone
	f.nextID++
	return clone.ID, nil
}

func (f *fakeProductRepo) GetByID(userID string, id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) GetActiveBySKUAndDetails(userID, sku, details string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.UserID == userID && p.SKU == sku && p.Details == details && p.DeletedAt == nil {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListActive(userID string) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.UserID == userID && p.DeletedAt == nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	existing, ok := f.products[p.ID]
	if !ok || existing.UserID != p.UserID {
		return domain.ErrNotFound
	}
	clone := *p
	clone.CreatedAt = existing.CreatedAt
	clone.DeletedAt = existing.DeletedAt
	f.products[p.ID] = &clone
	return nil
}

func (f *fakeProductRepo) AddStock(userID string, id int64, delta int64) error {
	p, ok := f.products[id]
	if !ok || p.UserID != userID {
		return domain.ErrNotFound
	}
	p.Stock += delta
	return nil
}

func (f *fakeProductRepo) SoftDelete(userID string, id int64, at time.Time) error {
	p, ok := f.products[id]
	if !ok || p.UserID != userID || p.DeletedAt != nil {
		return domain.ErrNotFound
	}
	p.DeletedAt = &at
	return nil
}

func (f *fakeProductRepo) Restore(userID string, id int64) error {
	p, ok := f.products[id]
	if !ok || p.UserID != userID || p.DeletedAt == nil {
		return domain.ErrNotFound
	}
	p.DeletedAt = nil
	return nil
}

func (f *fakeProductRepo) ListDeletedSince(userID string, cutoff time.Time) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.UserID == userID && p.DeletedAt != nil && !p.DeletedAt.Before(cutoff) {
			out = append(out, *p)
		}
	}
	return out, nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

// ──────────────────────────────────────────────────────────────────────────────
// Tests SubmitStockIn
// ──────────────────────────────────────────────────────────────────────────────

// Un par (sku, details) nuevo crea el producto con el stock de la línea.
func TestStockIn_CreaProductoNuevo(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.SubmitStockIn(testUserID, dto.StockInRequest{
		Groups: []dto.StockInGroup{{
			ProductName: "Camisa",
			SKU:         "S1",
			FactorySKU:  "F1",
			Lines:       []dto.StockInLine{{Details: "azul", Quantity: 10}},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Inserted)
	assert.Equal(t, 0, out.Skipped)

	p, err := repo.GetActiveBySKUAndDetails(testUserID, "S1", "azul")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(10), p.Stock)
	assert.Equal(t, "F1", p.FactorySKU)
}

// Un par (sku, details) ya existente acumula stock en la misma fila.
func TestStockIn_AcumulaStockEnExistente(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	in := dto.StockInRequest{
		Groups: []dto.StockInGroup{{
			ProductName: "Camisa",
			SKU:         "S1",
			FactorySKU:  "F1",
			Lines:       []dto.StockInLine{{Details: "azul", Quantity: 10}},
		}},
	}
	_, err := uc.SubmitStockIn(testUserID, in)
	require.NoError(t, err)
	_, err = uc.SubmitStockIn(testUserID, in)
	require.NoError(t, err)

	products, err := repo.ListActive(testUserID)
	require.NoError(t, err)
	require.Len(t, products, 1, "la segunda recepción no debe duplicar el producto")
	assert.Equal(t, int64(20), products[0].Stock)
}

// El mismo sku con details distinto es otro producto.
func TestStockIn_DetailsDistintoCreaOtraFila(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.SubmitStockIn(testUserID, dto.StockInRequest{
		Groups: []dto.StockInGroup{{
			ProductName: "Camisa",
			SKU:         "S1",
			FactorySKU:  "F1",
			Lines: []dto.StockInLine{
				{Details: "azul", Quantity: 10},
				{Details: "roja", Quantity: 5},
			},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Inserted)
	products, _ := repo.ListActive(testUserID)
	assert.Len(t, products, 2)
}

// Un grupo sin datos obligatorios descarta todas sus líneas; los demás grupos
// del lote se procesan normal.
func TestStockIn_GrupoInvalidoOmiteSusLineas(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.SubmitStockIn(testUserID, dto.StockInRequest{
		Groups: []dto.StockInGroup{
			{
				ProductName: "", // sin nombre: inválido
				SKU:         "S1",
				FactorySKU:  "F1",
				Lines: []dto.StockInLine{
					{Details: "azul", Quantity: 10},
					{Details: "roja", Quantity: 5},
				},
			},
			{
				ProductName: "Gorra",
				SKU:         "S2",
				FactorySKU:  "F2",
				Lines:       []dto.StockInLine{{Details: "negra", Quantity: 3}},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Inserted)
	assert.Equal(t, 2, out.Skipped)
}

// Líneas sin details o con cantidad cero se omiten una a una.
func TestStockIn_LineaIncompletaSeOmite(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.SubmitStockIn(testUserID, dto.StockInRequest{
		Groups: []dto.StockInGroup{{
			ProductName: "Camisa",
			SKU:         "S1",
			FactorySKU:  "F1",
			Lines: []dto.StockInLine{
				{Details: "", Quantity: 10},
				{Details: "azul", Quantity: 0},
				{Details: "azul", Quantity: 7},
			},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.Inserted)
	assert.Equal(t, 2, out.Skipped)
}

// La edición no debe resucitar un producto ajeno: otro usuario recibe not found.
func TestUpdateProduct_AjenoNoExiste(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	id, err := repo.Create(&entity.Product{UserID: testUserID, Name: "Camisa", SKU: "S1", FactorySKU: "F1", Details: "azul", Stock: 1})
	require.NoError(t, err)

	err = uc.UpdateProduct("otro-usuario", id, dto.UpdateProductRequest{
		Name: "Hackeada", SKU: "S1", FactorySKU: "F1", Details: "azul", Stock: 99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// GetProduct traduce la ausencia a domain.ErrNotFound.
func TestGetProduct_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.GetProduct(testUserID, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
