package trash_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreta-api/internal/application/trash"
	"github.com/jhoicas/Libreta-api/internal/domain"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: solo graban las llamadas de papelera; el resto del puerto no se usa
// ──────────────────────────────────────────────────────────────────────────────

type trashCall struct {
	op     string // "delete" | "restore" | "list"
	id     int64
	at     time.Time
	cutoff time.Time
}

type fakeOrderRepo struct {
	repository.OrderRepository
	calls   []trashCall
	deleted []entity.Order
}

func (f *fakeOrderRepo) SoftDelete(userID string, id int64, at time.Time) error {
	f.calls = append(f.calls, trashCall{op: "delete", id: id, at: at})
	return nil
}

func (f *fakeOrderRepo) Restore(userID string, id int64) error {
	f.calls = append(f.calls, trashCall{op: "restore", id: id})
	return nil
}

func (f *fakeOrderRepo) ListDeletedSince(userID string, cutoff time.Time) ([]entity.Order, error) {
	f.calls = append(f.calls, trashCall{op: "list", cutoff: cutoff})
	return f.deleted, nil
}

type fakeTrashProductRepo struct {
	repository.ProductRepository
	calls   []trashCall
	deleted []entity.Product
}

func (f *fakeTrashProductRepo) SoftDelete(userID string, id int64, at time.Time) error {
	f.calls = append(f.calls, trashCall{op: "delete", id: id, at: at})
	return nil
}

func (f *fakeTrashProductRepo) Restore(userID string, id int64) error {
	f.calls = append(f.calls, trashCall{op: "restore", id: id})
	return nil
}

func (f *fakeTrashProductRepo) ListDeletedSince(userID string, cutoff time.Time) ([]entity.Product, error) {
	f.calls = append(f.calls, trashCall{op: "list", cutoff: cutoff})
	return f.deleted, nil
}

type fakeTrashSaleRepo struct {
	repository.SaleRepository
	calls   []trashCall
	deleted []entity.Sale
}

func (f *fakeTrashSaleRepo) SoftDelete(userID string, id int64, at time.Time) error {
	f.calls = append(f.calls, trashCall{op: "delete", id: id, at: at})
	return nil
}

func (f *fakeTrashSaleRepo) Restore(userID string, id int64) error {
	f.calls = append(f.calls, trashCall{op: "restore", id: id})
	return nil
}

func (f *fakeTrashSaleRepo) ListDeletedSince(userID string, cutoff time.Time) ([]entity.Sale, error) {
	f.calls = append(f.calls, trashCall{op: "list", cutoff: cutoff})
	return f.deleted, nil
}

type fakeTrashPaymentRepo struct {
	repository.PaymentRepository
	calls   []trashCall
	deleted []entity.Payment
}

func (f *fakeTrashPaymentRepo) SoftDelete(userID string, id int64, at time.Time) error {
	f.calls = append(f.calls, trashCall{op: "delete", id: id, at: at})
	return nil
}

func (f *fakeTrashPaymentRepo) Restore(userID string, id int64) error {
	f.calls = append(f.calls, trashCall{op: "restore", id: id})
	return nil
}

func (f *fakeTrashPaymentRepo) ListDeletedSince(userID string, cutoff time.Time) ([]entity.Payment, error) {
	f.calls = append(f.calls, trashCall{op: "list", cutoff: cutoff})
	return f.deleted, nil
}

type fixture struct {
	orders   *fakeOrderRepo
	products *fakeTrashProductRepo
	sales    *fakeTrashSaleRepo
	payments *fakeTrashPaymentRepo
	uc       *trash.TrashUseCase
}

func newFixture() *fixture {
	f := &fixture{
		orders:   &fakeOrderRepo{},
		products: &fakeTrashProductRepo{},
		sales:    &fakeTrashSaleRepo{},
		payments: &fakeTrashPaymentRepo{},
	}
	f.uc = trash.NewTrashUseCase(f.orders, f.products, f.sales, f.payments)
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Delete despacha al repo del tipo correcto con la hora actual.
func TestTrash_DeleteDespachaPorTipo(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.uc.Delete(testUserID, trash.ItemOrder, 1))
	require.NoError(t, f.uc.Delete(testUserID, trash.ItemProduct, 2))
	require.NoError(t, f.uc.Delete(testUserID, trash.ItemSale, 3))
	require.NoError(t, f.uc.Delete(testUserID, trash.ItemPayment, 4))

	require.Len(t, f.orders.calls, 1)
	assert.Equal(t, int64(1), f.orders.calls[0].id)
	assert.WithinDuration(t, time.Now(), f.orders.calls[0].at, time.Second)

	require.Len(t, f.products.calls, 1)
	assert.Equal(t, int64(2), f.products.calls[0].id)
	require.Len(t, f.sales.calls, 1)
	assert.Equal(t, int64(3), f.sales.calls[0].id)
	require.Len(t, f.payments.calls, 1)
	assert.Equal(t, int64(4), f.payments.calls[0].id)
}

// Restore también cubre los cuatro tipos, abonos incluidos.
func TestTrash_RestoreDespachaPorTipo(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.uc.Restore(testUserID, trash.ItemPayment, 7))

	require.Len(t, f.payments.calls, 1)
	assert.Equal(t, "restore", f.payments.calls[0].op)
	assert.Equal(t, int64(7), f.payments.calls[0].id)
	assert.Empty(t, f.orders.calls)
}

// Un tipo desconocido es entrada inválida, no un panic ni un 500 silencioso.
func TestTrash_TipoInvalido(t *testing.T) {
	f := newFixture()

	assert.ErrorIs(t, f.uc.Delete(testUserID, "warehouse", 1), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.uc.Restore(testUserID, "", 1), domain.ErrInvalidInput)
}

// La papelera consulta con corte de 3 días atrás y agrupa por tipo.
func TestTrash_PapeleraConVentanaDeTresDias(t *testing.T) {
	f := newFixture()
	deletedAt := time.Now().Add(-24 * time.Hour)
	f.orders.deleted = []entity.Order{{ID: 1, UserID: testUserID, DeletedAt: &deletedAt}}
	f.payments.deleted = []entity.Payment{{ID: 9, UserID: testUserID, OrderID: 1, DeletedAt: &deletedAt}}

	bin, err := f.uc.GetTrashBin(testUserID)
	require.NoError(t, err)

	expectedCutoff := time.Now().AddDate(0, 0, -3)
	for _, calls := range [][]trashCall{f.orders.calls, f.products.calls, f.sales.calls, f.payments.calls} {
		require.Len(t, calls, 1)
		assert.Equal(t, "list", calls[0].op)
		assert.WithinDuration(t, expectedCutoff, calls[0].cutoff, time.Second)
	}

	require.Len(t, bin.Orders, 1)
	assert.Equal(t, int64(1), bin.Orders[0].ID)
	require.Len(t, bin.Payments, 1)
	assert.Equal(t, int64(9), bin.Payments[0].ID)
	assert.NotNil(t, bin.Products, "tipos sin eliminados devuelven lista vacía, no null")
	assert.Empty(t, bin.Products)
	assert.Empty(t, bin.Sales)
}
