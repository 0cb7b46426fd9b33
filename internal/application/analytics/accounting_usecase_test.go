package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreta-api/internal/application/analytics"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
)

// El libro contable lista cada orden con su costo, lo abonado y el saldo,
// más los totales globales.
func TestAccounting_ReporteConSaldos(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		orders: []entity.Order{
			{ID: 2, UserID: testUserID, ProductDetails: "Gorra negra", FactorySKU: "F2", Quantity: 4, CostPerItem: dec("10"), OrderDate: date("2025-02-01")},
			{ID: 1, UserID: testUserID, ProductDetails: "Camisa azul", FactorySKU: "F1", Quantity: 10, CostPerItem: dec("5"), OrderDate: date("2025-01-10")},
		},
		payments: map[int64]decimal.Decimal{
			1: dec("30"),
			2: dec("40"),
		},
	}
	uc := analytics.NewAccountingUseCase(repo)

	out, err := uc.GetReport(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	// La más reciente primero (orden 2).
	assert.Equal(t, int64(2), out.Rows[0].OrderID)
	assert.True(t, dec("40").Equal(out.Rows[0].TotalCost))
	assert.True(t, out.Rows[0].Outstanding.IsZero(), "orden 2 está saldada")

	assert.Equal(t, int64(1), out.Rows[1].OrderID)
	assert.True(t, dec("50").Equal(out.Rows[1].TotalCost))
	assert.True(t, dec("20").Equal(out.Rows[1].Outstanding))

	assert.True(t, dec("90").Equal(out.TotalOrderCosts))
	assert.True(t, dec("70").Equal(out.TotalPaidAmount))
	assert.True(t, dec("20").Equal(out.TotalOutstanding))
}

// Una orden sin abonos registra saldo igual a su costo total.
func TestAccounting_OrdenSinAbonos(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		orders: []entity.Order{
			{ID: 1, UserID: testUserID, FactorySKU: "F1", Quantity: 3, CostPerItem: dec("7"), OrderDate: date("2025-03-01")},
		},
	}
	uc := analytics.NewAccountingUseCase(repo)

	out, err := uc.GetReport(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, out.Rows, 1)
	assert.True(t, out.Rows[0].PaidAmount.IsZero())
	assert.True(t, dec("21").Equal(out.Rows[0].Outstanding))
}

// Saldos pendientes: solo las órdenes con saldo estrictamente positivo.
// Una orden saldada o sobrepagada no aparece.
func TestAccounting_PendientesSoloPositivos(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		orders: []entity.Order{
			{ID: 1, UserID: testUserID, FactorySKU: "F1", Quantity: 10, CostPerItem: dec("5"), OrderDate: date("2025-01-10")},
			{ID: 2, UserID: testUserID, FactorySKU: "F2", Quantity: 4, CostPerItem: dec("10"), OrderDate: date("2025-02-01")},
			{ID: 3, UserID: testUserID, FactorySKU: "F3", Quantity: 2, CostPerItem: dec("6"), OrderDate: date("2025-02-15")},
		},
		payments: map[int64]decimal.Decimal{
			1: dec("30"), // saldo 20
			2: dec("40"), // saldada
			3: dec("20"), // sobrepagada (-8)
		},
	}
	uc := analytics.NewAccountingUseCase(repo)

	out, err := uc.ListOutstanding(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].OrderID)
	assert.Equal(t, "F1", out[0].FactorySKU)
	assert.True(t, dec("20").Equal(out[0].Amount))
}

// Sin órdenes el reporte degrada a listas vacías y totales en cero.
func TestAccounting_SinOrdenes(t *testing.T) {
	uc := analytics.NewAccountingUseCase(&fakeAnalyticsRepo{})

	report, err := uc.GetReport(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.True(t, report.TotalOutstanding.IsZero())

	items, err := uc.ListOutstanding(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
