package analytics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreta-api/internal/application/analytics"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

// La serie agrupa por día calendario, etiquetas ascendentes y los tres
// datasets alineados posición a posición con las etiquetas.
func TestPerformance_AgrupaPorDia(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		orders: []entity.Order{
			{ID: 1, UserID: testUserID, FactorySKU: "F1", Quantity: 100, CostPerItem: dec("5"), OrderDate: date("2025-01-01")},
		},
		sales: []repository.SaleWithProduct{
			saleOf("F1", "Camisa", "azul", 2, "8", "2025-01-10"),
			saleOf("F1", "Camisa", "azul", 1, "8", "2025-01-10"),
			saleOf("F1", "Camisa", "azul", 4, "8", "2025-01-12"),
		},
	}
	uc := analytics.NewPerformanceUseCase(repo)

	out, err := uc.GetChart(context.Background(), testUserID)
	require.NoError(t, err)

	require.Equal(t, []string{"2025-01-10", "2025-01-12"}, out.Labels, "días con ventas, ascendente; días vacíos omitidos")
	require.Len(t, out.Datasets, 3)

	ingresos := out.Datasets[0]
	costos := out.Datasets[1]
	ganancia := out.Datasets[2]
	assert.Equal(t, "Ingresos", ingresos.Label)
	assert.Equal(t, "Costos", costos.Label)
	assert.Equal(t, "Ganancia", ganancia.Label)

	require.Len(t, ingresos.Data, 2)
	// Día 10: (2+1) * 8 = 24 de ingreso, 3 * 5 = 15 de costo.
	assert.True(t, dec("24").Equal(ingresos.Data[0]), "fue %s", ingresos.Data[0])
	assert.True(t, dec("15").Equal(costos.Data[0]), "fue %s", costos.Data[0])
	assert.True(t, dec("9").Equal(ganancia.Data[0]), "fue %s", ganancia.Data[0])
	// Día 12: 4 * 8 = 32, 4 * 5 = 20.
	assert.True(t, dec("32").Equal(ingresos.Data[1]))
	assert.True(t, dec("20").Equal(costos.Data[1]))
	assert.True(t, dec("12").Equal(ganancia.Data[1]))
}

// Los datasets llevan el contrato visual fijo de los clientes Chart.js.
func TestPerformance_ContratoChartJS(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		sales: []repository.SaleWithProduct{
			saleOf("F1", "Camisa", "azul", 1, "8", "2025-01-10"),
		},
	}
	uc := analytics.NewPerformanceUseCase(repo)

	out, err := uc.GetChart(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, out.Datasets, 3)
	assert.Equal(t, "rgba(75, 192, 192, 1)", out.Datasets[0].BorderColor)
	assert.Equal(t, "rgba(255, 99, 132, 1)", out.Datasets[1].BorderColor)
	assert.Equal(t, "rgba(54, 162, 235, 1)", out.Datasets[2].BorderColor)
	for _, ds := range out.Datasets {
		assert.Equal(t, 0.1, ds.Tension)
	}
}

// Sin ventas: etiquetas vacías y datasets vacíos, nunca error.
func TestPerformance_SinVentas(t *testing.T) {
	uc := analytics.NewPerformanceUseCase(&fakeAnalyticsRepo{})

	out, err := uc.GetChart(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Empty(t, out.Labels)
	require.Len(t, out.Datasets, 3)
	for _, ds := range out.Datasets {
		assert.Empty(t, ds.Data)
	}
}
