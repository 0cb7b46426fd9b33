package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/ledger"
)

func orderAt(id int64, sku string, cost float64, date string) entity.Order {
	d, _ := time.Parse("2006-01-02", date)
	return entity.Order{
		ID:          id,
		FactorySKU:  sku,
		Quantity:    10,
		CostPerItem: decimal.NewFromFloat(cost),
		OrderDate:   d,
	}
}

func TestResolveCosts_UnSKUPorOrden(t *testing.T) {
	costs := ledger.ResolveCosts([]entity.Order{
		orderAt(1, "F1", 5.0, "2025-01-10"),
		orderAt(2, "F2", 7.5, "2025-01-11"),
	})

	assert.True(t, costs.Lookup("F1").Equal(decimal.NewFromFloat(5.0)))
	assert.True(t, costs.Lookup("F2").Equal(decimal.NewFromFloat(7.5)))
}

// Cuando varias órdenes comparten FactorySKU gana la de fecha más reciente,
// sin importar en qué posición del slice llegue.
func TestResolveCosts_GanaLaOrdenMasReciente(t *testing.T) {
	vieja := orderAt(1, "F1", 5.0, "2025-01-10")
	nueva := orderAt(2, "F1", 6.0, "2025-02-01")

	directo := ledger.ResolveCosts([]entity.Order{vieja, nueva})
	invertido := ledger.ResolveCosts([]entity.Order{nueva, vieja})

	require.True(t, directo.Lookup("F1").Equal(decimal.NewFromFloat(6.0)))
	assert.True(t, invertido.Lookup("F1").Equal(directo.Lookup("F1")),
		"el resultado no debe depender del orden de iteración del input")
}

// A igual OrderDate desempata el ID mayor (la orden registrada después).
func TestResolveCosts_EmpateDeFechaDesempataPorID(t *testing.T) {
	a := orderAt(7, "F1", 5.0, "2025-01-10")
	b := orderAt(9, "F1", 5.5, "2025-01-10")

	costs := ledger.ResolveCosts([]entity.Order{b, a})
	assert.True(t, costs.Lookup("F1").Equal(decimal.NewFromFloat(5.5)))
}

// SKU sin orden asociada: el costo es cero, nunca un error.
func TestResolveCosts_SKUDesconocidoValeCero(t *testing.T) {
	costs := ledger.ResolveCosts([]entity.Order{orderAt(1, "F1", 5.0, "2025-01-10")})
	assert.True(t, costs.Lookup("NO-EXISTE").IsZero())
}

func TestResolveCosts_InputVacio(t *testing.T) {
	costs := ledger.ResolveCosts(nil)
	assert.Empty(t, costs)
	assert.True(t, costs.Lookup("F1").IsZero())
}
