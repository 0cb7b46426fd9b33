// Package ledger contiene los servicios de dominio puros del libro de
// inventario: resolución de costos por SKU de fábrica y los cálculos que
// comparten los reportes.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Libreta-api/internal/domain/entity"
)

// CostMap mapea FactorySKU -> costo unitario vigente.
// Lookup devuelve cero para SKUs sin orden asociada (no es un error).
type CostMap map[string]decimal.Decimal

// Lookup devuelve el costo unitario del SKU, o cero si no hay orden que lo defina.
func (m CostMap) Lookup(factorySKU string) decimal.Decimal {
	if c, ok := m[factorySKU]; ok {
		return c
	}
	return decimal.Zero
}

// ResolveCosts construye el mapa FactorySKU -> CostPerItem a partir de las
// órdenes activas de un usuario. Cuando varias órdenes comparten FactorySKU
// gana la de OrderDate más reciente; a igual fecha gana la de ID mayor.
// El desempate es explícito para no depender del orden de iteración del input.
func ResolveCosts(orders []entity.Order) CostMap {
	costs := make(CostMap, len(orders))
	winners := make(map[string]entity.Order, len(orders))

	for _, o := range orders {
		prev, ok := winners[o.FactorySKU]
		if !ok || supersedes(o, prev) {
			winners[o.FactorySKU] = o
			costs[o.FactorySKU] = o.CostPerItem
		}
	}
	return costs
}

// supersedes indica si la orden a debe reemplazar a b como fuente de costo.
func supersedes(a, b entity.Order) bool {
	if a.OrderDate.After(b.OrderDate) {
		return true
	}
	if a.OrderDate.Equal(b.OrderDate) {
		return a.ID > b.ID
	}
	return false
}
