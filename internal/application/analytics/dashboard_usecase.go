// Package analytics contiene los casos de uso de reportes: resumen del
// dashboard, serie temporal de rendimiento, libro contable y saldos
// pendientes. Todos son read-only sobre los registros activos del usuario.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/ledger"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

const (
	lowStockThreshold = 10 // stock <= umbral entra a la lista de reposición
	topProfitableSize = 5  // productos en el widget de más rentables
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase genera el resumen financiero del inventario completo.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Los costos se
// resuelven una sola vez por reporte con ledger.ResolveCosts.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para el usuario indicado.
//
// Cuatro llamadas en paralelo: órdenes, ventas, productos y abonos agrupados.
// Con inputs vacíos todo degrada a cero/listas vacías, nunca a error.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, userID string) (*dto.DashboardSummaryDTO, error) {
	type ordersResult struct {
		rows []entity.Order
		err  error
	}
	type salesResult struct {
		rows []repository.SaleWithProduct
		err  error
	}
	type productsResult struct {
		rows []entity.Product
		err  error
	}
	type paymentsResult struct {
		byOrder map[int64]decimal.Decimal
		err     error
	}

	ordersCh := make(chan ordersResult, 1)
	salesCh := make(chan salesResult, 1)
	productsCh := make(chan productsResult, 1)
	paymentsCh := make(chan paymentsResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.ActiveOrders(ctx, userID)
		ordersCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.ActiveSalesWithProduct(ctx, userID)
		salesCh <- salesResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.ActiveProducts(ctx, userID)
		productsCh <- productsResult{rows, err}
	}()
	go func() {
		byOrder, err := uc.analyticsRepo.PaymentsTotalByOrder(ctx, userID)
		paymentsCh <- paymentsResult{byOrder, err}
	}()

	orders := <-ordersCh
	sales := <-salesCh
	products := <-productsCh
	payments := <-paymentsCh

	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes: %w", orders.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if payments.err != nil {
		return nil, fmt.Errorf("dashboard: abonos: %w", payments.err)
	}

	costs := ledger.ResolveCosts(orders.rows)

	// ── Ventas: ingresos, unidades, COGS ──────────────────────────────────────
	var totalRevenue, totalCOGS decimal.Decimal
	var totalItemsSold int64
	for _, s := range sales.rows {
		qty := decimal.NewFromInt(s.Sale.Quantity)
		totalRevenue = totalRevenue.Add(s.Sale.PricePerItem.Mul(qty))
		totalCOGS = totalCOGS.Add(costs.Lookup(s.FactorySKU).Mul(qty))
		totalItemsSold += s.Sale.Quantity
	}

	netProfit := totalRevenue.Sub(totalCOGS)

	// Margen protegido contra división por cero: sin ingresos el margen es 0.
	netProfitMargin := decimal.Zero
	if totalRevenue.IsPositive() {
		netProfitMargin = netProfit.Div(totalRevenue).Mul(hundred)
	}

	// ── Inventario: valor a costo y bajo stock ────────────────────────────────
	var stockValue decimal.Decimal
	lowStock := []dto.ProductResponse{}
	for _, p := range products.rows {
		stockValue = stockValue.Add(costs.Lookup(p.FactorySKU).Mul(decimal.NewFromInt(p.Stock)))
		if p.Stock <= lowStockThreshold {
			lowStock = append(lowStock, dto.NewProductResponse(p))
		}
	}

	// ── Saldo global: costos de órdenes menos abonos ──────────────────────────
	var totalOrderCosts, totalPayments decimal.Decimal
	for _, o := range orders.rows {
		totalOrderCosts = totalOrderCosts.Add(o.TotalCost())
	}
	for _, paid := range payments.byOrder {
		totalPayments = totalPayments.Add(paid)
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue:          totalRevenue,
		TotalItemsSold:        totalItemsSold,
		TotalCOGS:             totalCOGS,
		NetProfit:             netProfit,
		NetProfitMargin:       netProfitMargin,
		CurrentStockValue:     stockValue,
		TotalOutstanding:      totalOrderCosts.Sub(totalPayments),
		LowStockProducts:      lowStock,
		TopProfitableProducts: topProfitable(sales.rows, costs),
	}, nil
}

// topProfitable agrupa la ganancia (precio - costo) * qty por etiqueta
// "Nombre (details)" y devuelve las 5 mayores. El sort es estable: a igual
// ganancia conserva el orden de primera aparición en las ventas.
func topProfitable(sales []repository.SaleWithProduct, costs ledger.CostMap) []dto.ProductProfitDTO {
	profitByLabel := make(map[string]decimal.Decimal)
	var labels []string

	for _, s := range sales {
		label := fmt.Sprintf("%s (%s)", s.ProductName, s.Details)
		profit := s.Sale.PricePerItem.Sub(costs.Lookup(s.FactorySKU)).
			Mul(decimal.NewFromInt(s.Sale.Quantity))
		if _, seen := profitByLabel[label]; !seen {
			labels = append(labels, label)
		}
		profitByLabel[label] = profitByLabel[label].Add(profit)
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return profitByLabel[labels[i]].GreaterThan(profitByLabel[labels[j]])
	})
	if len(labels) > topProfitableSize {
		labels = labels[:topProfitableSize]
	}

	out := make([]dto.ProductProfitDTO, 0, len(labels))
	for _, label := range labels {
		out = append(out, dto.ProductProfitDTO{Label: label, Profit: profitByLabel[label]})
	}
	return out
}
