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

const dayLayout = "2006-01-02"

// Colores de las series, fijados por el contrato con los clientes Chart.js.
const (
	revenueColor = "rgba(75, 192, 192, 1)"
	costColor    = "rgba(255, 99, 132, 1)"
	profitColor  = "rgba(54, 162, 235, 1)"
)

// PerformanceUseCase genera la serie temporal de ingresos, costos y ganancia
// por día calendario. Los días sin ventas se omiten (no se rellenan con cero).
type PerformanceUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewPerformanceUseCase construye el caso de uso.
func NewPerformanceUseCase(analyticsRepo repository.AnalyticsRepository) *PerformanceUseCase {
	return &PerformanceUseCase{analyticsRepo: analyticsRepo}
}

type dayTotals struct {
	revenue decimal.Decimal
	cost    decimal.Decimal
	profit  decimal.Decimal
}

// GetChart construye el PerformanceChartDTO del usuario. El costo de cada
// venta se resuelve contra el mapa de costos construido una sola vez para
// todo el reporte (el JOIN del repositorio ya trae el FactorySKU de cada
// venta, no hay consulta por fila).
func (uc *PerformanceUseCase) GetChart(ctx context.Context, userID string) (*dto.PerformanceChartDTO, error) {
	type ordersResult struct {
		rows []entity.Order
		err  error
	}
	type salesResult struct {
		rows []repository.SaleWithProduct
		err  error
	}

	ordersCh := make(chan ordersResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.ActiveOrders(ctx, userID)
		ordersCh <- ordersResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.ActiveSalesWithProduct(ctx, userID)
		salesCh <- salesResult{rows, err}
	}()

	orders := <-ordersCh
	sales := <-salesCh

	if orders.err != nil {
		return nil, fmt.Errorf("performance: órdenes: %w", orders.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("performance: ventas: %w", sales.err)
	}

	costs := ledger.ResolveCosts(orders.rows)

	// Agrupar por día calendario de la venta, tal como quedó almacenado
	// (sin conversión de zona horaria).
	daily := make(map[string]*dayTotals)
	for _, s := range sales.rows {
		day := s.Sale.SaleDate.Format(dayLayout)
		totals, ok := daily[day]
		if !ok {
			totals = &dayTotals{}
			daily[day] = totals
		}
		qty := decimal.NewFromInt(s.Sale.Quantity)
		revenue := s.Sale.PricePerItem.Mul(qty)
		cost := costs.Lookup(s.FactorySKU).Mul(qty)

		totals.revenue = totals.revenue.Add(revenue)
		totals.cost = totals.cost.Add(cost)
		totals.profit = totals.profit.Add(revenue.Sub(cost))
	}

	labels := make([]string, 0, len(daily))
	for day := range daily {
		labels = append(labels, day)
	}
	sort.Strings(labels)

	revenueData := make([]decimal.Decimal, 0, len(labels))
	costData := make([]decimal.Decimal, 0, len(labels))
	profitData := make([]decimal.Decimal, 0, len(labels))
	for _, day := range labels {
		revenueData = append(revenueData, daily[day].revenue)
		costData = append(costData, daily[day].cost)
		profitData = append(profitData, daily[day].profit)
	}

	return &dto.PerformanceChartDTO{
		Labels: labels,
		Datasets: []dto.ChartDatasetDTO{
			{Label: "Ingresos", Data: revenueData, BorderColor: revenueColor, Tension: 0.1},
			{Label: "Costos", Data: costData, BorderColor: costColor, Tension: 0.1},
			{Label: "Ganancia", Data: profitData, BorderColor: profitColor, Tension: 0.1},
		},
	}, nil
}
