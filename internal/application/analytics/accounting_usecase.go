package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/domain/entity"
	"github.com/jhoicas/Libreta-api/internal/domain/repository"
)

// AccountingUseCase libro contable y saldos pendientes. A diferencia del
// dashboard, aquí el costo sale de cada orden (qty * cost_per_item); la
// resolución por factory_sku no participa.
type AccountingUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAccountingUseCase construye el caso de uso.
func NewAccountingUseCase(analyticsRepo repository.AnalyticsRepository) *AccountingUseCase {
	return &AccountingUseCase{analyticsRepo: analyticsRepo}
}

// GetReport lista todas las órdenes activas (la más reciente primero) con lo
// pagado y lo pendiente por orden, más los totales globales. El saldo de una
// orden puede ser negativo (sobrepago); igual se lista.
func (uc *AccountingUseCase) GetReport(ctx context.Context, userID string) (*dto.AccountingReportDTO, error) {
	orders, paidByOrder, err := uc.fetch(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	report := &dto.AccountingReportDTO{Rows: []dto.AccountingRowDTO{}}
	for _, o := range orders {
		totalCost := o.TotalCost()
		paid := paidByOrder[o.ID]

		report.Rows = append(report.Rows, dto.AccountingRowDTO{
			OrderID:        o.ID,
			ProductDetails: o.ProductDetails,
			FactorySKU:     o.FactorySKU,
			OrderDate:      o.OrderDate,
			TotalCost:      totalCost,
			PaidAmount:     paid,
			Outstanding:    totalCost.Sub(paid),
		})
		report.TotalOrderCosts = report.TotalOrderCosts.Add(totalCost)
		report.TotalPaidAmount = report.TotalPaidAmount.Add(paid)
	}
	report.TotalOutstanding = report.TotalOrderCosts.Sub(report.TotalPaidAmount)
	return report, nil
}

// ListOutstanding devuelve solo las órdenes con saldo estrictamente positivo.
// Una orden saldada (o sobrepagada) desaparece de esta lista aunque siga en
// el libro contable.
func (uc *AccountingUseCase) ListOutstanding(ctx context.Context, userID string) ([]dto.OutstandingItemDTO, error) {
	orders, paidByOrder, err := uc.fetch(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	items := []dto.OutstandingItemDTO{}
	for _, o := range orders {
		outstanding := o.TotalCost().Sub(paidByOrder[o.ID])
		if outstanding.IsPositive() {
			items = append(items, dto.OutstandingItemDTO{
				OrderID:    o.ID,
				FactorySKU: o.FactorySKU,
				Amount:     outstanding,
			})
		}
	}
	return items, nil
}

// fetch trae órdenes y abonos agrupados en paralelo. byDateDesc escoge el
// listado ordenado por fecha (libro contable) o el natural (saldos).
func (uc *AccountingUseCase) fetch(ctx context.Context, userID string, byDateDesc bool) ([]entity.Order, map[int64]decimal.Decimal, error) {
	type ordersResult struct {
		rows []entity.Order
		err  error
	}
	type paymentsResult struct {
		byOrder map[int64]decimal.Decimal
		err     error
	}

	ordersCh := make(chan ordersResult, 1)
	paymentsCh := make(chan paymentsResult, 1)

	go func() {
		var rows []entity.Order
		var err error
		if byDateDesc {
			rows, err = uc.analyticsRepo.ActiveOrdersByDateDesc(ctx, userID)
		} else {
			rows, err = uc.analyticsRepo.ActiveOrders(ctx, userID)
		}
		ordersCh <- ordersResult{rows, err}
	}()
	go func() {
		byOrder, err := uc.analyticsRepo.PaymentsTotalByOrder(ctx, userID)
		paymentsCh <- paymentsResult{byOrder, err}
	}()

	orders := <-ordersCh
	payments := <-paymentsCh

	if orders.err != nil {
		return nil, nil, fmt.Errorf("accounting: órdenes: %w", orders.err)
	}
	if payments.err != nil {
		return nil, nil, fmt.Errorf("accounting: abonos: %w", payments.err)
	}
	return orders.rows, payments.byOrder, nil
}
