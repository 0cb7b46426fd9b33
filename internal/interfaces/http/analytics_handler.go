package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Libreta-api/internal/application/analytics"
	"github.com/jhoicas/Libreta-api/internal/application/dto"
	"github.com/jhoicas/Libreta-api/internal/application/reports"
)

// AnalyticsHandler expone los reportes: dashboard, serie temporal,
// contabilidad, saldos pendientes y exportación a PDF (protegido).
type AnalyticsHandler struct {
	dashboardUC   *analytics.DashboardUseCase
	performanceUC *analytics.PerformanceUseCase
	accountingUC  *analytics.AccountingUseCase
	statementUC   *reports.StatementUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(
	dashboardUC *analytics.DashboardUseCase,
	performanceUC *analytics.PerformanceUseCase,
	accountingUC *analytics.AccountingUseCase,
	statementUC *reports.StatementUseCase,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		dashboardUC:   dashboardUC,
		performanceUC: performanceUC,
		accountingUC:  accountingUC,
		statementUC:   statementUC,
	}
}

// Dashboard godoc
// @Summary      Resumen del negocio (ingresos, COGS, ganancia, stock, saldos)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetSummary(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Performance godoc
// @Summary      Serie temporal de ingresos, costos y ganancia por día
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PerformanceChartDTO
// @Router       /api/performance [get]
func (h *AnalyticsHandler) Performance(c *fiber.Ctx) error {
	out, err := h.performanceUC.GetChart(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Accounting godoc
// @Summary      Libro contable: costo, abonado y saldo por orden
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AccountingReportDTO
// @Router       /api/accounting [get]
func (h *AnalyticsHandler) Accounting(c *fiber.Ctx) error {
	out, err := h.accountingUC.GetReport(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Outstanding godoc
// @Summary      Órdenes con saldo pendiente (solo saldo positivo)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OutstandingItemDTO
// @Router       /api/outstanding [get]
func (h *AnalyticsHandler) Outstanding(c *fiber.Ctx) error {
	out, err := h.accountingUC.ListOutstanding(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StatementPDF godoc
// @Summary      Descargar el estado de cuenta en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/accounting/statement.pdf [get]
func (h *AnalyticsHandler) StatementPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.statementUC.GenerateStatement(c.UserContext(), GetUserID(c), GetUsername(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("estado-de-cuenta-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
