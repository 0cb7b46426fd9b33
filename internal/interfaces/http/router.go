package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Libreta-api/internal/application/analytics"
	"github.com/jhoicas/Libreta-api/internal/application/auth"
	"github.com/jhoicas/Libreta-api/internal/application/reports"
	"github.com/jhoicas/Libreta-api/internal/application/trash"
	"github.com/jhoicas/Libreta-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	OrderUC       *usecase.OrderUseCase
	ProductUC     *usecase.ProductUseCase
	SaleUC        *usecase.SaleUseCase
	PaymentUC     *usecase.PaymentUseCase
	DashboardUC   *analytics.DashboardUseCase
	PerformanceUC *analytics.PerformanceUseCase
	AccountingUC  *analytics.AccountingUseCase
	StatementUC   *reports.StatementUseCase
	TrashUC       *trash.TrashUseCase
	Pool          *pgxpool.Pool
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Health (público)
	healthHandler := NewHealthHandler(deps.Pool)
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/submit", orderHandler.Submit)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/stock-in", productHandler.StockIn)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/stock-out", saleHandler.StockOut)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)

	// Payments (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Submit)
	payments.Put("/:id", paymentHandler.Update)

	// Reportes (protegido)
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC, deps.PerformanceUC, deps.AccountingUC, deps.StatementUC)
	protected.Get("/dashboard", analyticsHandler.Dashboard)
	protected.Get("/performance", analyticsHandler.Performance)
	protected.Get("/accounting", analyticsHandler.Accounting)
	protected.Get("/accounting/statement.pdf", analyticsHandler.StatementPDF)
	protected.Get("/outstanding", analyticsHandler.Outstanding)

	// Gestión de datos (protegido)
	dataHandler := NewDataHandler(deps.OrderUC, deps.ProductUC, deps.SaleUC)
	protected.Get("/data", dataHandler.List)

	// Papelera (protegido)
	trashGroup := protected.Group("/trash")
	trashHandler := NewTrashHandler(deps.TrashUC)
	trashGroup.Get("/", trashHandler.List)
	trashGroup.Delete("/:itemType/:id", trashHandler.Delete)
	trashGroup.Post("/:itemType/:id/restore", trashHandler.Restore)
}
