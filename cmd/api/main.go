package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/Libreta-api/internal/application/analytics"
	"github.com/jhoicas/Libreta-api/internal/application/auth"
	"github.com/jhoicas/Libreta-api/internal/application/reports"
	"github.com/jhoicas/Libreta-api/internal/application/trash"
	"github.com/jhoicas/Libreta-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Libreta-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Libreta-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Libreta-api/internal/interfaces/http"
	"github.com/jhoicas/Libreta-api/pkg/config"
	"github.com/jhoicas/Libreta-api/pkg/logger"
)

func main() {
	// Los montos de los reportes viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración de esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	orderUC := usecase.NewOrderUseCase(orderRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := usecase.NewSaleUseCase(txRunner, saleRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, orderRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	performanceUC := appanalytics.NewPerformanceUseCase(analyticsRepo)
	accountingUC := appanalytics.NewAccountingUseCase(analyticsRepo)
	trashUC := trash.NewTrashUseCase(orderRepo, productRepo, saleRepo, paymentRepo)

	// PDF: estado de cuenta contable
	pdfGenerator := infrapdf.NewMarotoStatementGenerator()
	statementUC := reports.NewStatementUseCase(accountingUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Libreta API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		OrderUC:       orderUC,
		ProductUC:     productUC,
		SaleUC:        saleUC,
		PaymentUC:     paymentUC,
		DashboardUC:   dashboardUC,
		PerformanceUC: performanceUC,
		AccountingUC:  accountingUC,
		StatementUC:   statementUC,
		TrashUC:       trashUC,
		Pool:          pool,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
