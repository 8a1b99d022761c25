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

	"github.com/oliveirafjdo-web/Mega/internal/application/auth"
	"github.com/oliveirafjdo-web/Mega/internal/application/importer"
	"github.com/oliveirafjdo-web/Mega/internal/application/inventory"
	"github.com/oliveirafjdo-web/Mega/internal/application/report"
	"github.com/oliveirafjdo-web/Mega/internal/application/usecase"
	infrapdf "github.com/oliveirafjdo-web/Mega/internal/infrastructure/pdf"
	"github.com/oliveirafjdo-web/Mega/internal/infrastructure/postgres"
	"github.com/oliveirafjdo-web/Mega/internal/infrastructure/sheet"
	httpRouter "github.com/oliveirafjdo-web/Mega/internal/interfaces/http"
	"github.com/oliveirafjdo-web/Mega/pkg/config"
	"github.com/oliveirafjdo-web/Mega/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	adjustmentRepo := postgres.NewAdjustmentRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Garante a linha única de configurações antes de atender requests.
	if err := settingsRepo.EnsureDefault(); err != nil {
		log.Fatal().Err(err).Msg("inicializar configurações")
	}

	reportWriter, err := sheet.NewReportWriter(cfg.Import.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar diretório de relatórios")
	}

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, txRunner, log)
	saleUC := usecase.NewSaleUseCase(saleRepo, log)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	financeUC := usecase.NewFinanceUseCase(financeRepo, log)
	stockAdjustUC := inventory.NewUseCase(txRunner, log)
	stockHistoryUC := inventory.NewHistoryUseCase(adjustmentRepo)

	dashboardUC := report.NewDashboardUseCase(reportRepo, settingsRepo)
	profitUC := report.NewProfitUseCase(reportRepo, settingsRepo)
	coverageUC := report.NewCoverageUseCase(productRepo, reportRepo, settingsRepo)
	reconciliationUC := report.NewReconciliationUseCase(reportRepo, financeRepo)

	salesImporter := importer.NewSalesImporter(txRunner, reportWriter, log)
	productImporter := importer.NewProductImporter(txRunner, log)
	settlementImporter := importer.NewSettlementImporter(txRunner, reportWriter, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // uploads de planilha
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Metrifiy API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		SaleUC:           saleUC,
		SettingsUC:       settingsUC,
		FinanceUC:        financeUC,
		StockAdjustUC:    stockAdjustUC,
		StockHistoryUC:   stockHistoryUC,
		DashboardUC:      dashboardUC,
		ProfitUC:         profitUC,
		CoverageUC:       coverageUC,
		ReconciliationUC: reconciliationUC,
		SalesImporter:    salesImporter,
		ProductImporter:  productImporter,
		SettlementImport: settlementImporter,
		ReportWriter:     reportWriter,
		ProfitPDF:        infrapdf.NewProfitReportGenerator(),
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
