package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oliveirafjdo-web/Mega/internal/application/auth"
	"github.com/oliveirafjdo-web/Mega/internal/application/importer"
	"github.com/oliveirafjdo-web/Mega/internal/application/inventory"
	"github.com/oliveirafjdo-web/Mega/internal/application/report"
	"github.com/oliveirafjdo-web/Mega/internal/application/usecase"
	"github.com/oliveirafjdo-web/Mega/internal/infrastructure/pdf"
	"github.com/oliveirafjdo-web/Mega/internal/infrastructure/sheet"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC           *auth.UseCase
	ProductUC        *usecase.ProductUseCase
	SaleUC           *usecase.SaleUseCase
	SettingsUC       *usecase.SettingsUseCase
	FinanceUC        *usecase.FinanceUseCase
	StockAdjustUC    *inventory.UseCase
	StockHistoryUC   *inventory.HistoryUseCase
	DashboardUC      *report.DashboardUseCase
	ProfitUC         *report.ProfitUseCase
	CoverageUC       *report.CoverageUseCase
	ReconciliationUC *report.ReconciliationUseCase
	SalesImporter    *importer.SalesImporter
	ProductImporter  *importer.ProductImporter
	SettlementImport *importer.SettlementImporter
	ReportWriter     *sheet.ReportWriter
	ProfitPDF        *pdf.ProfitReportGenerator
	JWTSecret        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos
	products := protected.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/auto", productHandler.ListAuto)
	products.Post("/reparar-orfas", productHandler.RepairOrphans)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/vincular", productHandler.Link)

	// Vendas
	sales := protected.Group("/vendas")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Get("/exportar", saleHandler.Export)
	sales.Get("/lotes", saleHandler.ListBatches)
	sales.Delete("/lotes/:lote", saleHandler.DeleteBatch)

	// Estoque
	stock := protected.Group("/estoque")
	stockHandler := NewStockHandler(deps.StockAdjustUC, deps.StockHistoryUC)
	stock.Post("/ajustes", stockHandler.Adjust)
	stock.Get("/ajustes", stockHandler.History)

	// Importações de planilha
	imports := protected.Group("/importacoes")
	importHandler := NewImportHandler(deps.SalesImporter, deps.ProductImporter, deps.SettlementImport, deps.ReportWriter)
	imports.Post("/vendas", importHandler.ImportSales)
	imports.Post("/produtos", importHandler.ImportProducts)
	imports.Post("/liquidacoes", importHandler.ImportSettlement)
	imports.Get("/modelo-produtos", importHandler.ProductTemplate)
	imports.Get("/relatorios/:nome", importHandler.DownloadReport)

	// Financeiro (razão Mercado Pago)
	finance := protected.Group("/financeiro")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	finance.Get("/", financeHandler.View)
	finance.Post("/lancamentos", financeHandler.AddEntry)
	finance.Post("/saldo-inicial", financeHandler.SetOpeningBalance)
	finance.Get("/lotes", financeHandler.ListBatches)
	finance.Delete("/lotes/:lote", financeHandler.DeleteBatch)

	// Relatórios
	reports := protected.Group("/relatorios")
	reportHandler := NewReportHandler(deps.DashboardUC, deps.ProfitUC, deps.CoverageUC, deps.ReconciliationUC, deps.ProfitPDF)
	reports.Get("/dashboard", reportHandler.Dashboard)
	reports.Get("/lucro", reportHandler.Profit)
	reports.Get("/lucro/exportar", reportHandler.ExportProfit)
	reports.Get("/cobertura", reportHandler.Coverage)
	reports.Get("/conciliacao", reportHandler.Reconciliation)

	// Configurações
	settings := protected.Group("/configuracoes")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
}
