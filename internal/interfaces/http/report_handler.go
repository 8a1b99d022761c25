package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/application/report"
	"github.com/oliveirafjdo-web/Mega/internal/infrastructure/pdf"
	"github.com/oliveirafjdo-web/Mega/internal/infrastructure/sheet"
)

// ReportHandler maneja dashboard e relatórios (protegido).
type ReportHandler struct {
	dashboard      *report.DashboardUseCase
	profit         *report.ProfitUseCase
	coverage       *report.CoverageUseCase
	reconciliation *report.ReconciliationUseCase
	pdfGen         *pdf.ProfitReportGenerator
}

// NewReportHandler constrói o handler de relatórios.
func NewReportHandler(
	dashboard *report.DashboardUseCase,
	profit *report.ProfitUseCase,
	coverage *report.CoverageUseCase,
	reconciliation *report.ReconciliationUseCase,
	pdfGen *pdf.ProfitReportGenerator,
) *ReportHandler {
	return &ReportHandler{
		dashboard:      dashboard,
		profit:         profit,
		coverage:       coverage,
		reconciliation: reconciliation,
		pdfGen:         pdfGen,
	}
}

// periodQuery interpreta o filtro de período do query string.
func periodQuery(c *fiber.Ctx) dto.PeriodQuery {
	return dto.PeriodQuery{
		DataInicio: c.Query("data_inicio"),
		DataFim:    c.Query("data_fim"),
	}
}

// Dashboard godoc
// @Summary      Dashboard do período
// @Description  Receita, custo, comissão, imposto, despesas, lucro e destaques.
//               Sem filtro usa o mês vigente.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        data_inicio  query  string  false  "ISO 2006-01-02"
// @Param        data_fim     query  string  false  "ISO 2006-01-02"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/relatorios/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.dashboard.Get(periodQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Profit godoc
// @Summary      Relatório de lucro por produto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        data_inicio  query  string  false  "ISO 2006-01-02"
// @Param        data_fim     query  string  false  "ISO 2006-01-02"
// @Success      200  {object}  dto.ProfitReportResponse
// @Router       /api/relatorios/lucro [get]
func (h *ReportHandler) Profit(c *fiber.Ctx) error {
	out, err := h.profit.Get(periodQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ExportProfit godoc
// @Summary      Exportar o relatório de lucro
// @Tags         reports
// @Security     Bearer
// @Param        formato      query  string  false  "xlsx (padrão) ou pdf"
// @Param        data_inicio  query  string  false  "ISO 2006-01-02"
// @Param        data_fim     query  string  false  "ISO 2006-01-02"
// @Success      200  {file}  binary
// @Router       /api/relatorios/lucro/exportar [get]
func (h *ReportHandler) ExportProfit(c *fiber.Ctx) error {
	rep, err := h.profit.Get(periodQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	switch c.Query("formato", "xlsx") {
	case "pdf":
		raw, err := h.pdfGen.Generate(rep)
		if err != nil {
			return domainError(c, err)
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio_lucro.pdf"`)
		c.Set(fiber.HeaderContentType, "application/pdf")
		return c.Send(raw)
	case "xlsx":
		buf, err := sheet.ProfitWorkbook(rep)
		if err != nil {
			return domainError(c, err)
		}
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio_lucro.xlsx"`)
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		return c.Send(buf.Bytes())
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato deve ser xlsx ou pdf"})
	}
}

// Coverage godoc
// @Summary      Cobertura de estoque e projeção de retorno
// @Description  Giro dos últimos 30 dias; alerta de reposição abaixo de 15 dias
//               de cobertura.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CoverageReportResponse
// @Router       /api/relatorios/cobertura [get]
func (h *ReportHandler) Coverage(c *fiber.Ctx) error {
	out, err := h.coverage.Get()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Reconciliation godoc
// @Summary      Conciliação diária Mercado Livre x Mercado Pago
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        data_inicio  query  string  false  "ISO 2006-01-02"
// @Param        data_fim     query  string  false  "ISO 2006-01-02"
// @Success      200  {object}  dto.ReconciliationResponse
// @Router       /api/relatorios/conciliacao [get]
func (h *ReportHandler) Reconciliation(c *fiber.Ctx) error {
	out, err := h.reconciliation.Get(periodQuery(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
