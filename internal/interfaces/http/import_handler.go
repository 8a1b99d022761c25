package http

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/application/importer"
	"github.com/oliveirafjdo-web/Mega/internal/infrastructure/sheet"
)

// ImportHandler recebe os uploads de planilha e dispara os importadores
// (protegido). Os relatórios de exceção gerados ficam disponíveis para
// download pelo nome do arquivo.
type ImportHandler struct {
	sales      *importer.SalesImporter
	products   *importer.ProductImporter
	settlement *importer.SettlementImporter
	reports    *sheet.ReportWriter
}

// NewImportHandler constrói o handler de importações.
func NewImportHandler(
	sales *importer.SalesImporter,
	products *importer.ProductImporter,
	settlement *importer.SettlementImporter,
	reports *sheet.ReportWriter,
) *ImportHandler {
	return &ImportHandler{sales: sales, products: products, settlement: settlement, reports: reports}
}

// formTable lê a planilha do campo multipart "arquivo" e converte em tabela.
func formTable(fh *multipart.FileHeader, sheetName string, headerRow int) (*importer.Table, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sheet.ReadTable(f, fh.Filename, sheetName, headerRow)
}

// missingFile resposta padrão quando o upload não veio no request.
func missingFile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "envie a planilha no campo 'arquivo'"})
}

// ImportSales godoc
// @Summary      Importar vendas do Mercado Livre
// @Description  Espera o export oficial do ML (aba "Vendas BR", cabeçalho na
//               linha 6). Gera planilha de exceções quando há vendas sem
//               produto correspondente.
// @Tags         imports
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        arquivo  formData  file  true  "Planilha .xlsx do Mercado Livre"
// @Success      200  {object}  dto.SalesImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/importacoes/vendas [post]
func (h *ImportHandler) ImportSales(c *fiber.Ctx) error {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return missingFile(c)
	}
	t, err := formTable(fh, importer.SalesSheetName, importer.SalesHeaderRow)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.sales.Import(c.Context(), t)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ImportProducts godoc
// @Summary      Importar catálogo de produtos
// @Description  Primeira aba, cabeçalho na primeira linha. SKUs existentes são
//               atualizados, novos são inseridos.
// @Tags         imports
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        arquivo  formData  file  true  "Planilha .xlsx de produtos"
// @Success      200  {object}  dto.ProductImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/importacoes/produtos [post]
func (h *ImportHandler) ImportProducts(c *fiber.Ctx) error {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return missingFile(c)
	}
	t, err := formTable(fh, "", 0)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.products.Import(c.Context(), t)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ImportSettlement godoc
// @Summary      Importar liquidações do Mercado Pago
// @Description  Relatório de atividades do MP. Transações já importadas são
//               atualizadas pelo ID externo, duplicadas na planilha são ignoradas.
// @Tags         imports
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        arquivo  formData  file  true  "Planilha .xlsx do Mercado Pago"
// @Success      200  {object}  dto.SettlementImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/importacoes/liquidacoes [post]
func (h *ImportHandler) ImportSettlement(c *fiber.Ctx) error {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return missingFile(c)
	}
	t, err := formTable(fh, "", 0)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.settlement.Import(c.Context(), t)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DownloadReport godoc
// @Summary      Baixar relatório de exceções gerado por uma importação
// @Tags         imports
// @Security     Bearer
// @Param        nome  path  string  true  "Nome do arquivo devolvido na importação"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/importacoes/relatorios/{nome} [get]
func (h *ImportHandler) DownloadReport(c *fiber.Ctx) error {
	nome := filepath.Base(strings.TrimSpace(c.Params("nome")))
	if nome == "" || nome == "." || strings.HasPrefix(nome, "..") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome de arquivo inválido"})
	}
	return c.Download(filepath.Join(h.reports.Dir(), nome), nome)
}

// ProductTemplate godoc
// @Summary      Baixar o modelo de planilha de produtos
// @Tags         imports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/importacoes/modelo-produtos [get]
func (h *ImportHandler) ProductTemplate(c *fiber.Ctx) error {
	buf, err := sheet.TemplateWorkbook()
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="modelo_produtos.xlsx"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
