package http

import (
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/application/usecase"
	"github.com/oliveirafjdo-web/Mega/internal/infrastructure/sheet"
)

// SaleHandler maneja listagem, exportação e lotes de vendas (protegido).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// paramLote lê o :lote da rota. O identificador de lote carrega ":" do
// timestamp, então o valor chega percent-encoded.
func paramLote(c *fiber.Ctx) string {
	raw := c.Params("lote")
	if dec, err := url.PathUnescape(raw); err == nil {
		return dec
	}
	return raw
}

// List godoc
// @Summary      Listar vendas
// @Description  Canceladas aparecem na lista mas ficam fora dos totais.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        data_inicio  query  string  false  "ISO 2006-01-02"
// @Param        data_fim     query  string  false  "ISO 2006-01-02"
// @Param        lote         query  string  false  "Lote de importação"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/vendas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("data_inicio"), c.Query("data_fim"), c.Query("lote"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar vendas do filtro em XLSX
// @Tags         sales
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        data_inicio  query  string  false  "ISO 2006-01-02"
// @Param        data_fim     query  string  false  "ISO 2006-01-02"
// @Param        lote         query  string  false  "Lote de importação"
// @Success      200  {file}  binary
// @Router       /api/vendas/exportar [get]
func (h *SaleHandler) Export(c *fiber.Ctx) error {
	rows, err := h.uc.Export(c.Query("data_inicio"), c.Query("data_fim"), c.Query("lote"))
	if err != nil {
		return domainError(c, err)
	}
	buf, err := sheet.SalesWorkbook(rows)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="vendas.xlsx"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}

// ListBatches godoc
// @Summary      Listar lotes de importação de vendas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BatchResponse
// @Router       /api/vendas/lotes [get]
func (h *SaleHandler) ListBatches(c *fiber.Ctx) error {
	out, err := h.uc.ListBatches()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeleteBatch godoc
// @Summary      Excluir um lote de vendas
// @Description  Remove todas as vendas do lote. O estoque baixado na
//               importação não é devolvido.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        lote  path  string  true  "Identificador do lote (percent-encoded)"
// @Success      200   {object}  map[string]interface{}
// @Router       /api/vendas/lotes/{lote} [delete]
func (h *SaleHandler) DeleteBatch(c *fiber.Ctx) error {
	lote := paramLote(c)
	if lote == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lote é obrigatório"})
	}
	n, err := h.uc.DeleteBatch(lote)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"lote": lote, "vendas_excluidas": n, "mensagem": fmt.Sprintf("%d vendas excluídas", n)})
}
