package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/application/usecase"
)

// FinanceHandler maneja o razão financeiro do Mercado Pago (protegido).
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler constrói o handler financeiro.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// View godoc
// @Summary      Visão do caixa no período
// @Description  Saldo anterior, entradas, devoluções, retiradas, ajustes e o
//               extrato do período. Sem filtro usa o mês vigente.
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        data_inicio  query  string  false  "ISO 2006-01-02"
// @Param        data_fim     query  string  false  "ISO 2006-01-02"
// @Success      200  {object}  dto.FinanceViewResponse
// @Router       /api/financeiro [get]
func (h *FinanceHandler) View(c *fiber.Ctx) error {
	var q dto.PeriodQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro inválido"})
	}
	out, err := h.uc.View(q)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// AddEntry godoc
// @Summary      Lançamento manual no razão
// @Description  Ações: saldo_inicial, devolucao, retirada, ajuste. O valor é
//               sempre positivo; o sinal sai do tipo da ação.
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinanceEntryRequest  true  "acao, valor, data, descricao"
// @Success      201   {object}  dto.FinanceTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financeiro/lancamentos [post]
func (h *FinanceHandler) AddEntry(c *fiber.Ctx) error {
	var in dto.FinanceEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AddEntry(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetOpeningBalance godoc
// @Summary      Definir o saldo anterior manual de um período
// @Description  Substitui o saldo anterior manual existente para a mesma data.
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpeningBalanceRequest  true  "valor, data_inicio"
// @Success      201   {object}  dto.FinanceTransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financeiro/saldo-inicial [post]
func (h *FinanceHandler) SetOpeningBalance(c *fiber.Ctx) error {
	var in dto.OpeningBalanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.SetOpeningBalance(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBatches godoc
// @Summary      Listar lotes de importação do Mercado Pago
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FinanceBatchResponse
// @Router       /api/financeiro/lotes [get]
func (h *FinanceHandler) ListBatches(c *fiber.Ctx) error {
	out, err := h.uc.ListBatches()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeleteBatch godoc
// @Summary      Excluir um lote de liquidações do Mercado Pago
// @Description  Só remove lançamentos importados; os manuais ficam.
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        lote  path  string  true  "Identificador do lote (percent-encoded)"
// @Success      200   {object}  map[string]interface{}
// @Router       /api/financeiro/lotes/{lote} [delete]
func (h *FinanceHandler) DeleteBatch(c *fiber.Ctx) error {
	lote := paramLote(c)
	if lote == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lote é obrigatório"})
	}
	n, err := h.uc.DeleteBatch(lote)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"lote": lote, "lancamentos_excluidos": n})
}
