package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/application/inventory"
)

// StockHandler maneja ajustes manuais de estoque e o histórico (protegido).
type StockHandler struct {
	adjust  *inventory.UseCase
	history *inventory.HistoryUseCase
}

// NewStockHandler constrói o handler de estoque.
func NewStockHandler(adjust *inventory.UseCase, history *inventory.HistoryUseCase) *StockHandler {
	return &StockHandler{adjust: adjust, history: history}
}

// Adjust godoc
// @Summary      Registrar ajuste de estoque
// @Description  Entrada com custo informado recalcula o custo médio ponderado
//               do produto; saída registra o custo vigente.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockAdjustmentRequest  true  "produto_id, tipo (entrada|saida), quantidade, custo_unitario (entradas)"
// @Success      201   {object}  dto.StockAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque/ajustes [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.StockAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.adjust.Adjust(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Histórico de ajustes de estoque
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        produto_id  query  int  false  "Filtrar por produto"
// @Success      200  {array}  dto.StockAdjustmentHistoryItem
// @Router       /api/estoque/ajustes [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	produtoID := int64(c.QueryInt("produto_id", 0))
	out, err := h.history.List(produtoID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
