package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain"
)

// domainError traduz erros de domínio para a resposta HTTP padrão.
// Erros desconhecidos viram 500 com a mensagem original.
func domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso não encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "SKU já cadastrado"})
	case errors.Is(err, domain.ErrHasSales):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_SALES", Message: "produto possui vendas vinculadas"})
	case errors.Is(err, domain.ErrSelfLink):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SELF_LINK", Message: "produto não pode ser vinculado a si mesmo"})
	case errors.Is(err, domain.ErrNotAutoCreated):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_AUTO_CREATED", Message: "só produtos criados automaticamente podem ser vinculados"})
	case errors.Is(err, domain.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USERNAME_TAKEN", Message: "nome de usuário já cadastrado"})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente"})
	case errors.Is(err, domain.ErrMissingColumn):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_COLUMN", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingSheet):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_SHEET", Message: err.Error()})
	case errors.Is(err, domain.ErrEmptySpreadsheet):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_SPREADSHEET", Message: "planilha sem linhas de dados"})
	case errors.Is(err, domain.ErrUnsupportedFile):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_FILE", Message: "envie um arquivo .xlsx ou .xls"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
