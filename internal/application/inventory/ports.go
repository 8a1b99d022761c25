package inventory

import (
	"context"

	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação.
type TxRunner interface {
	RunStock(ctx context.Context, fn func(
		products repository.ProductRepository,
		adjustments repository.AdjustmentRepository,
	) error) error
}
