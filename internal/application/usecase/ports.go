package usecase

import (
	"context"

	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, com os
// repositórios atados a ela. Usado pela regeneração de produtos órfãos, que
// cria produtos e revincula vendas de uma vez só.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
		finance repository.FinanceRepository,
	) error) error
}
