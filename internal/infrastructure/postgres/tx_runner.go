package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliveirafjdo-web/Mega/internal/application/importer"
	"github.com/oliveirafjdo-web/Mega/internal/application/inventory"
	"github.com/oliveirafjdo-web/Mega/internal/application/usecase"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

var _ importer.TxRunner = (*TxRunner)(nil)
var _ usecase.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre uma transação, executa fn com repositórios atados a ela e faz
// Commit ou Rollback. Usado pelas importações e pela regeneração de órfãs.
func (r *TxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	finance repository.FinanceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewSaleRepository(tx), NewFinanceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunStock abre uma transação com os repositórios do ajuste de estoque.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	products repository.ProductRepository,
	adjustments repository.AdjustmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewAdjustmentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
