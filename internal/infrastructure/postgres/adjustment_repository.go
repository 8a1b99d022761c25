package postgres

import (
	"context"
	"fmt"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

const adjustmentColumns = `id, produto_id, data_ajuste, tipo, quantidade,
	COALESCE(custo_unitario, 0), COALESCE(observacao, '')`

// AdjustmentRepo implementação do porto AdjustmentRepository sobre PostgreSQL.
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository constrói o adaptador de ajustes de estoque.
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

// Create persiste um ajuste.
func (r *AdjustmentRepo) Create(adj *entity.StockAdjustment) error {
	query := `
		INSERT INTO ajustes_estoque (produto_id, data_ajuste, tipo, quantidade, custo_unitario, observacao)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		adj.ProductID, adj.DataAjuste, adj.Tipo, adj.Quantidade, adj.CustoUnitario, adj.Observacao,
	).Scan(&adj.ID)
	if err != nil {
		return fmt.Errorf("insert ajuste: %w", err)
	}
	return nil
}

// ListByProduct devolve o histórico de ajustes de um produto, mais recente primeiro.
func (r *AdjustmentRepo) ListByProduct(productID int64) ([]*entity.StockAdjustment, error) {
	return r.list(`SELECT `+adjustmentColumns+`
		FROM ajustes_estoque WHERE produto_id = $1 ORDER BY data_ajuste DESC, id DESC`, productID)
}

// ListRecent devolve os ajustes mais recentes de todos os produtos.
func (r *AdjustmentRepo) ListRecent(limit int) ([]*entity.StockAdjustment, error) {
	return r.list(`SELECT `+adjustmentColumns+`
		FROM ajustes_estoque ORDER BY data_ajuste DESC, id DESC LIMIT $1`, limit)
}

func (r *AdjustmentRepo) list(query string, args ...any) ([]*entity.StockAdjustment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ajustes: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockAdjustment
	for rows.Next() {
		var a entity.StockAdjustment
		if err := rows.Scan(&a.ID, &a.ProductID, &a.DataAjuste, &a.Tipo,
			&a.Quantidade, &a.CustoUnitario, &a.Observacao); err != nil {
			return nil, fmt.Errorf("scan ajuste: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
