package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo implementação do porto FinanceRepository sobre PostgreSQL.
type FinanceRepo struct {
	q Querier
}

// NewFinanceRepository constrói o adaptador do razão financeiro.
func NewFinanceRepository(q Querier) *FinanceRepo {
	return &FinanceRepo{q: q}
}

// Create persiste um lançamento.
func (r *FinanceRepo) Create(tx *entity.FinanceTransaction) error {
	query := `
		INSERT INTO finance_transactions (data_lancamento, tipo, valor, origem,
			external_id_mp, descricao, criado_em, lote_importacao)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), now(), NULLIF($7, ''))
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		tx.Data, tx.Tipo, tx.Valor, tx.Fonte,
		tx.ExternalIDMP, tx.Descricao, tx.LoteImportacao,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("insert lançamento: %w", err)
	}
	return nil
}

// UpsertByExternalID insere ou atualiza pelo id externo do Mercado Pago.
// Devolve true quando a linha foi criada.
func (r *FinanceRepo) UpsertByExternalID(tx *entity.FinanceTransaction) (bool, error) {
	query := `
		INSERT INTO finance_transactions (data_lancamento, tipo, valor, origem,
			external_id_mp, descricao, criado_em, lote_importacao)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), now(), NULLIF($7, ''))
		ON CONFLICT (external_id_mp) WHERE external_id_mp IS NOT NULL
		DO UPDATE SET data_lancamento = EXCLUDED.data_lancamento,
			tipo = EXCLUDED.tipo, valor = EXCLUDED.valor,
			descricao = EXCLUDED.descricao, lote_importacao = EXCLUDED.lote_importacao
		RETURNING id, (xmax = 0)`
	var inserted bool
	err := r.q.QueryRow(context.Background(), query,
		tx.Data, tx.Tipo, tx.Valor, tx.Fonte,
		tx.ExternalIDMP, tx.Descricao, tx.LoteImportacao,
	).Scan(&tx.ID, &inserted)
	if err != nil {
		return false, fmt.Errorf("upsert lançamento: %w", err)
	}
	return inserted, nil
}

// ExistsExternalID informa se já há lançamento com esse id externo e tipo.
func (r *FinanceRepo) ExistsExternalID(externalID, tipo string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM finance_transactions WHERE external_id_mp = $1 AND tipo = $2)`,
		externalID, tipo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists lançamento: %w", err)
	}
	return exists, nil
}

func financeWhere(filter repository.FinanceFilter) (string, []any) {
	var args []any
	where := ""
	addCond := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		addCond("data_lancamento >= $" + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		addCond("data_lancamento <= $" + strconv.Itoa(len(args)))
	}
	if filter.Tipo != "" {
		args = append(args, filter.Tipo)
		addCond("tipo = $" + strconv.Itoa(len(args)))
	}
	if filter.Fonte != "" {
		args = append(args, filter.Fonte)
		addCond("origem = $" + strconv.Itoa(len(args)))
	}
	return where, args
}

// List devolve os lançamentos do filtro, mais recentes primeiro.
func (r *FinanceRepo) List(filter repository.FinanceFilter) ([]*entity.FinanceTransaction, error) {
	where, args := financeWhere(filter)
	query := `
		SELECT id, data_lancamento, tipo, valor, origem, external_id_mp,
			COALESCE(descricao, ''), COALESCE(criado_em, data_lancamento), COALESCE(lote_importacao, '')
		FROM finance_transactions` + where + ` ORDER BY data_lancamento DESC, id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lançamentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.FinanceTransaction
	for rows.Next() {
		var tx entity.FinanceTransaction
		if err := rows.Scan(&tx.ID, &tx.Data, &tx.Tipo, &tx.Valor, &tx.Fonte,
			&tx.ExternalIDMP, &tx.Descricao, &tx.CreatedAt, &tx.LoteImportacao); err != nil {
			return nil, fmt.Errorf("scan lançamento: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}

// SumRange soma os valores do tipo no período; tipo vazio soma todos.
func (r *FinanceRepo) SumRange(from, to *time.Time, tipo string) (decimal.Decimal, error) {
	where, args := financeWhere(repository.FinanceFilter{From: from, To: to, Tipo: tipo})
	var total decimal.Decimal
	err := withReadRetry(func() error {
		return r.q.QueryRow(context.Background(),
			`SELECT COALESCE(SUM(valor), 0) FROM finance_transactions`+where, args...).Scan(&total)
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum lançamentos: %w", err)
	}
	return total, nil
}

// SumBefore soma tudo lançado antes do instante (saldo anterior).
func (r *FinanceRepo) SumBefore(t time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := withReadRetry(func() error {
		return r.q.QueryRow(context.Background(),
			`SELECT COALESCE(SUM(valor), 0) FROM finance_transactions WHERE data_lancamento < $1`,
			t).Scan(&total)
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum saldo anterior: %w", err)
	}
	return total, nil
}

// ListBatches agrega os lotes importados do Mercado Pago, mais recente primeiro.
func (r *FinanceRepo) ListBatches() ([]*repository.FinanceBatch, error) {
	query := `
		SELECT lote_importacao, count(*), min(data_lancamento), max(data_lancamento)
		FROM finance_transactions
		WHERE origem = 'mercado_pago' AND lote_importacao IS NOT NULL
		GROUP BY lote_importacao
		ORDER BY lote_importacao DESC`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list lotes MP: %w", err)
	}
	defer rows.Close()

	var list []*repository.FinanceBatch
	for rows.Next() {
		var b repository.FinanceBatch
		if err := rows.Scan(&b.Lote, &b.Quantidade, &b.PrimeiraData, &b.UltimaData); err != nil {
			return nil, fmt.Errorf("scan lote MP: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// DeleteBatch remove os lançamentos do lote. Só sai o que veio do Mercado
// Pago; lançamentos manuais ficam.
func (r *FinanceRepo) DeleteBatch(lote string) (int, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM finance_transactions WHERE lote_importacao = $1 AND origem = 'mercado_pago'`, lote)
	if err != nil {
		return 0, fmt.Errorf("delete lote MP: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// DeleteByTipoDescricao remove lançamentos do tipo com a descrição exata.
func (r *FinanceRepo) DeleteByTipoDescricao(tipo, descricao string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM finance_transactions WHERE tipo = $1 AND descricao = $2`, tipo, descricao)
	if err != nil {
		return fmt.Errorf("delete saldo anterior: %w", err)
	}
	return nil
}
