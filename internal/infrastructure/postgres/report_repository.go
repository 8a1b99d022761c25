package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only de relatório (painel, lucro, cobertura,
// conciliação). Passam pelo retry de leitura.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// periodWhere monta o filtro de período sobre data_venda, encadeando em um
// WHERE já aberto (prefix "AND") ou abrindo um novo.
func periodWhere(from, to *time.Time, args []any) (string, []any) {
	where := ""
	if from != nil {
		args = append(args, *from)
		where += " AND v.data_venda >= $" + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += " AND v.data_venda <= $" + strconv.Itoa(len(args))
	}
	return where, args
}

// SalesTotals agrega o período: somatórios sem canceladas, ticket médio e os
// contadores de canceladas (receita <= 0).
func (r *ReportRepo) SalesTotals(from, to *time.Time) (*repository.SalesTotals, error) {
	where, args := periodWhere(from, to, nil)
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN v.receita_total > 0 THEN v.receita_total END), 0),
			COALESCE(SUM(CASE WHEN v.receita_total > 0 THEN v.custo_total END), 0),
			COALESCE(SUM(CASE WHEN v.receita_total > 0 THEN v.margem_contribuicao END), 0),
			COALESCE(AVG(CASE WHEN v.receita_total > 0 THEN v.preco_venda_unitario END), 0),
			COUNT(CASE WHEN v.receita_total <= 0 THEN 1 END),
			COALESCE(SUM(CASE WHEN v.receita_total <= 0 THEN v.preco_venda_unitario * v.quantidade END), 0)
		FROM vendas v
		WHERE TRUE` + where

	var t repository.SalesTotals
	err := withReadRetry(func() error {
		return r.pool.QueryRow(context.Background(), query, args...).Scan(
			&t.Receita, &t.Custo, &t.Margem, &t.TicketMedio, &t.CanceladasQtd, &t.CanceladasValor)
	})
	if err != nil {
		return nil, fmt.Errorf("totais de vendas: %w", err)
	}
	return &t, nil
}

// ProductCount conta os produtos do catálogo.
func (r *ReportRepo) ProductCount() (int, error) {
	var n int
	err := withReadRetry(func() error {
		return r.pool.QueryRow(context.Background(), `SELECT count(*) FROM produtos`).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("contar produtos: %w", err)
	}
	return n, nil
}

// StockUnits soma as unidades em estoque de todos os produtos.
func (r *ReportRepo) StockUnits() (int, error) {
	var n int
	err := withReadRetry(func() error {
		return r.pool.QueryRow(context.Background(),
			`SELECT COALESCE(SUM(estoque_atual), 0) FROM produtos`).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("somar estoque: %w", err)
	}
	return n, nil
}

func (r *ReportRepo) highlight(metric, order string, from, to *time.Time) (*repository.ProductHighlight, error) {
	where, args := periodWhere(from, to, nil)
	query := `
		SELECT p.nome, ` + metric + `
		FROM vendas v
		JOIN produtos p ON p.id = v.produto_id
		WHERE v.receita_total > 0` + where + `
		GROUP BY p.id, p.nome
		ORDER BY 2 ` + order + `
		LIMIT 1`

	var h repository.ProductHighlight
	err := withReadRetry(func() error {
		return r.pool.QueryRow(context.Background(), query, args...).Scan(&h.Nome, &h.Valor)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("destaque do painel: %w", err)
	}
	return &h, nil
}

// BestSeller produto com mais unidades vendidas no período.
func (r *ReportRepo) BestSeller(from, to *time.Time) (*repository.ProductHighlight, error) {
	return r.highlight(`SUM(v.quantidade)::numeric`, "DESC", from, to)
}

// MostProfitable produto com maior margem de contribuição no período.
func (r *ReportRepo) MostProfitable(from, to *time.Time) (*repository.ProductHighlight, error) {
	return r.highlight(`SUM(v.margem_contribuicao)`, "DESC", from, to)
}

// WorstMargin produto com menor margem de contribuição no período.
func (r *ReportRepo) WorstMargin(from, to *time.Time) (*repository.ProductHighlight, error) {
	return r.highlight(`SUM(v.margem_contribuicao)`, "ASC", from, to)
}

func (r *ReportRepo) profitAggs(extraWhere string, args []any) ([]*repository.ProductProfitAgg, error) {
	query := `
		SELECT COALESCE(p.id, 0), COALESCE(p.nome, '(sem produto)'),
			COALESCE(SUM(v.quantidade), 0), COALESCE(SUM(v.receita_total), 0),
			COALESCE(SUM(v.custo_total), 0), COALESCE(SUM(v.margem_contribuicao), 0)
		FROM vendas v
		LEFT JOIN produtos p ON p.id = v.produto_id
		WHERE v.receita_total > 0` + extraWhere + `
		GROUP BY p.id, p.nome
		ORDER BY 6 DESC`

	var list []*repository.ProductProfitAgg
	err := withReadRetry(func() error {
		rows, err := r.pool.Query(context.Background(), query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		list = list[:0]
		for rows.Next() {
			var a repository.ProductProfitAgg
			if err := rows.Scan(&a.ProductID, &a.Produto, &a.Qtd, &a.Receita, &a.Custo, &a.MargemAtual); err != nil {
				return err
			}
			list = append(list, &a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("lucro por produto: %w", err)
	}
	return list, nil
}

// ProfitByProduct agrega as vendas não canceladas do período por produto.
func (r *ReportRepo) ProfitByProduct(from, to *time.Time) ([]*repository.ProductProfitAgg, error) {
	where, args := periodWhere(from, to, nil)
	return r.profitAggs(where, args)
}

// HistoryByProduct agrega todo o histórico de vendas por produto.
func (r *ReportRepo) HistoryByProduct() ([]*repository.ProductProfitAgg, error) {
	return r.profitAggs("", nil)
}

// QtyByProductSince soma as unidades vendidas por produto desde o instante.
func (r *ReportRepo) QtyByProductSince(since time.Time) (map[int64]int, error) {
	query := `
		SELECT produto_id, COALESCE(SUM(quantidade), 0)
		FROM vendas
		WHERE produto_id IS NOT NULL AND receita_total > 0 AND data_venda >= $1
		GROUP BY produto_id`

	out := make(map[int64]int)
	err := withReadRetry(func() error {
		rows, err := r.pool.Query(context.Background(), query, since)
		if err != nil {
			return err
		}
		defer rows.Close()

		clear(out)
		for rows.Next() {
			var id int64
			var qtd int
			if err := rows.Scan(&id, &qtd); err != nil {
				return err
			}
			out[id] = qtd
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("giro por produto: %w", err)
	}
	return out, nil
}

// SalesNetRows devolve as linhas cruas da conciliação. Vendas sem data
// entram no resultado (contam nos totais, mas ficam fora da série diária).
func (r *ReportRepo) SalesNetRows(from, to *time.Time) ([]*repository.SaleNetRow, error) {
	where, args := periodWhere(from, to, nil)
	query := `
		SELECT v.data_venda, v.receita_total, v.comissao_ml
		FROM vendas v
		WHERE v.receita_total > 0 AND (v.data_venda IS NULL OR (TRUE` + where + `))`

	var list []*repository.SaleNetRow
	err := withReadRetry(func() error {
		rows, err := r.pool.Query(context.Background(), query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		list = list[:0]
		for rows.Next() {
			var row repository.SaleNetRow
			if err := rows.Scan(&row.Data, &row.Receita, &row.Comissao); err != nil {
				return err
			}
			list = append(list, &row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("linhas da conciliação: %w", err)
	}
	return list, nil
}
