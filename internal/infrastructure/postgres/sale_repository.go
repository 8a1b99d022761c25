package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação do porto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador de vendas. Aceita pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste uma venda. Strings vazias de colunas opcionais viram NULL.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO vendas (produto_id, data_venda, quantidade, preco_venda_unitario,
			receita_total, comissao_ml, custo_total, margem_contribuicao,
			origem, numero_venda_ml, lote_importacao, estado, ml_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''))
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.ProductID, sale.DataVenda, sale.Quantidade, sale.PrecoUnitario,
		sale.ReceitaBruta, sale.Comissao, sale.Custo, sale.Margem,
		sale.Origem, sale.NumeroVendaML, sale.LoteImportacao, sale.Estado, sale.MLStatus,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// List devolve vendas com os dados do produto juntados, mais recentes
// primeiro. Vendas órfãs vêm com produto vazio.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*repository.SaleRow, error) {
	query := `
		SELECT v.id, v.produto_id, v.data_venda, v.quantidade, v.preco_venda_unitario,
			v.receita_total, v.comissao_ml, v.custo_total, v.margem_contribuicao,
			COALESCE(v.origem, ''), COALESCE(v.numero_venda_ml, ''),
			COALESCE(v.lote_importacao, ''), COALESCE(v.estado, ''), COALESCE(v.ml_status, ''),
			COALESCE(p.nome, ''), COALESCE(p.sku, '')
		FROM vendas v
		LEFT JOIN produtos p ON p.id = v.produto_id`

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
		addCond("v.data_venda >= $" + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		addCond("v.data_venda <= $" + strconv.Itoa(len(args)))
	}
	if filter.Lote != "" {
		args = append(args, filter.Lote)
		addCond("v.lote_importacao = $" + strconv.Itoa(len(args)))
	}
	query += where + ` ORDER BY v.data_venda DESC NULLS LAST, v.id DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()

	var list []*repository.SaleRow
	for rows.Next() {
		var row repository.SaleRow
		s := &row.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.DataVenda, &s.Quantidade, &s.PrecoUnitario,
			&s.ReceitaBruta, &s.Comissao, &s.Custo, &s.Margem,
			&s.Origem, &s.NumeroVendaML, &s.LoteImportacao, &s.Estado, &s.MLStatus,
			&row.ProdutoNome, &row.ProdutoSKU); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		s.ReceitaLiquida = s.ReceitaBruta.Sub(s.Comissao)
		list = append(list, &row)
	}
	return list, rows.Err()
}

// ListBatches agrega as vendas por lote de importação, mais recente primeiro.
func (r *SaleRepo) ListBatches() ([]*repository.BatchSummary, error) {
	query := `
		SELECT lote_importacao, count(*), min(data_venda), max(data_venda),
			COALESCE(SUM(receita_total), 0)
		FROM vendas
		WHERE lote_importacao IS NOT NULL
		GROUP BY lote_importacao
		ORDER BY lote_importacao DESC`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()

	var list []*repository.BatchSummary
	for rows.Next() {
		var b repository.BatchSummary
		if err := rows.Scan(&b.Lote, &b.TotalVendas, &b.PrimeiraData, &b.UltimaData, &b.ReceitaTotal); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// DeleteBatch remove as vendas do lote. O estoque baixado na importação não
// é devolvido.
func (r *SaleRepo) DeleteBatch(lote string) (int, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM vendas WHERE lote_importacao = $1`, lote)
	if err != nil {
		return 0, fmt.Errorf("delete lote: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// ListOrphans devolve as vendas sem produto vinculado.
func (r *SaleRepo) ListOrphans() ([]*entity.Sale, error) {
	query := `
		SELECT id, produto_id, data_venda, quantidade, preco_venda_unitario,
			receita_total, comissao_ml, custo_total, margem_contribuicao,
			COALESCE(origem, ''), COALESCE(numero_venda_ml, ''),
			COALESCE(lote_importacao, ''), COALESCE(estado, ''), COALESCE(ml_status, '')
		FROM vendas
		WHERE produto_id IS NULL
		ORDER BY id`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list órfãs: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.DataVenda, &s.Quantidade, &s.PrecoUnitario,
			&s.ReceitaBruta, &s.Comissao, &s.Custo, &s.Margem,
			&s.Origem, &s.NumeroVendaML, &s.LoteImportacao, &s.Estado, &s.MLStatus); err != nil {
			return nil, fmt.Errorf("scan órfã: %w", err)
		}
		s.ReceitaLiquida = s.ReceitaBruta.Sub(s.Comissao)
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SetProduct revincula a venda a outro produto.
func (r *SaleRepo) SetProduct(saleID, productID int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE vendas SET produto_id = $2 WHERE id = $1`, saleID, productID)
	if err != nil {
		return fmt.Errorf("set produto da venda: %w", err)
	}
	return nil
}
