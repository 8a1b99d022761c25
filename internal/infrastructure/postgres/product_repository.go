package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oliveirafjdo-web/Mega/internal/domain"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, nome, COALESCE(sku, ''), custo_unitario, preco_venda_sugerido,
	estoque_inicial, estoque_atual, criado_automaticamente, vinculado_a`

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de produtos. Aceita pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um produto novo. SKU vazio vira NULL (produtos automáticos
// não têm SKU e a coluna é única).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO produtos (nome, sku, custo_unitario, preco_venda_sugerido,
			estoque_inicial, estoque_atual, criado_automaticamente, vinculado_a)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Nome, product.SKU, product.Custo, product.PrecoSugerido,
		product.EstoqueInicial, product.Estoque, product.CriadoAutomaticamente, product.VinculadoA,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

func (r *ProductRepo) getOne(query string, args ...any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.Nome, &p.SKU, &p.Custo, &p.PrecoSugerido,
		&p.EstoqueInicial, &p.Estoque, &p.CriadoAutomaticamente, &p.VinculadoA,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// GetByID busca um produto por id.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM produtos WHERE id = $1`, id)
}

// GetBySKU busca um produto pelo SKU.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM produtos WHERE sku = $1`, sku)
}

// GetByName busca um produto pelo nome exato.
func (r *ProductRepo) GetByName(nome string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM produtos WHERE nome = $1 LIMIT 1`, nome)
}

// Update grava os campos mutáveis do produto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE produtos SET nome = $2, sku = NULLIF($3, ''), custo_unitario = $4,
			preco_venda_sugerido = $5, estoque_atual = $6,
			criado_automaticamente = $7, vinculado_a = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Nome, product.SKU, product.Custo,
		product.PrecoSugerido, product.Estoque, product.CriadoAutomaticamente, product.VinculadoA,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// AddStock soma delta ao estoque atual (delta negativo deduz).
func (r *ProductRepo) AddStock(productID int64, delta int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET estoque_atual = estoque_atual + $2 WHERE id = $1`, productID, delta)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	return nil
}

// List devolve o catálogo ordenado por nome; onlyAuto restringe aos
// produtos criados automaticamente.
func (r *ProductRepo) List(onlyAuto bool) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos`
	if onlyAuto {
		query += ` WHERE criado_automaticamente`
	}
	query += ` ORDER BY nome`

	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Nome, &p.SKU, &p.Custo, &p.PrecoSugerido,
			&p.EstoqueInicial, &p.Estoque, &p.CriadoAutomaticamente, &p.VinculadoA); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete remove um produto. As vendas que o referenciam ficam órfãs
// (FK com ON DELETE SET NULL).
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

// CountSales conta as vendas vinculadas ao produto.
func (r *ProductRepo) CountSales(productID int64) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM vendas WHERE produto_id = $1`, productID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count vendas: %w", err)
	}
	return n, nil
}

// Relink move as vendas de um produto para outro e devolve quantas migraram.
func (r *ProductRepo) Relink(fromID, toID int64) (int, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE vendas SET produto_id = $2 WHERE produto_id = $1`, fromID, toID)
	if err != nil {
		return 0, fmt.Errorf("relink vendas: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}
