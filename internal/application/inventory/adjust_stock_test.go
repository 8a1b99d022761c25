package inventory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
	"github.com/oliveirafjdo-web/Mega/pkg/logger"
)

type fakeStockTx struct {
	produto *entity.Product
	ajustes []*entity.StockAdjustment
}

func (f *fakeStockTx) RunStock(_ context.Context, fn func(
	products repository.ProductRepository,
	adjustments repository.AdjustmentRepository,
) error) error {
	return fn(&fakeStockProducts{f}, &fakeStockAdjustments{f})
}

type fakeStockProducts struct{ tx *fakeStockTx }

func (r *fakeStockProducts) Create(*entity.Product) error { return nil }
func (r *fakeStockProducts) GetByID(id int64) (*entity.Product, error) {
	if r.tx.produto != nil && r.tx.produto.ID == id {
		cp := *r.tx.produto
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeStockProducts) GetBySKU(string) (*entity.Product, error)  { return nil, nil }
func (r *fakeStockProducts) GetByName(string) (*entity.Product, error) { return nil, nil }
func (r *fakeStockProducts) Update(p *entity.Product) error {
	cp := *p
	r.tx.produto = &cp
	return nil
}
func (r *fakeStockProducts) AddStock(int64, int) error            { return nil }
func (r *fakeStockProducts) List(bool) ([]*entity.Product, error) { return nil, nil }
func (r *fakeStockProducts) Delete(int64) error                   { return nil }
func (r *fakeStockProducts) CountSales(int64) (int, error)        { return 0, nil }
func (r *fakeStockProducts) Relink(int64, int64) (int, error)     { return 0, nil }

type fakeStockAdjustments struct{ tx *fakeStockTx }

func (r *fakeStockAdjustments) Create(adj *entity.StockAdjustment) error {
	adj.ID = int64(len(r.tx.ajustes) + 1)
	cp := *adj
	r.tx.ajustes = append(r.tx.ajustes, &cp)
	return nil
}
func (r *fakeStockAdjustments) ListByProduct(int64) ([]*entity.StockAdjustment, error) {
	return nil, nil
}
func (r *fakeStockAdjustments) ListRecent(int) ([]*entity.StockAdjustment, error) {
	return nil, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newStockUseCase(p *entity.Product) (*UseCase, *fakeStockTx) {
	tx := &fakeStockTx{produto: p}
	return NewUseCase(tx, logger.New(logger.Config{Env: "production", Level: "error"})), tx
}

func TestAdjust_EntradaRecalculaMediaPonderada(t *testing.T) {
	uc, tx := newStockUseCase(&entity.Product{ID: 1, Estoque: 10, Custo: d("2.00")})

	custo := d("4.00")
	resp, err := uc.Adjust(context.Background(), dto.StockAdjustmentRequest{
		ProdutoID: 1, Tipo: "entrada", Quantidade: 10, CustoUnitario: &custo,
	})
	require.NoError(t, err)

	assert.Equal(t, 20, resp.EstoqueAtual)
	assert.True(t, resp.NovoCusto.Equal(d("3.00")), "novo custo %s", resp.NovoCusto)
	assert.True(t, tx.produto.Custo.Equal(d("3.00")))
	require.Len(t, tx.ajustes, 1)
	assert.True(t, tx.ajustes[0].CustoUnitario.Equal(d("4.00")), "registro guarda o custo da entrada")
}

func TestAdjust_EntradaSemCustoNaoMudaCusto(t *testing.T) {
	uc, tx := newStockUseCase(&entity.Product{ID: 1, Estoque: 5, Custo: d("2.00")})

	resp, err := uc.Adjust(context.Background(), dto.StockAdjustmentRequest{
		ProdutoID: 1, Tipo: "entrada", Quantidade: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, resp.EstoqueAtual)
	assert.True(t, tx.produto.Custo.Equal(d("2.00")))
}

func TestAdjust_SaidaRegistraCustoVigente(t *testing.T) {
	uc, tx := newStockUseCase(&entity.Product{ID: 1, Estoque: 10, Custo: d("2.50")})

	resp, err := uc.Adjust(context.Background(), dto.StockAdjustmentRequest{
		ProdutoID: 1, Tipo: "saida", Quantidade: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, resp.EstoqueAtual)
	assert.True(t, tx.produto.Custo.Equal(d("2.50")), "saída não muda o custo")
	require.Len(t, tx.ajustes, 1)
	assert.True(t, tx.ajustes[0].CustoUnitario.Equal(d("2.50")))
}

func TestAdjust_Validacao(t *testing.T) {
	uc, _ := newStockUseCase(&entity.Product{ID: 1})

	_, err := uc.Adjust(context.Background(), dto.StockAdjustmentRequest{
		ProdutoID: 1, Tipo: "transferencia", Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), dto.StockAdjustmentRequest{
		ProdutoID: 1, Tipo: "entrada", Quantidade: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Adjust(context.Background(), dto.StockAdjustmentRequest{
		ProdutoID: 99, Tipo: "entrada", Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
