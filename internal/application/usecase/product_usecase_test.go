package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
)

func newProductUC(tx *fakeTx) *ProductUseCase {
	return NewProductUseCase(tx.products, tx, testLogger())
}

func TestProduct_CreateEGet(t *testing.T) {
	tx := newFakeTx()
	uc := newProductUC(tx)

	resp, err := uc.Create(dto.CreateProductRequest{
		SKU:            "FONE-01",
		Nome:           "Fone BT",
		Custo:          d("20"),
		PrecoSugerido:  d("50"),
		EstoqueInicial: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Estoque, "estoque inicial vira o atual")

	got, err := uc.Get(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "FONE-01", got.SKU)
	assert.True(t, got.Custo.Equal(d("20")))
}

func TestProduct_CreateValidaEntrada(t *testing.T) {
	uc := newProductUC(newFakeTx())

	_, err := uc.Create(dto.CreateProductRequest{SKU: "  ", Nome: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{SKU: "X", Nome: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_UpdateNaoMexeNoCusto(t *testing.T) {
	tx := newFakeTx()
	uc := newProductUC(tx)
	created, err := uc.Create(dto.CreateProductRequest{SKU: "A", Nome: "Antigo", Custo: d("7")})
	require.NoError(t, err)

	nome := "Novo nome"
	preco := d("99")
	resp, err := uc.Update(created.ID, dto.UpdateProductRequest{Nome: &nome, PrecoSugerido: &preco})
	require.NoError(t, err)

	assert.Equal(t, "Novo nome", resp.Nome)
	assert.True(t, resp.PrecoSugerido.Equal(d("99")))
	assert.True(t, resp.Custo.Equal(d("7")), "custo só muda por entrada de estoque")
}

func TestProduct_DeleteBloqueadoComVendas(t *testing.T) {
	tx := newFakeTx()
	uc := newProductUC(tx)
	created, err := uc.Create(dto.CreateProductRequest{SKU: "A", Nome: "A"})
	require.NoError(t, err)
	tx.products.salesCount[created.ID] = 3

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrHasSales)

	// A variante forçada remove e deixa as vendas órfãs.
	require.NoError(t, uc.DeleteWithSales(created.ID))
	assert.Contains(t, tx.products.deleted, created.ID)
}

func TestProduct_DeleteInexistente(t *testing.T) {
	uc := newProductUC(newFakeTx())
	assert.ErrorIs(t, uc.Delete(42), domain.ErrNotFound)
}

func TestProduct_LinkMoveVendasEMarcaVinculo(t *testing.T) {
	tx := newFakeTx()
	uc := newProductUC(tx)

	auto := &entity.Product{Nome: "Mercado Livre - Venda 123", CriadoAutomaticamente: true}
	require.NoError(t, tx.products.Create(auto))
	real, err := uc.Create(dto.CreateProductRequest{SKU: "FONE-01", Nome: "Fone BT"})
	require.NoError(t, err)
	tx.products.salesCount[auto.ID] = 5

	moved, err := uc.Link(auto.ID, real.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, moved)

	vinculado, err := tx.products.GetByID(auto.ID)
	require.NoError(t, err)
	require.NotNil(t, vinculado.VinculadoA)
	assert.Equal(t, real.ID, *vinculado.VinculadoA)
}

func TestProduct_LinkValidacoes(t *testing.T) {
	tx := newFakeTx()
	uc := newProductUC(tx)

	normal, err := uc.Create(dto.CreateProductRequest{SKU: "A", Nome: "A"})
	require.NoError(t, err)
	outro, err := uc.Create(dto.CreateProductRequest{SKU: "B", Nome: "B"})
	require.NoError(t, err)

	_, err = uc.Link(normal.ID, normal.ID)
	assert.ErrorIs(t, err, domain.ErrSelfLink)

	_, err = uc.Link(normal.ID, outro.ID)
	assert.ErrorIs(t, err, domain.ErrNotAutoCreated, "só produto automático pode ser vinculado")

	_, err = uc.Link(99, outro.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_RepairOrphans(t *testing.T) {
	tx := newFakeTx()
	uc := newProductUC(tx)

	tx.sales.orphans = []*entity.Sale{
		{ID: 1, NumeroVendaML: "2000001", Origem: "Mercado Livre", PrecoUnitario: d("45")},
		{ID: 2, NumeroVendaML: "2000001", Origem: "Mercado Livre", PrecoUnitario: d("45")},
		{ID: 3, NumeroVendaML: "2000002", Origem: "Mercado Livre", PrecoUnitario: d("12")},
	}

	resp, err := uc.RepairOrphans(context.Background())
	require.NoError(t, err)

	// Duas vendas do mesmo número compartilham o produto criado.
	assert.Equal(t, 2, resp.ProdutosCriados)
	assert.Equal(t, 3, resp.VendasVinculadas)
	assert.Len(t, tx.sales.linked, 3)

	p, err := tx.products.GetByName("Mercado Livre - Venda 2000001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, p.CriadoAutomaticamente)
	assert.True(t, p.Custo.IsZero())
	assert.True(t, p.PrecoSugerido.Equal(d("45")))
	assert.Equal(t, p.ID, tx.sales.linked[1])
	assert.Equal(t, p.ID, tx.sales.linked[2])
}

func TestProduct_RepairOrphansReusaProdutoExistente(t *testing.T) {
	tx := newFakeTx()
	uc := newProductUC(tx)

	existente := &entity.Product{Nome: "Mercado Livre - Venda 2000001", CriadoAutomaticamente: true}
	require.NoError(t, tx.products.Create(existente))
	tx.sales.orphans = []*entity.Sale{
		{ID: 1, NumeroVendaML: "2000001", Origem: "Mercado Livre"},
	}

	resp, err := uc.RepairOrphans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.ProdutosCriados)
	assert.Equal(t, 1, resp.VendasVinculadas)
	assert.Equal(t, existente.ID, tx.sales.linked[1])
}

func TestProduct_ListAutoFiltra(t *testing.T) {
	tx := newFakeTx()
	uc := newProductUC(tx)

	require.NoError(t, tx.products.Create(&entity.Product{Nome: "Normal", SKU: "N"}))
	require.NoError(t, tx.products.Create(&entity.Product{Nome: "Auto", CriadoAutomaticamente: true}))

	autos, err := uc.ListAuto()
	require.NoError(t, err)
	require.Len(t, autos, 1)
	assert.Equal(t, "Auto", autos[0].Nome)

	todos, err := uc.List()
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
