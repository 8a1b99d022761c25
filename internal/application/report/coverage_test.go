package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

func TestCoverage_GiroEProjecao(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{
		{ID: 1, SKU: "FONE-01", Nome: "Fone BT", Custo: d("10"), Estoque: 30},
	}}
	reports := &fakeReportRepo{
		qtdJanela: map[int64]int{1: 60},
		historico: []*repository.ProductProfitAgg{
			{ProductID: 1, Produto: "Fone BT", Qtd: 10, Receita: d("1000"), Custo: d("100"), MargemAtual: d("800")},
		},
	}
	uc := NewCoverageUseCase(products, reports, settingsWith("10", "0"))

	resp, err := uc.Get()
	require.NoError(t, err)
	require.Len(t, resp.Produtos, 1)
	linha := resp.Produtos[0]

	// 60 unidades em 30 dias: média 2/dia, 30 em estoque cobre 15 dias.
	assert.True(t, linha.MediaDiaria.Equal(d("2")))
	assert.True(t, linha.MediaMensal.Equal(d("60")))
	require.NotNil(t, linha.DiasCobertura)
	assert.True(t, linha.DiasCobertura.Equal(d("15")))
	assert.False(t, linha.PrecisaRepor, "15 dias é o limite, não dispara alerta")

	// Unitários do histórico: receita 100, custo 10, comissão 10, imposto 10.
	// Lucro unitário 70 x 30 em estoque = 2100, sobre custo parado de 300.
	assert.True(t, linha.CustoEstoque.Equal(d("300")))
	assert.True(t, linha.LucroPotencial.Equal(d("2100")), "lucro %s", linha.LucroPotencial)
	assert.True(t, linha.RetornoPercent.Equal(d("700")))

	assert.Equal(t, 30, resp.TotalUnidades)
	assert.True(t, resp.TotalCustoEstoque.Equal(d("300")))
	assert.True(t, resp.ReceitaPotencialTotal.Equal(d("2700")))
	assert.True(t, resp.LucroEstimadoTotal.Equal(d("2100")))
	assert.True(t, resp.PercentualLucroTotal.Equal(d("700")))
}

func TestCoverage_AlertaDeReposicao(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{
		{ID: 1, SKU: "CABO-01", Nome: "Cabo USB-C", Custo: d("5"), Estoque: 10},
	}}
	reports := &fakeReportRepo{qtdJanela: map[int64]int{1: 30}}
	uc := NewCoverageUseCase(products, reports, settingsWith("0", "0"))

	resp, err := uc.Get()
	require.NoError(t, err)
	require.Len(t, resp.Produtos, 1)

	linha := resp.Produtos[0]
	require.NotNil(t, linha.DiasCobertura)
	assert.True(t, linha.DiasCobertura.Equal(d("10")))
	assert.True(t, linha.PrecisaRepor)
}

func TestCoverage_SemGiroNaJanela(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{
		{ID: 1, SKU: "PARADO-01", Nome: "Encalhado", Custo: d("8"), Estoque: 50},
	}}
	uc := NewCoverageUseCase(products, &fakeReportRepo{}, settingsWith("0", "0"))

	resp, err := uc.Get()
	require.NoError(t, err)
	require.Len(t, resp.Produtos, 1)

	linha := resp.Produtos[0]
	assert.Nil(t, linha.DiasCobertura, "sem venda na janela não há cobertura")
	assert.False(t, linha.PrecisaRepor)
	assert.True(t, linha.MediaDiaria.IsZero())
	// Sem histórico de venda não há projeção de lucro.
	assert.True(t, linha.LucroPotencial.IsZero())
	assert.True(t, resp.TotalCustoEstoque.Equal(d("400")))
}

func TestCoverage_ProdutoSemHistoricoNaoQuebraTotais(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{
		{ID: 1, SKU: "A", Nome: "Com histórico", Custo: d("10"), Estoque: 10},
		{ID: 2, SKU: "B", Nome: "Sem histórico", Custo: d("3"), Estoque: 5},
	}}
	reports := &fakeReportRepo{
		qtdJanela: map[int64]int{1: 30},
		historico: []*repository.ProductProfitAgg{
			{ProductID: 1, Produto: "Com histórico", Qtd: 5, Receita: d("100"), Custo: d("50"), MargemAtual: d("50")},
		},
	}
	uc := NewCoverageUseCase(products, reports, settingsWith("0", "0"))

	resp, err := uc.Get()
	require.NoError(t, err)
	require.Len(t, resp.Produtos, 2)
	assert.Equal(t, 15, resp.TotalUnidades)
	// Só o produto 1 projeta lucro: unitário (20-10) x 10 em estoque.
	assert.True(t, resp.LucroEstimadoTotal.Equal(d("100")))
}
