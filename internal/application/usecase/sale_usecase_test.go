package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

func TestSale_ListComTotais(t *testing.T) {
	d10 := time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local)
	sales := newFakeSales()
	sales.rows = []*repository.SaleRow{
		{Sale: entity.Sale{ID: 1, ReceitaBruta: d("100"), Margem: d("40"), DataVenda: &d10}, ProdutoNome: "Fone BT", ProdutoSKU: "FONE-01"},
		{Sale: entity.Sale{ID: 2, ReceitaBruta: d("0"), Margem: d("0"), DataVenda: &d10, MLStatus: "Cancelada"}},
	}
	uc := NewSaleUseCase(sales, testLogger())

	resp, err := uc.List("", "", "")
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	assert.False(t, resp.Items[0].Cancelada)
	assert.Equal(t, "Fone BT", resp.Items[0].ProdutoNome)
	assert.True(t, resp.Items[1].Cancelada, "receita zero marca cancelada")

	// Cancelada fica fora dos totais.
	assert.True(t, resp.ReceitaTotal.Equal(d("100")))
	assert.True(t, resp.MargemTotal.Equal(d("40")))
}

func TestSale_ListFiltraPorPeriodo(t *testing.T) {
	d05 := time.Date(2026, 8, 5, 0, 0, 0, 0, time.Local)
	d20 := time.Date(2026, 8, 20, 0, 0, 0, 0, time.Local)
	sales := newFakeSales()
	sales.rows = []*repository.SaleRow{
		{Sale: entity.Sale{ID: 1, ReceitaBruta: d("10"), DataVenda: &d05}},
		{Sale: entity.Sale{ID: 2, ReceitaBruta: d("20"), DataVenda: &d20}},
	}
	uc := NewSaleUseCase(sales, testLogger())

	resp, err := uc.List("2026-08-10", "2026-08-31", "")
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2), resp.Items[0].ID)
}

func TestSale_ExportDevolveLinhasDoFiltro(t *testing.T) {
	d05 := time.Date(2026, 8, 5, 0, 0, 0, 0, time.Local)
	d20 := time.Date(2026, 8, 20, 0, 0, 0, 0, time.Local)
	sales := newFakeSales()
	sales.rows = []*repository.SaleRow{
		{Sale: entity.Sale{ID: 1, ReceitaBruta: d("10"), DataVenda: &d05}, ProdutoSKU: "A-1"},
		{Sale: entity.Sale{ID: 2, ReceitaBruta: d("20"), DataVenda: &d20}, ProdutoSKU: "B-2"},
	}
	uc := NewSaleUseCase(sales, testLogger())

	rows, err := uc.Export("2026-08-01", "2026-08-10", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A-1", rows[0].ProdutoSKU)
}

func TestSale_ListBatches(t *testing.T) {
	sales := newFakeSales()
	sales.batches = []*repository.BatchSummary{
		{Lote: "2026-08-28T10:00:00", TotalVendas: 12, ReceitaTotal: d("350")},
	}
	uc := NewSaleUseCase(sales, testLogger())

	lotes, err := uc.ListBatches()
	require.NoError(t, err)
	require.Len(t, lotes, 1)
	assert.Equal(t, 12, lotes[0].TotalVendas)
	assert.True(t, lotes[0].ReceitaTotal.Equal(d("350")))
}

func TestSale_DeleteBatch(t *testing.T) {
	sales := newFakeSales()
	sales.deletedCount = 7
	uc := NewSaleUseCase(sales, testLogger())

	n, err := uc.DeleteBatch("2026-08-28T10:00:00")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, "2026-08-28T10:00:00", sales.deletedBatch)
}
