package sheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/oliveirafjdo-web/Mega/internal/domain"
)

func buildWorkbook(t *testing.T, sheetName string, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheetName != "Sheet1" {
		_, err := f.NewSheet(sheetName)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadTable_PrimeiraAba(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]any{
		{"SKU", "Nome", "Estoque"},
		{"FONE-01", "Fone BT", 10},
		{"CABO-01", "Cabo USB-C", 25},
	})

	table, err := ReadTable(buf, "produtos.xlsx", "", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"SKU", "Nome", "Estoque"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "FONE-01", table.Rows[0].Get("SKU"))
	assert.Equal(t, "10", table.Rows[0].Get("Estoque"))
}

func TestReadTable_CabecalhoDeslocado(t *testing.T) {
	// Export do ML: cinco linhas de preâmbulo antes do cabeçalho.
	rows := [][]any{
		{"Relatório de vendas"}, {}, {"Período: agosto"}, {}, {},
		{"N.º de venda", "SKU", "Unidades"},
		{"2000001", "FONE-01", 2},
	}
	buf := buildWorkbook(t, "Vendas BR", rows)

	table, err := ReadTable(buf, "vendas.xlsx", "Vendas BR", 5)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2000001", table.Rows[0].Get("N.º de venda"))
}

func TestReadTable_AbaAusente(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]any{{"A"}, {"1"}})

	_, err := ReadTable(buf, "vendas.xlsx", "Vendas BR", 0)
	assert.ErrorIs(t, err, domain.ErrMissingSheet)
}

func TestReadTable_ExtensaoNaoSuportada(t *testing.T) {
	_, err := ReadTable(bytes.NewReader(nil), "vendas.pdf", "", 0)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFile)
}

func TestReadTable_PlanilhaVazia(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]any{{"SKU", "Nome"}})

	_, err := ReadTable(buf, "produtos.xlsx", "", 0)
	assert.ErrorIs(t, err, domain.ErrEmptySpreadsheet)
}

func TestReadTable_IgnoraLinhasEmBranco(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]any{
		{"SKU", "Nome"},
		{"", ""},
		{"FONE-01", "Fone BT"},
	})

	table, err := ReadTable(buf, "produtos.xlsx", "", 0)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)
}
