package sheet

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/application/importer"
)

func TestWriteSalesExceptions(t *testing.T) {
	w, err := NewReportWriter(t.TempDir())
	require.NoError(t, err)

	name, err := w.WriteSalesExceptions("2026-08-28T10:00:00", []importer.ExceptionRow{
		{Tipo: "sem_produto", NumeroVenda: "2000001", Titulo: "Fone BT", SKU: "FONE-01", Acao: "Cadastrar produto"},
	})
	require.NoError(t, err)
	assert.Equal(t, "vendas_nao_importadas_2026-08-28T10-00-00.xlsx", name, "dois-pontos não entram em nome de arquivo")

	f, err := excelize.OpenFile(filepath.Join(w.Dir(), name))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Tipo", "N° da Venda", "Título do Produto", "SKU", "Ação Necessária"}, rows[0])
	assert.Equal(t, "2000001", rows[1][1])
}

func TestWriteUFReport(t *testing.T) {
	w, err := NewReportWriter(t.TempDir())
	require.NoError(t, err)

	name, err := w.WriteUFReport("uf_not_recognized_vendas", "2026-08-28T10:00:00", []importer.UFEntry{
		{Original: "Buenos Aires", Convertido: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "uf_not_recognized_vendas_2026-08-28T10-00-00.csv", name)

	file, err := os.Open(filepath.Join(w.Dir(), name))
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"original", "converted"}, records[0])
	assert.Equal(t, []string{"Buenos Aires", ""}, records[1])
}

func TestProfitWorkbook(t *testing.T) {
	report := &dto.ProfitReportResponse{
		Linhas: []dto.ProfitLineDTO{
			{Produto: "Fone BT", Qtd: 4, Receita: decimal.RequireFromString("1000"),
				MargemLiquida: decimal.RequireFromString("450")},
		},
		Totais: dto.ProfitLineDTO{Qtd: 4, Receita: decimal.RequireFromString("1000")},
	}

	buf, err := ProfitWorkbook(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Fone BT", rows[1][0])
	assert.Equal(t, "TOTAL", rows[2][0], "última linha é a de totais")
}

func TestTemplateWorkbook(t *testing.T) {
	buf, err := TemplateWorkbook()
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"SKU", "Título", "Quantidade", "Receita", "Comissao", "PrecoMedio"}, rows[0])
}
