package sheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/application/importer"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

var _ importer.ReportWriter = (*ReportWriter)(nil)

// ReportWriter grava os artefatos colaterais das importações no diretório de
// uploads: relatório de exceções em XLSX e UFs não reconhecidas em CSV.
type ReportWriter struct {
	dir string
}

// NewReportWriter constrói o writer. Cria o diretório se não existir.
func NewReportWriter(dir string) (*ReportWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("criar diretório de uploads: %w", err)
	}
	return &ReportWriter{dir: dir}, nil
}

// loteFilename troca os ":" do lote por "-" (nome de arquivo válido em
// qualquer sistema).
func loteFilename(lote string) string {
	return strings.ReplaceAll(lote, ":", "-")
}

// WriteSalesExceptions grava a planilha de vendas não importadas e devolve o
// nome do arquivo.
func (w *ReportWriter) WriteSalesExceptions(lote string, rows []importer.ExceptionRow) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []any{"Tipo", "N° da Venda", "Título do Produto", "SKU", "Ação Necessária"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return "", fmt.Errorf("escrever cabeçalho: %w", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{row.Tipo, row.NumeroVenda, row.Titulo, row.SKU, row.Acao}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return "", fmt.Errorf("escrever linha: %w", err)
		}
	}

	name := "vendas_nao_importadas_" + loteFilename(lote) + ".xlsx"
	if err := f.SaveAs(filepath.Join(w.dir, name)); err != nil {
		return "", fmt.Errorf("salvar relatório de exceções: %w", err)
	}
	return name, nil
}

// WriteUFReport grava o CSV de valores de UF não reconhecidos e devolve o
// nome do arquivo.
func (w *ReportWriter) WriteUFReport(prefix, lote string, entries []importer.UFEntry) (string, error) {
	name := prefix + "_" + loteFilename(lote) + ".csv"
	file, err := os.Create(filepath.Join(w.dir, name))
	if err != nil {
		return "", fmt.Errorf("criar CSV de UF: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write([]string{"original", "converted"}); err != nil {
		return "", fmt.Errorf("escrever CSV de UF: %w", err)
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Original, e.Convertido}); err != nil {
			return "", fmt.Errorf("escrever CSV de UF: %w", err)
		}
	}
	cw.Flush()
	return name, cw.Error()
}

// Dir devolve o diretório onde os relatórios são gravados.
func (w *ReportWriter) Dir() string {
	return w.dir
}

// SalesWorkbook monta o export consolidado de vendas (com nome/SKU do
// produto juntados) e devolve o conteúdo XLSX.
func SalesWorkbook(rows []*repository.SaleRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []any{"Data", "Produto", "SKU", "Quantidade", "Preço Unitário",
		"Receita", "Comissão", "Receita Líquida", "Custo", "Margem", "Origem", "N° Venda ML", "UF"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("escrever cabeçalho: %w", err)
	}

	for i, row := range rows {
		s := row.Sale
		data := ""
		if s.DataVenda != nil {
			data = s.DataVenda.Format("2006-01-02")
		}
		values := []any{data, row.ProdutoNome, row.ProdutoSKU, s.Quantidade,
			s.PrecoUnitario.InexactFloat64(), s.ReceitaBruta.InexactFloat64(),
			s.Comissao.InexactFloat64(), s.ReceitaLiquida.InexactFloat64(),
			s.Custo.InexactFloat64(), s.Margem.InexactFloat64(),
			s.Origem, s.NumeroVendaML, s.Estado}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("escrever venda: %w", err)
		}
	}
	return f.WriteToBuffer()
}

// TemplateWorkbook monta o modelo de importação manual de vendas.
func TemplateWorkbook() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	headers := []any{"SKU", "Título", "Quantidade", "Receita", "Comissao", "PrecoMedio"}
	if err := f.SetSheetRow("Sheet1", "A1", &headers); err != nil {
		return nil, fmt.Errorf("escrever cabeçalho: %w", err)
	}
	return f.WriteToBuffer()
}

// ProfitWorkbook monta o relatório de lucro por produto em XLSX, com a linha
// de totais ao final.
func ProfitWorkbook(report *dto.ProfitReportResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []any{"Produto", "Qtd", "Receita", "Custo", "Comissão",
		"Imposto", "Despesas", "Margem Líquida"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("escrever cabeçalho: %w", err)
	}

	writeLine := func(rowIdx int, l dto.ProfitLineDTO) error {
		values := []any{l.Produto, l.Qtd, l.Receita.InexactFloat64(), l.Custo.InexactFloat64(),
			l.Comissao.InexactFloat64(), l.Imposto.InexactFloat64(),
			l.Despesas.InexactFloat64(), l.MargemLiquida.InexactFloat64()}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		return f.SetSheetRow(sheet, cell, &values)
	}

	for i, linha := range report.Linhas {
		if err := writeLine(i+2, linha); err != nil {
			return nil, fmt.Errorf("escrever linha: %w", err)
		}
	}
	totais := report.Totais
	totais.Produto = "TOTAL"
	if err := writeLine(len(report.Linhas)+2, totais); err != nil {
		return nil, fmt.Errorf("escrever totais: %w", err)
	}
	return f.WriteToBuffer()
}
