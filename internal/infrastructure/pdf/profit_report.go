// Package pdf gera o relatório de lucro por produto em PDF (Maroto v2).
//
// Layout da página A4:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: título + período                                    │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABELA: Produto | Qtd | Receita | Custo | Comissão |        │
//	│          Imposto | Despesas | Margem Líquida                 │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TOTAIS                                                      │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ProfitReportGenerator gera o PDF do relatório de lucro usando Maroto v2.
type ProfitReportGenerator struct{}

// NewProfitReportGenerator constrói o gerador.
func NewProfitReportGenerator() *ProfitReportGenerator { return &ProfitReportGenerator{} }

// Generate monta o PDF e devolve os bytes.
func (g *ProfitReportGenerator) Generate(report *dto.ProfitReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Lucro por Produto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(report.Linhas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Totais))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (esq) e período (dir).
func headerRow(report *dto.ProfitReportResponse) core.Row {
	periodo := report.DataInicio + " a " + report.DataFim
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Relatório de Lucro por Produto", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Período", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{
				Size: 9, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de produtos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 3, align.Left),
		h("Qtd", 1, align.Center),
		h("Receita", 2, align.Right),
		h("Custo", 1, align.Right),
		h("Comissão", 1, align.Right),
		h("Imposto", 1, align.Right),
		h("Despesas", 1, align.Right),
		h("Margem Líq.", 2, align.Right),
	)
}

// tableLineRows: uma linha por produto.
func tableLineRows(linhas []dto.ProfitLineDTO) []core.Row {
	num := func(s string, size int) core.Col {
		return col.New(size).Add(text.New("R$ "+s, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		}))
	}

	result := make([]core.Row, 0, len(linhas))
	for _, l := range linhas {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(l.Produto, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", l.Qtd), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			num(l.Receita.StringFixed(2), 2),
			num(l.Custo.StringFixed(2), 1),
			num(l.Comissao.StringFixed(2), 1),
			num(l.Imposto.StringFixed(2), 1),
			num(l.Despesas.StringFixed(2), 1),
			num(l.MargemLiquida.StringFixed(2), 2),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(totais dto.ProfitLineDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Receita total:"),
			label("Custo total:"),
			grandLabel("MARGEM LÍQUIDA:"),
		),
		col.New(3).Add(
			value("R$ "+totais.Receita.StringFixed(2)),
			value("R$ "+totais.Custo.StringFixed(2)),
			grandValue("R$ "+totais.MargemLiquida.StringFixed(2)),
		),
		col.New(3),
	)
}
