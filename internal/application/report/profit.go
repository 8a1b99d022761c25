package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

// ProfitUseCase relatório de lucro por produto.
// Margem líquida = receita - custo - comissão - imposto - despesas, onde a
// comissão é recuperada dos agregados como (receita - custo) - margem.
type ProfitUseCase struct {
	reports  repository.ReportRepository
	settings repository.SettingsRepository
}

// NewProfitUseCase constrói o caso de uso do relatório de lucro.
func NewProfitUseCase(reports repository.ReportRepository, settings repository.SettingsRepository) *ProfitUseCase {
	return &ProfitUseCase{reports: reports, settings: settings}
}

// Get monta o relatório do período, ordenado do maior lucro líquido para o
// menor, com a linha de totais.
func (uc *ProfitUseCase) Get(q dto.PeriodQuery) (*dto.ProfitReportResponse, error) {
	p := ResolvePeriod(q.DataInicio, q.DataFim)

	aggs, err := uc.reports.ProfitByProduct(p.From, p.To)
	if err != nil {
		return nil, err
	}
	cfg, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}

	impostoPercent := decimal.Zero
	despesasPercent := decimal.Zero
	if cfg != nil {
		impostoPercent = cfg.ImpostoPercent
		despesasPercent = cfg.DespesasPercent
	}

	resp := &dto.ProfitReportResponse{DataInicio: p.FromStr, DataFim: p.ToStr}
	for _, agg := range aggs {
		linha := buildProfitLine(agg, impostoPercent, despesasPercent)
		resp.Linhas = append(resp.Linhas, linha)

		resp.Totais.Qtd += linha.Qtd
		resp.Totais.Receita = resp.Totais.Receita.Add(linha.Receita)
		resp.Totais.Custo = resp.Totais.Custo.Add(linha.Custo)
		resp.Totais.Comissao = resp.Totais.Comissao.Add(linha.Comissao)
		resp.Totais.Imposto = resp.Totais.Imposto.Add(linha.Imposto)
		resp.Totais.Despesas = resp.Totais.Despesas.Add(linha.Despesas)
		resp.Totais.MargemLiquida = resp.Totais.MargemLiquida.Add(linha.MargemLiquida)
	}

	sort.SliceStable(resp.Linhas, func(i, j int) bool {
		return resp.Linhas[i].MargemLiquida.GreaterThan(resp.Linhas[j].MargemLiquida)
	})
	return resp, nil
}

func buildProfitLine(agg *repository.ProductProfitAgg, impostoPercent, despesasPercent decimal.Decimal) dto.ProfitLineDTO {
	comissao := agg.Receita.Sub(agg.Custo).Sub(agg.MargemAtual)
	if comissao.IsNegative() {
		comissao = decimal.Zero
	}
	imposto := agg.Receita.Mul(impostoPercent).Div(cem)
	despesas := agg.Receita.Mul(despesasPercent).Div(cem)
	margemLiquida := agg.Receita.Sub(agg.Custo).Sub(comissao).Sub(imposto).Sub(despesas)

	return dto.ProfitLineDTO{
		Produto:       agg.Produto,
		Qtd:           agg.Qtd,
		Receita:       agg.Receita,
		Custo:         agg.Custo,
		Comissao:      comissao,
		Imposto:       imposto,
		Despesas:      despesas,
		MargemLiquida: margemLiquida,
	}
}
