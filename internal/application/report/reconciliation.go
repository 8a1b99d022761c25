package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

// ReconciliationUseCase compara as duas visões independentes de receita:
// a gerencial do Mercado Livre (bruta - comissão, pela data da venda) e a
// financeira do Mercado Pago (MP_NET, pela data do lançamento).
type ReconciliationUseCase struct {
	reports repository.ReportRepository
	finance repository.FinanceRepository
}

// NewReconciliationUseCase constrói o caso de uso de conciliação.
func NewReconciliationUseCase(reports repository.ReportRepository, finance repository.FinanceRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{reports: reports, finance: finance}
}

// Get monta a conciliação do período (padrão: mês vigente). O agrupamento por
// dia acontece aqui, não no banco; vendas sem data ficam de fora da série.
func (uc *ReconciliationUseCase) Get(q dto.PeriodQuery) (*dto.ReconciliationResponse, error) {
	p := ResolvePeriod(q.DataInicio, q.DataFim)

	vendas, err := uc.reports.SalesNetRows(p.From, p.To)
	if err != nil {
		return nil, err
	}
	lancamentos, err := uc.finance.List(repository.FinanceFilter{
		From: p.From,
		To:   p.To,
		Tipo: entity.FinanceMPNet,
	})
	if err != nil {
		return nil, err
	}

	mlPorDia := make(map[string]decimal.Decimal)
	mlTotal := decimal.Zero
	for _, v := range vendas {
		liquida := v.Receita.Sub(v.Comissao)
		mlTotal = mlTotal.Add(liquida)
		if v.Data == nil {
			continue
		}
		dia := v.Data.Format("2006-01-02")
		mlPorDia[dia] = mlPorDia[dia].Add(liquida)
	}

	mpPorDia := make(map[string]decimal.Decimal)
	mpTotal := decimal.Zero
	for _, l := range lancamentos {
		mpTotal = mpTotal.Add(l.Valor)
		dia := l.Data.Format("2006-01-02")
		mpPorDia[dia] = mpPorDia[dia].Add(l.Valor)
	}

	diasSet := make(map[string]bool, len(mlPorDia)+len(mpPorDia))
	for d := range mlPorDia {
		diasSet[d] = true
	}
	for d := range mpPorDia {
		diasSet[d] = true
	}
	dias := make([]string, 0, len(diasSet))
	for d := range diasSet {
		dias = append(dias, d)
	}
	sort.Strings(dias)

	resp := &dto.ReconciliationResponse{
		DataInicio:     p.FromStr,
		DataFim:        p.ToStr,
		MLLiquida:      mlTotal,
		MPLiquida:      mpTotal,
		DiferencaTotal: mlTotal.Sub(mpTotal),
	}
	for _, d := range dias {
		ml := mlPorDia[d]
		mp := mpPorDia[d]
		resp.Linhas = append(resp.Linhas, dto.ReconciliationLineDTO{
			Dia:  d,
			ML:   ml,
			MP:   mp,
			Diff: ml.Sub(mp),
		})
	}
	return resp, nil
}
