package report

import (
	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

var cem = decimal.NewFromInt(100)

// DashboardUseCase monta os cartões do painel a partir dos agregados de
// venda e dos percentuais de imposto/despesas das configurações.
type DashboardUseCase struct {
	reports  repository.ReportRepository
	settings repository.SettingsRepository
}

// NewDashboardUseCase constrói o caso de uso do painel.
func NewDashboardUseCase(reports repository.ReportRepository, settings repository.SettingsRepository) *DashboardUseCase {
	return &DashboardUseCase{reports: reports, settings: settings}
}

// Get calcula o painel do período (padrão: mês vigente).
// A comissão total não é somada das vendas: é recuperada dos agregados como
// (receita - custo) - margem, nunca negativa.
func (uc *DashboardUseCase) Get(q dto.PeriodQuery) (*dto.DashboardResponse, error) {
	p := ResolvePeriod(q.DataInicio, q.DataFim)

	totais, err := uc.reports.SalesTotals(p.From, p.To)
	if err != nil {
		return nil, err
	}
	totalProdutos, err := uc.reports.ProductCount()
	if err != nil {
		return nil, err
	}
	estoqueTotal, err := uc.reports.StockUnits()
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

	comissao := totais.Receita.Sub(totais.Custo).Sub(totais.Margem)
	if comissao.IsNegative() {
		comissao = decimal.Zero
	}
	imposto := totais.Receita.Mul(impostoPercent).Div(cem)
	despesas := totais.Receita.Mul(despesasPercent).Div(cem)
	lucro := totais.Receita.Sub(totais.Custo).Sub(comissao).Sub(imposto).Sub(despesas)

	margemLiquidaPercent := decimal.Zero
	if totais.Receita.GreaterThan(decimal.Zero) {
		margemLiquidaPercent = lucro.Div(totais.Receita).Mul(cem)
	}

	resp := &dto.DashboardResponse{
		DataInicio:            p.FromStr,
		DataFim:               p.ToStr,
		ReceitaTotal:          totais.Receita,
		ReceitaLiquidaTotal:   totais.Receita.Sub(comissao),
		CustoTotal:            totais.Custo,
		ComissaoTotal:         comissao,
		ImpostoTotal:          imposto,
		DespesasTotal:         despesas,
		LucroLiquidoTotal:     lucro,
		MargemLiquidaPercent:  margemLiquidaPercent,
		TicketMedio:           totais.TicketMedio,
		TotalProdutos:         totalProdutos,
		EstoqueTotal:          estoqueTotal,
		VendasCanceladasQtd:   totais.CanceladasQtd,
		VendasCanceladasValor: totais.CanceladasValor,
	}

	if h, err := uc.reports.BestSeller(p.From, p.To); err == nil && h != nil {
		resp.ProdutoMaisVendido = &dto.HighlightDTO{Nome: h.Nome, Valor: h.Valor}
	} else if err != nil {
		return nil, err
	}
	if h, err := uc.reports.MostProfitable(p.From, p.To); err == nil && h != nil {
		resp.ProdutoMaiorLucro = &dto.HighlightDTO{Nome: h.Nome, Valor: h.Valor}
	} else if err != nil {
		return nil, err
	}
	if h, err := uc.reports.WorstMargin(p.From, p.To); err == nil && h != nil {
		resp.ProdutoPiorMargem = &dto.HighlightDTO{Nome: h.Nome, Valor: h.Valor}
	} else if err != nil {
		return nil, err
	}

	return resp, nil
}
