package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

// Parâmetros da cobertura de estoque: média sobre os últimos 30 dias, alerta
// de reposição abaixo de 15 dias de cobertura.
const (
	CoverageWindowDays = 30
	CoverageMinDays    = 15
)

// CoverageUseCase visão de estoque: giro dos últimos 30 dias, dias de
// cobertura e projeção de receita/lucro do estoque parado, estimada a partir
// do histórico de vendas de cada produto.
type CoverageUseCase struct {
	products repository.ProductRepository
	reports  repository.ReportRepository
	settings repository.SettingsRepository
}

// NewCoverageUseCase constrói o caso de uso de cobertura.
func NewCoverageUseCase(
	products repository.ProductRepository,
	reports repository.ReportRepository,
	settings repository.SettingsRepository,
) *CoverageUseCase {
	return &CoverageUseCase{products: products, reports: reports, settings: settings}
}

// Get monta a visão de estoque completa.
func (uc *CoverageUseCase) Get() (*dto.CoverageReportResponse, error) {
	produtos, err := uc.products.List(false)
	if err != nil {
		return nil, err
	}
	janela := time.Now().AddDate(0, 0, -CoverageWindowDays)
	qtdJanela, err := uc.reports.QtyByProductSince(janela)
	if err != nil {
		return nil, err
	}
	historico, err := uc.reports.HistoryByProduct()
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

	histPorProduto := make(map[int64]*repository.ProductProfitAgg, len(historico))
	for _, h := range historico {
		histPorProduto[h.ProductID] = h
	}

	dias := decimal.NewFromInt(CoverageWindowDays)
	resp := &dto.CoverageReportResponse{
		JanelaDias:  CoverageWindowDays,
		DiasMinimos: CoverageMinDays,
	}
	var receitaPotencialTotal decimal.Decimal

	for _, p := range produtos {
		estoque := decimal.NewFromInt(int64(p.Estoque))
		custoEstoque := estoque.Mul(p.Custo)
		mediaDiaria := decimal.NewFromInt(int64(qtdJanela[p.ID])).Div(dias)

		linha := dto.CoverageLineDTO{
			ProdutoID:     p.ID,
			Nome:          p.Nome,
			SKU:           p.SKU,
			EstoqueAtual:  p.Estoque,
			CustoUnitario: p.Custo,
			CustoEstoque:  custoEstoque,
			MediaDiaria:   mediaDiaria,
			MediaMensal:   mediaDiaria.Mul(dias),
		}
		if mediaDiaria.GreaterThan(decimal.Zero) {
			cobertura := estoque.Div(mediaDiaria)
			linha.DiasCobertura = &cobertura
			linha.PrecisaRepor = cobertura.LessThan(decimal.NewFromInt(CoverageMinDays))
		}

		receitaPotencial := decimal.Zero
		if h := histPorProduto[p.ID]; h != nil && h.Qtd > 0 {
			qtd := decimal.NewFromInt(int64(h.Qtd))
			comissao := h.Receita.Sub(h.Custo).Sub(h.MargemAtual)
			if comissao.IsNegative() {
				comissao = decimal.Zero
			}
			imposto := h.Receita.Mul(impostoPercent).Div(cem)
			despesas := h.Receita.Mul(despesasPercent).Div(cem)

			receitaUnit := h.Receita.Div(qtd)
			custoUnit := h.Custo.Div(qtd)
			comissaoUnit := comissao.Div(qtd)
			impostoUnit := imposto.Div(qtd)
			despesasUnit := despesas.Div(qtd)

			receitaPotencial = receitaUnit.Sub(comissaoUnit).Mul(estoque)
			lucroUnit := receitaUnit.Sub(custoUnit).Sub(comissaoUnit).Sub(impostoUnit).Sub(despesasUnit)
			linha.LucroPotencial = lucroUnit.Mul(estoque)

			if custoEstoque.GreaterThan(decimal.Zero) {
				linha.RetornoPercent = linha.LucroPotencial.Div(custoEstoque).Mul(cem)
			}
		}

		resp.TotalUnidades += p.Estoque
		resp.TotalCustoEstoque = resp.TotalCustoEstoque.Add(custoEstoque)
		receitaPotencialTotal = receitaPotencialTotal.Add(receitaPotencial)
		resp.LucroEstimadoTotal = resp.LucroEstimadoTotal.Add(linha.LucroPotencial)
		resp.Produtos = append(resp.Produtos, linha)
	}

	resp.ReceitaPotencialTotal = receitaPotencialTotal
	if resp.TotalCustoEstoque.GreaterThan(decimal.Zero) {
		resp.PercentualLucroTotal = resp.LucroEstimadoTotal.Div(resp.TotalCustoEstoque).Mul(cem)
	}
	return resp, nil
}
