package dto

import "github.com/shopspring/decimal"

// DashboardResponse cartões do painel para o período.
type DashboardResponse struct {
	DataInicio            string          `json:"data_inicio"`
	DataFim               string          `json:"data_fim"`
	ReceitaTotal          decimal.Decimal `json:"receita_total"`
	ReceitaLiquidaTotal   decimal.Decimal `json:"receita_liquida_total"`
	CustoTotal            decimal.Decimal `json:"custo_total"`
	ComissaoTotal         decimal.Decimal `json:"comissao_total"`
	ImpostoTotal          decimal.Decimal `json:"imposto_total"`
	DespesasTotal         decimal.Decimal `json:"despesas_total"`
	LucroLiquidoTotal     decimal.Decimal `json:"lucro_liquido_total"`
	MargemLiquidaPercent  decimal.Decimal `json:"margem_liquida_percent"`
	TicketMedio           decimal.Decimal `json:"ticket_medio"`
	TotalProdutos         int             `json:"total_produtos"`
	EstoqueTotal          int             `json:"estoque_total"`
	VendasCanceladasQtd   int             `json:"vendas_canceladas_qtd"`
	VendasCanceladasValor decimal.Decimal `json:"vendas_canceladas_valor"`
	ProdutoMaisVendido    *HighlightDTO   `json:"produto_mais_vendido,omitempty"`
	ProdutoMaiorLucro     *HighlightDTO   `json:"produto_maior_lucro,omitempty"`
	ProdutoPiorMargem     *HighlightDTO   `json:"produto_pior_margem,omitempty"`
}

// HighlightDTO destaque nome/valor do painel.
type HighlightDTO struct {
	Nome  string          `json:"nome"`
	Valor decimal.Decimal `json:"valor"`
}

// ProfitLineDTO linha do relatório de lucro por produto.
type ProfitLineDTO struct {
	Produto       string          `json:"produto"`
	Qtd           int             `json:"qtd"`
	Receita       decimal.Decimal `json:"receita"`
	Custo         decimal.Decimal `json:"custo"`
	Comissao      decimal.Decimal `json:"comissao"`
	Imposto       decimal.Decimal `json:"imposto"`
	Despesas      decimal.Decimal `json:"despesas"`
	MargemLiquida decimal.Decimal `json:"margem_liquida"`
}

// ProfitReportResponse relatório de lucro com totais.
type ProfitReportResponse struct {
	DataInicio string          `json:"data_inicio"`
	DataFim    string          `json:"data_fim"`
	Linhas     []ProfitLineDTO `json:"linhas"`
	Totais     ProfitLineDTO   `json:"totais"`
}

// CoverageLineDTO linha da visão de estoque por produto.
type CoverageLineDTO struct {
	ProdutoID      int64            `json:"produto_id"`
	Nome           string           `json:"nome"`
	SKU            string           `json:"sku"`
	EstoqueAtual   int              `json:"estoque_atual"`
	CustoUnitario  decimal.Decimal  `json:"custo_unitario"`
	CustoEstoque   decimal.Decimal  `json:"custo_estoque"`
	MediaDiaria    decimal.Decimal  `json:"media_diaria"`
	MediaMensal    decimal.Decimal  `json:"media_mensal"`
	DiasCobertura  *decimal.Decimal `json:"dias_cobertura"` // nulo sem giro na janela
	PrecisaRepor   bool             `json:"precisa_repor"`
	LucroPotencial decimal.Decimal  `json:"lucro_potencial"`
	RetornoPercent decimal.Decimal  `json:"retorno_percent"`
}

// CoverageReportResponse visão de estoque com totais globais.
type CoverageReportResponse struct {
	JanelaDias            int               `json:"janela_dias"`
	DiasMinimos           int               `json:"dias_minimos"`
	Produtos              []CoverageLineDTO `json:"produtos"`
	TotalUnidades         int               `json:"total_unidades"`
	TotalCustoEstoque     decimal.Decimal   `json:"total_custo_estoque"`
	ReceitaPotencialTotal decimal.Decimal   `json:"receita_potencial_total"`
	LucroEstimadoTotal    decimal.Decimal   `json:"lucro_estimado_total"`
	PercentualLucroTotal  decimal.Decimal   `json:"percentual_lucro_total"`
}

// ReconciliationLineDTO comparação diária ML x MP.
type ReconciliationLineDTO struct {
	Dia  string          `json:"dia"` // "2006-01-02"
	ML   decimal.Decimal `json:"ml"`
	MP   decimal.Decimal `json:"mp"`
	Diff decimal.Decimal `json:"diff"`
}

// ReconciliationResponse conciliação do período.
type ReconciliationResponse struct {
	DataInicio     string                  `json:"data_inicio"`
	DataFim        string                  `json:"data_fim"`
	MLLiquida      decimal.Decimal         `json:"ml_liquida"`
	MPLiquida      decimal.Decimal         `json:"mp_liquida"`
	DiferencaTotal decimal.Decimal         `json:"diferenca_total"`
	Linhas         []ReconciliationLineDTO `json:"linhas"`
}
