package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleResponse venda com os dados do produto juntados.
type SaleResponse struct {
	ID             int64           `json:"id"`
	ProdutoID      *int64          `json:"produto_id"`
	ProdutoNome    string          `json:"produto_nome"`
	ProdutoSKU     string          `json:"produto_sku"`
	DataVenda      *time.Time      `json:"data_venda"`
	Quantidade     int             `json:"quantidade"`
	PrecoUnitario  decimal.Decimal `json:"preco_unitario"`
	ReceitaBruta   decimal.Decimal `json:"receita_bruta"`
	Comissao       decimal.Decimal `json:"comissao"`
	ReceitaLiquida decimal.Decimal `json:"receita_liquida"`
	Custo          decimal.Decimal `json:"custo"`
	Margem         decimal.Decimal `json:"margem"`
	Origem         string          `json:"origem"`
	NumeroVendaML  string          `json:"numero_venda_ml,omitempty"`
	Lote           string          `json:"lote,omitempty"`
	Estado         string          `json:"estado,omitempty"`
	Cancelada      bool            `json:"cancelada"`
}

// SaleListResponse listagem de vendas com totais do filtro aplicado.
type SaleListResponse struct {
	Items        []SaleResponse  `json:"items"`
	ReceitaTotal decimal.Decimal `json:"receita_total"`
	MargemTotal  decimal.Decimal `json:"margem_total"`
}

// BatchResponse lote de importação de vendas.
type BatchResponse struct {
	Lote         string          `json:"lote"`
	TotalVendas  int             `json:"total_vendas"`
	PrimeiraData *time.Time      `json:"primeira_data"`
	UltimaData   *time.Time      `json:"ultima_data"`
	ReceitaTotal decimal.Decimal `json:"receita_total"`
}
