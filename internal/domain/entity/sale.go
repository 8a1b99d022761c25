package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleOriginMercadoLivre origem gravada pelo importador de vendas. O valor
// aparece como prefixo no nome de produtos recriados a partir de vendas órfãs.
const SaleOriginMercadoLivre = "Mercado Livre"

// Sale representa uma venda consolidada. Vendas importadas do Mercado Livre
// carregam o número da venda, o lote de importação e o status original da
// plataforma; vendas canceladas são mantidas com valores zerados para
// auditoria, sem baixa de estoque.
type Sale struct {
	ID             int64
	ProductID      *int64 // nulo quando o produto foi excluído (venda órfã)
	Quantidade     int
	PrecoUnitario  decimal.Decimal
	ReceitaBruta   decimal.Decimal
	Comissao       decimal.Decimal // tarifas e impostos da plataforma
	ReceitaLiquida decimal.Decimal
	Custo          decimal.Decimal // custo unitário x quantidade, congelado na importação
	Margem         decimal.Decimal // receita líquida - custo
	DataVenda      *time.Time
	Origem         string
	NumeroVendaML  string // número da venda no ML; pode repetir entre linhas de pacote
	LoteImportacao string
	Estado         string // UF do comprador, "" quando não identificado
	MLStatus       string
}
