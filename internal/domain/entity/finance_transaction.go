package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento do razão financeiro.
const (
	FinanceOpeningBalance = "OPENING_BALANCE"
	FinanceMPNet          = "MP_NET"     // liquidação líquida do Mercado Pago
	FinanceRefund         = "REFUND"     // estorno/chargeback, sempre negativo
	FinanceWithdrawal     = "WITHDRAWAL" // retirada/saque, sempre negativo
	FinanceAdjustment     = "ADJUSTMENT" // lançamento manual livre
)

// Fontes de lançamento.
const (
	FinanceSourceMercadoPago = "mercado_pago"
	FinanceSourceManual      = "manual"
)

// FinanceTransaction é um lançamento do razão de caixa. Lançamentos vindos do
// relatório de liquidações do Mercado Pago carregam ExternalIDMP, que é a
// chave de idempotência entre reimportações; lançamentos MP_NET criados pelo
// importador de vendas usam o número da venda ML como id externo.
type FinanceTransaction struct {
	ID             int64
	Tipo           string
	Valor          decimal.Decimal // sinal já resolvido conforme o tipo
	Data           time.Time
	Descricao      string
	Fonte          string
	ExternalIDMP   *string
	LoteImportacao string
	CreatedAt      time.Time
}
