package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinanceEntryRequest lançamento manual no razão: devolução, retirada,
// ajuste ou saldo inicial. Valor sempre positivo; o sinal é resolvido pelo
// tipo da ação.
type FinanceEntryRequest struct {
	Acao      string          `json:"acao" validate:"required,oneof=saldo_inicial devolucao retirada ajuste"`
	Valor     decimal.Decimal `json:"valor"`
	Data      string          `json:"data"` // ISO "2006-01-02"; vazio usa hoje
	Descricao string          `json:"descricao"`
}

// OpeningBalanceRequest define o saldo anterior manual de um período.
type OpeningBalanceRequest struct {
	Valor      decimal.Decimal `json:"valor"`
	DataInicio string          `json:"data_inicio" validate:"required"`
}

// FinanceTransactionResponse lançamento do razão.
type FinanceTransactionResponse struct {
	ID           int64           `json:"id"`
	Data         time.Time       `json:"data"`
	Tipo         string          `json:"tipo"`
	Valor        decimal.Decimal `json:"valor"`
	Fonte        string          `json:"fonte"`
	ExternalIDMP string          `json:"external_id_mp,omitempty"`
	Descricao    string          `json:"descricao,omitempty"`
	Lote         string          `json:"lote,omitempty"`
}

// FinanceViewResponse visão do caixa no período: saldo anterior, somatórios
// por tipo e extrato.
type FinanceViewResponse struct {
	DataInicio    string                       `json:"data_inicio"`
	DataFim       string                       `json:"data_fim"`
	SaldoAnterior decimal.Decimal              `json:"saldo_anterior"`
	EntradasMP    decimal.Decimal              `json:"entradas_mp"`
	Devolucoes    decimal.Decimal              `json:"devolucoes"`
	Retiradas     decimal.Decimal              `json:"retiradas"`
	Ajustes       decimal.Decimal              `json:"ajustes"`
	SaldoPeriodo  decimal.Decimal              `json:"saldo_periodo"`
	SaldoAtual    decimal.Decimal              `json:"saldo_atual"`
	Transacoes    []FinanceTransactionResponse `json:"transacoes"`
	LotesMP       []FinanceBatchResponse       `json:"lotes_mp"`
}

// FinanceBatchResponse lote de importação do Mercado Pago.
type FinanceBatchResponse struct {
	Lote         string     `json:"lote"`
	Quantidade   int        `json:"quantidade"`
	PrimeiraData *time.Time `json:"primeira_data"`
	UltimaData   *time.Time `json:"ultima_data"`
}
