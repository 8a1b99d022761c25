package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAdjustmentRequest entrada de ajuste manual de estoque.
// CustoUnitario só é considerado em entradas; informado, recalcula a média
// ponderada do produto.
type StockAdjustmentRequest struct {
	ProdutoID     int64            `json:"produto_id" validate:"required"`
	Tipo          string           `json:"tipo" validate:"required,oneof=entrada saida"`
	Quantidade    int              `json:"quantidade" validate:"required,gt=0"`
	CustoUnitario *decimal.Decimal `json:"custo_unitario"`
	Observacao    string           `json:"observacao"`
}

// StockAdjustmentResponse ajuste registrado.
type StockAdjustmentResponse struct {
	ID            int64           `json:"id"`
	ProdutoID     int64           `json:"produto_id"`
	DataAjuste    time.Time       `json:"data_ajuste"`
	Tipo          string          `json:"tipo"`
	Quantidade    int             `json:"quantidade"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	Observacao    string          `json:"observacao,omitempty"`
	// Estado do produto após o ajuste.
	EstoqueAtual int             `json:"estoque_atual"`
	NovoCusto    decimal.Decimal `json:"novo_custo"`
}

// StockAdjustmentHistoryItem lançamento do histórico de ajustes.
type StockAdjustmentHistoryItem struct {
	ID            int64           `json:"id"`
	ProdutoID     int64           `json:"produto_id"`
	DataAjuste    time.Time       `json:"data_ajuste"`
	Tipo          string          `json:"tipo"`
	Quantidade    int             `json:"quantidade"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
	Observacao    string          `json:"observacao,omitempty"`
}
