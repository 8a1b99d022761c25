package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ajuste de estoque.
const (
	AdjustEntrada = "entrada"
	AdjustSaida   = "saida"
)

// StockAdjustment registra um movimento manual de estoque. Entradas com custo
// informado recalculam a média ponderada do produto; saídas apenas registram
// o custo vigente no momento.
type StockAdjustment struct {
	ID            int64
	ProductID     int64
	DataAjuste    time.Time
	Tipo          string // entrada, saida
	Quantidade    int
	CustoUnitario decimal.Decimal
	Observacao    string
}
