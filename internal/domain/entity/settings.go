package entity

import "github.com/shopspring/decimal"

// Settings guarda os parâmetros financeiros globais (linha única, id=1).
// Percentuais em pontos percentuais: 8.5 significa 8,5%. As credenciais do
// Mercado Livre são apenas armazenadas; nenhuma chamada à API é feita aqui.
type Settings struct {
	ID              int64
	ImpostoPercent  decimal.Decimal // imposto sobre receita bruta
	DespesasPercent decimal.Decimal // despesas operacionais sobre receita bruta
	MLClientID      string
	MLClientSecret  string
	MLAccessToken   string
	MLRefreshToken  string
	MLTokenExpira   string
	MLUserID        string
	MLSyncAuto      bool
	MLUltimoSync    string
}
