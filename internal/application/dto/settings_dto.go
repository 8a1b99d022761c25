package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest atualização dos parâmetros globais. Ponteiros nulos
// mantêm o valor atual.
type UpdateSettingsRequest struct {
	ImpostoPercent  *decimal.Decimal `json:"imposto_percent"`
	DespesasPercent *decimal.Decimal `json:"despesas_percent"`
	MLClientID      *string          `json:"ml_client_id"`
	MLClientSecret  *string          `json:"ml_client_secret"`
	MLAccessToken   *string          `json:"ml_access_token"`
	MLRefreshToken  *string          `json:"ml_refresh_token"`
	MLSyncAuto      *bool            `json:"ml_sync_auto"`
}

// SettingsResponse parâmetros globais. O client secret e os tokens nunca
// voltam na resposta, só um indicador de presença.
type SettingsResponse struct {
	ImpostoPercent  decimal.Decimal `json:"imposto_percent"`
	DespesasPercent decimal.Decimal `json:"despesas_percent"`
	MLClientID      string          `json:"ml_client_id,omitempty"`
	MLCredenciaisOK bool            `json:"ml_credenciais_ok"`
	MLSyncAuto      bool            `json:"ml_sync_auto"`
	MLUltimoSync    string          `json:"ml_ultimo_sync,omitempty"`
}
