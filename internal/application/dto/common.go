package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PeriodQuery filtro de período nos relatórios (ISO "2006-01-02").
// Vazios caem no padrão do use case (normalmente o mês vigente).
type PeriodQuery struct {
	DataInicio string `query:"data_inicio"`
	DataFim    string `query:"data_fim"`
}
