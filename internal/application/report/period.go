package report

import "time"

// Period período resolvido de um filtro de relatório.
type Period struct {
	From *time.Time
	To   *time.Time
	// Strings ISO ecoadas na resposta (preenchidas também quando o período
	// caiu no padrão).
	FromStr string
	ToStr   string
}

// ResolvePeriod interpreta o filtro "2006-01-02". Sem nenhum dos dois, o
// padrão é o mês vigente (dia 1 até hoje). Datas não interpretáveis contam
// como ausentes. O fim do período é inclusivo (vai até 23:59:59).
func ResolvePeriod(dataInicio, dataFim string) Period {
	if dataInicio == "" && dataFim == "" {
		hoje := time.Now()
		inicioMes := time.Date(hoje.Year(), hoje.Month(), 1, 0, 0, 0, 0, time.Local)
		dataInicio = inicioMes.Format("2006-01-02")
		dataFim = hoje.Format("2006-01-02")
	}

	p := Period{FromStr: dataInicio, ToStr: dataFim}
	if t, err := time.ParseInLocation("2006-01-02", dataInicio, time.Local); err == nil {
		p.From = &t
	}
	if t, err := time.ParseInLocation("2006-01-02", dataFim, time.Local); err == nil {
		fim := t.Add(24*time.Hour - time.Second)
		p.To = &fim
	}
	return p
}
