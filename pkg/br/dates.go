package br

import (
	"strconv"
	"strings"
	"time"
)

// mesesPT meses por extenso como aparecem nos exports do Mercado Livre.
var mesesPT = map[string]time.Month{
	"janeiro":   time.January,
	"fevereiro": time.February,
	"março":     time.March,
	"marco":     time.March,
	"abril":     time.April,
	"maio":      time.May,
	"junho":     time.June,
	"julho":     time.July,
	"agosto":    time.August,
	"setembro":  time.September,
	"outubro":   time.October,
	"novembro":  time.November,
	"dezembro":  time.December,
}

// ParseSaleDate interpreta a data de venda do export ML, no formato longo
// "12 de março de 2025 14:35", com fallback para ISO 8601. Devolve nil quando
// o texto não é interpretável (o importador degrada para data nula).
func ParseSaleDate(texto string) *time.Time {
	s := strings.TrimSpace(texto)
	if s == "" {
		return nil
	}

	if t := parseLongPT(s); t != nil {
		return t
	}
	return ParseISO(s)
}

// parseLongPT espera "<dia> de <mês> de <ano> <hh:mm>".
func parseLongPT(s string) *time.Time {
	partes := strings.Fields(s)
	if len(partes) < 6 {
		return nil
	}
	dia, err := strconv.Atoi(partes[0])
	if err != nil {
		return nil
	}
	mes, ok := mesesPT[strings.ToLower(partes[2])]
	if !ok {
		return nil
	}
	ano, err := strconv.Atoi(partes[4])
	if err != nil {
		return nil
	}
	hm := strings.SplitN(partes[5], ":", 2)
	if len(hm) != 2 {
		return nil
	}
	hora, err := strconv.Atoi(hm[0])
	if err != nil {
		return nil
	}
	minuto, err := strconv.Atoi(hm[1])
	if err != nil {
		return nil
	}
	t := time.Date(ano, mes, dia, hora, minuto, 0, 0, time.Local)
	return &t
}

// ParseISO tenta os formatos ISO usuais (com e sem hora, com e sem timezone).
// "Z" é aceito como UTC. Devolve nil se nada casar.
func ParseISO(s string) *time.Time {
	s = strings.TrimSpace(strings.Replace(s, "Z", "+00:00", 1))
	if s == "" {
		return nil
	}
	layouts := []string{
		"2006-01-02T15:04:05-07:00",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, l := range layouts {
		if t, err := time.ParseInLocation(l, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}
