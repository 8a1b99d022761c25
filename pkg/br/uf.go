// Package br reúne utilidades de normalização específicas do Brasil usadas
// pelos importadores de planilha: conversão de nomes de estado para sigla (UF)
// e parsing de datas no formato longo do Mercado Livre.
package br

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stateToUF mapeia nomes completos (sem acento, minúsculos) para a sigla.
var stateToUF = map[string]string{
	"acre":                "AC",
	"alagoas":             "AL",
	"amapa":               "AP",
	"amazonas":            "AM",
	"bahia":               "BA",
	"ceara":               "CE",
	"distrito federal":    "DF",
	"espirito santo":      "ES",
	"goias":               "GO",
	"maranhao":            "MA",
	"mato grosso":         "MT",
	"mato grosso do sul":  "MS",
	"minas gerais":        "MG",
	"para":                "PA",
	"paraiba":             "PB",
	"parana":              "PR",
	"pernambuco":          "PE",
	"piaui":               "PI",
	"rio de janeiro":      "RJ",
	"rio grande do norte": "RN",
	"rio grande do sul":   "RS",
	"rondonia":            "RO",
	"roraima":             "RR",
	"santa catarina":      "SC",
	"sao paulo":           "SP",
	"sergipe":             "SE",
	"tocantins":           "TO",
}

var validUF = func() map[string]bool {
	m := make(map[string]bool, len(stateToUF))
	for _, uf := range stateToUF {
		m[uf] = true
	}
	return m
}()

// IsUF informa se s já é uma sigla de estado válida.
func IsUF(s string) bool {
	return validUF[strings.ToUpper(strings.TrimSpace(s))]
}

// stripAccents remove marcas diacríticas (São Paulo -> Sao Paulo).
func stripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeUF converte um nome de estado em texto livre para a sigla de duas
// letras. Aceita siglas já válidas, nomes com ou sem acento e nomes com ordem
// de palavras invertida. Devolve "" quando o valor não é reconhecido; nunca
// ecoa a entrada: quem chama precisa distinguir "não reconhecido" de sigla.
func NormalizeUF(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}

	// Já é sigla?
	if len(s) == 2 && IsUF(s) {
		return strings.ToUpper(s)
	}

	key := strings.ToLower(s)
	if uf, ok := stateToUF[key]; ok {
		return uf
	}

	key = strings.ToLower(stripAccents(key))
	if uf, ok := stateToUF[key]; ok {
		return uf
	}

	// Sufixos de palavras progressivamente mais curtos ("Estado de Sao Paulo").
	parts := strings.Fields(key)
	for i := range parts {
		if uf, ok := stateToUF[strings.Join(parts[i:], " ")]; ok {
			return uf
		}
	}

	// Prefixos, para nomes invertidos ("Sao Paulo - Capital").
	for i := range parts {
		if uf, ok := stateToUF[strings.Join(parts[:i+1], " ")]; ok {
			return uf
		}
	}

	return ""
}

// ufColumnCandidates nomes de coluna que tipicamente carregam o estado do comprador.
var ufColumnCandidates = []string{
	"uf",
	"estado",
	"estado do comprador",
	"estado do cliente",
}

// FindUFColumn procura heuristicamente a coluna de UF/estado entre os headers.
// Primeiro por nome exato (case-insensitive), depois por qualquer header que
// contenha "estado" ou seja "uf". Devolve "" se nenhuma coluna servir.
func FindUFColumn(headers []string) string {
	lower := make(map[string]string, len(headers))
	for _, h := range headers {
		lower[strings.ToLower(strings.TrimSpace(h))] = h
	}
	for _, cand := range ufColumnCandidates {
		if h, ok := lower[cand]; ok {
			return h
		}
	}
	for _, h := range headers {
		hl := strings.ToLower(strings.TrimSpace(h))
		if strings.Contains(hl, "estado") || hl == "uf" {
			return h
		}
	}
	return ""
}
