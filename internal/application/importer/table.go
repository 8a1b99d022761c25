package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row é uma linha da planilha já indexada por header.
type Row map[string]string

// Get devolve o valor da coluna, sem espaços nas bordas.
func (r Row) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// Table é o conteúdo tabular de uma planilha, independente do formato de
// origem. Os importadores só enxergam isso; a leitura do arquivo fica na
// infraestrutura.
type Table struct {
	Headers []string
	Rows    []Row
}

// parseDecimal converte texto em decimal, aceitando vírgula como separador.
// Valores não interpretáveis degradam para zero em vez de abortar a linha.
func parseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseInt converte texto em inteiro, aceitando a serialização dos números de
// célula ("3.0"). Degrada para zero quando não interpretável.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// canonicalExternalID normaliza o id externo: células numéricas viram o
// inteiro em texto ("123456.0" -> "123456"); o resto só perde os espaços.
// A conversão só acontece quando o float64 representa o inteiro exato:
// ids mais longos que 2^53 ficam como texto para não colidir entre si.
func canonicalExternalID(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= 1<<53 {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}

// batchID gera o identificador do lote no formato timestamp usado em toda a
// aplicação.
func batchID() string {
	return time.Now().Format("2006-01-02T15:04:05")
}
