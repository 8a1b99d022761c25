package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost calcula o custo médio ponderado após uma entrada.
// NovoCusto = ((EstoqueAtual * CustoAtual) + (QtdEntrada * CustoEntrada)) / (EstoqueAtual + QtdEntrada)
func WeightedAverageCost(estoqueAtual int, custoAtual decimal.Decimal, qtdEntrada int, custoEntrada decimal.Decimal) decimal.Decimal {
	atual := decimal.NewFromInt(int64(estoqueAtual))
	entrada := decimal.NewFromInt(int64(qtdEntrada))
	soma := atual.Add(entrada)
	if soma.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := atual.Mul(custoAtual).Add(entrada.Mul(custoEntrada))
	return num.Div(soma)
}
