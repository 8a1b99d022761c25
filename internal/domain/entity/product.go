package entity

import "github.com/shopspring/decimal"

// Product representa um produto (SKU) do catálogo.
// Custo é média ponderada recalculada a cada entrada de estoque; produtos
// criados automaticamente pelo importador de vendas nascem com custo zero e
// ficam marcados até serem revisados ou vinculados a um produto real.
type Product struct {
	ID                    int64
	SKU                   string // único
	Nome                  string
	Custo                 decimal.Decimal // custo unitário (média ponderada)
	PrecoSugerido         decimal.Decimal
	EstoqueInicial        int
	Estoque               int
	CriadoAutomaticamente bool
	VinculadoA            *int64 // produto canônico, quando este é um alias auto-criado
}
