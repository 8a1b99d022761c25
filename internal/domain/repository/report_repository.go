package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesTotals resultado cru dos totais do período. Vendas canceladas
// (receita_total <= 0) ficam fora dos somatórios e entram só nos campos
// Canceladas*.
type SalesTotals struct {
	Receita         decimal.Decimal
	Custo           decimal.Decimal
	Margem          decimal.Decimal
	TicketMedio     decimal.Decimal
	CanceladasQtd   int
	CanceladasValor decimal.Decimal // preço unitário x quantidade das canceladas
}

// ProductHighlight par nome/valor para os destaques do painel.
type ProductHighlight struct {
	Nome  string
	Valor decimal.Decimal
}

// ProductProfitAgg agregado de vendas por produto (sem canceladas).
// MargemAtual é a soma de margem_contribuicao; o use case deriva comissão,
// imposto e despesas a partir dela.
type ProductProfitAgg struct {
	ProductID   int64
	Produto     string
	Qtd         int
	Receita     decimal.Decimal
	Custo       decimal.Decimal
	MargemAtual decimal.Decimal
}

// SaleNetRow linha crua para a conciliação: data da venda e valores brutos.
// O agrupamento por dia é feito no use case.
type SaleNetRow struct {
	Data     *time.Time
	Receita  decimal.Decimal
	Comissao decimal.Decimal
}

// ReportRepository define as consultas read-only de relatório.
type ReportRepository interface {
	// SalesTotals agrega as vendas do período (from/to nulos não filtram).
	SalesTotals(from, to *time.Time) (*SalesTotals, error)
	// ProductCount e StockUnits alimentam os cartões do painel.
	ProductCount() (int, error)
	StockUnits() (int, error)
	// Highlights do painel: mais vendido, maior lucro e pior margem do período.
	BestSeller(from, to *time.Time) (*ProductHighlight, error)
	MostProfitable(from, to *time.Time) (*ProductHighlight, error)
	WorstMargin(from, to *time.Time) (*ProductHighlight, error)
	// ProfitByProduct agrega receita/custo/margem por produto no período.
	ProfitByProduct(from, to *time.Time) ([]*ProductProfitAgg, error)
	// QtyByProductSince soma quantidades vendidas por produto desde o instante
	// (janela da cobertura de estoque).
	QtyByProductSince(since time.Time) (map[int64]int, error)
	// HistoryByProduct agrega todo o histórico de vendas por produto.
	HistoryByProduct() ([]*ProductProfitAgg, error)
	// SalesNetRows devolve as linhas cruas para a conciliação ML x MP.
	SalesNetRows(from, to *time.Time) ([]*SaleNetRow, error)
}
