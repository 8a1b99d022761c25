package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
)

// SaleRow é uma venda com os dados do produto já juntados (para listagens e
// exportações). Produto pode estar vazio quando a venda ficou órfã.
type SaleRow struct {
	Sale        entity.Sale
	ProdutoNome string
	ProdutoSKU  string
}

// SaleFilter restringe listagens de vendas. Campos nulos/vazios não filtram.
type SaleFilter struct {
	From *time.Time
	To   *time.Time
	Lote string
}

// BatchSummary agrega um lote de importação de vendas.
type BatchSummary struct {
	Lote         string
	TotalVendas  int
	PrimeiraData *time.Time
	UltimaData   *time.Time
	ReceitaTotal decimal.Decimal
}

// SaleRepository define a porta de persistência para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	List(filter SaleFilter) ([]*SaleRow, error)
	// ListBatches agrupa as vendas por lote de importação, mais recente primeiro.
	ListBatches() ([]*BatchSummary, error)
	// DeleteBatch remove todas as vendas do lote e devolve quantas saíram.
	DeleteBatch(lote string) (int, error)
	// ListOrphans devolve vendas sem produto vinculado.
	ListOrphans() ([]*entity.Sale, error)
	// SetProduct revincula uma venda a outro produto.
	SetProduct(saleID, productID int64) error
}
