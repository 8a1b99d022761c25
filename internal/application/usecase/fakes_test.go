package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
	"github.com/oliveirafjdo-web/Mega/pkg/logger"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type fakeProducts struct {
	byID         map[int64]*entity.Product
	nextID       int64
	salesCount   map[int64]int
	relinkedDe   int64
	relinkedPara int64
	relinkedN    int
	deleted      []int64
}

func newFakeProducts() *fakeProducts {
	return &fakeProducts{byID: make(map[int64]*entity.Product), salesCount: make(map[int64]int)}
}

func (f *fakeProducts) Create(p *entity.Product) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProducts) GetByID(id int64) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) GetByName(nome string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.Nome == nome {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Update(p *entity.Product) error {
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeProducts) AddStock(id int64, delta int) error {
	f.byID[id].Estoque += delta
	return nil
}

func (f *fakeProducts) List(onlyAuto bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.byID {
		if onlyAuto && !p.CriadoAutomaticamente {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeProducts) Delete(id int64) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProducts) CountSales(id int64) (int, error) { return f.salesCount[id], nil }

func (f *fakeProducts) Relink(fromID, toID int64) (int, error) {
	f.relinkedDe, f.relinkedPara = fromID, toID
	f.relinkedN = f.salesCount[fromID]
	f.salesCount[toID] += f.salesCount[fromID]
	f.salesCount[fromID] = 0
	return f.relinkedN, nil
}

type fakeSales struct {
	rows         []*repository.SaleRow
	batches      []*repository.BatchSummary
	orphans      []*entity.Sale
	linked       map[int64]int64 // venda -> produto
	deletedBatch string
	deletedCount int
}

func newFakeSales() *fakeSales {
	return &fakeSales{linked: make(map[int64]int64)}
}

func (f *fakeSales) Create(s *entity.Sale) error {
	f.rows = append(f.rows, &repository.SaleRow{Sale: *s})
	return nil
}

func (f *fakeSales) List(filter repository.SaleFilter) ([]*repository.SaleRow, error) {
	var out []*repository.SaleRow
	for _, r := range f.rows {
		if filter.Lote != "" && r.Sale.LoteImportacao != filter.Lote {
			continue
		}
		if filter.From != nil && (r.Sale.DataVenda == nil || r.Sale.DataVenda.Before(*filter.From)) {
			continue
		}
		if filter.To != nil && (r.Sale.DataVenda == nil || r.Sale.DataVenda.After(*filter.To)) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeSales) ListBatches() ([]*repository.BatchSummary, error) { return f.batches, nil }

func (f *fakeSales) DeleteBatch(lote string) (int, error) {
	f.deletedBatch = lote
	return f.deletedCount, nil
}

func (f *fakeSales) ListOrphans() ([]*entity.Sale, error) { return f.orphans, nil }

func (f *fakeSales) SetProduct(saleID, productID int64) error {
	f.linked[saleID] = productID
	return nil
}

type fakeFinance struct {
	txs          []*entity.FinanceTransaction
	nextID       int64
	batches      []*repository.FinanceBatch
	deletedBatch string
	deletedCount int
	deletedDesc  []string
}

func (f *fakeFinance) Create(tx *entity.FinanceTransaction) error {
	f.nextID++
	tx.ID = f.nextID
	f.txs = append(f.txs, tx)
	return nil
}

func (f *fakeFinance) UpsertByExternalID(tx *entity.FinanceTransaction) (bool, error) {
	f.txs = append(f.txs, tx)
	return true, nil
}

func (f *fakeFinance) ExistsExternalID(string, string) (bool, error) { return false, nil }

func (f *fakeFinance) List(filter repository.FinanceFilter) ([]*entity.FinanceTransaction, error) {
	var out []*entity.FinanceTransaction
	for _, tx := range f.txs {
		if !f.match(tx, filter.From, filter.To, filter.Tipo) {
			continue
		}
		out = append(out, tx)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeFinance) match(tx *entity.FinanceTransaction, from, to *time.Time, tipo string) bool {
	if tipo != "" && tx.Tipo != tipo {
		return false
	}
	if from != nil && tx.Data.Before(*from) {
		return false
	}
	if to != nil && tx.Data.After(*to) {
		return false
	}
	return true
}

func (f *fakeFinance) SumRange(from, to *time.Time, tipo string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, tx := range f.txs {
		if f.match(tx, from, to, tipo) {
			total = total.Add(tx.Valor)
		}
	}
	return total, nil
}

func (f *fakeFinance) SumBefore(t time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, tx := range f.txs {
		if tx.Data.Before(t) {
			total = total.Add(tx.Valor)
		}
	}
	return total, nil
}

func (f *fakeFinance) ListBatches() ([]*repository.FinanceBatch, error) { return f.batches, nil }

func (f *fakeFinance) DeleteBatch(lote string) (int, error) {
	f.deletedBatch = lote
	return f.deletedCount, nil
}

func (f *fakeFinance) DeleteByTipoDescricao(tipo, descricao string) error {
	f.deletedDesc = append(f.deletedDesc, tipo+"|"+descricao)
	kept := f.txs[:0]
	for _, tx := range f.txs {
		if tx.Tipo == tipo && tx.Descricao == descricao {
			continue
		}
		kept = append(kept, tx)
	}
	f.txs = kept
	return nil
}

type fakeTx struct {
	products *fakeProducts
	sales    *fakeSales
	finance  *fakeFinance
}

func newFakeTx() *fakeTx {
	return &fakeTx{products: newFakeProducts(), sales: newFakeSales(), finance: &fakeFinance{}}
}

func (f *fakeTx) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	finance repository.FinanceRepository,
) error) error {
	return fn(f.products, f.sales, f.finance)
}
