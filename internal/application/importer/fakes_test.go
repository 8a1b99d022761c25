package importer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
	"github.com/oliveirafjdo-web/Mega/pkg/logger"
)

// Fakes em memória dos repositórios, compartilhados pelos testes dos
// importadores.

type fakeProductRepo struct {
	seq      int64
	products map[int64]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.seq++
	p.ID = r.seq
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByName(nome string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Nome == nome {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) AddStock(id int64, delta int) error {
	if p, ok := r.products[id]; ok {
		p.Estoque += delta
	}
	return nil
}

func (r *fakeProductRepo) List(onlyAuto bool) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if onlyAuto && !p.CriadoAutomaticamente {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) CountSales(int64) (int, error) { return 0, nil }

func (r *fakeProductRepo) Relink(fromID, toID int64) (int, error) { return 0, nil }

type fakeSaleRepo struct {
	seq   int64
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.seq++
	s.ID = r.seq
	cp := *s
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) List(repository.SaleFilter) ([]*repository.SaleRow, error) { return nil, nil }
func (r *fakeSaleRepo) ListBatches() ([]*repository.BatchSummary, error)          { return nil, nil }
func (r *fakeSaleRepo) DeleteBatch(string) (int, error)                           { return 0, nil }
func (r *fakeSaleRepo) ListOrphans() ([]*entity.Sale, error)                      { return nil, nil }
func (r *fakeSaleRepo) SetProduct(int64, int64) error                             { return nil }

type fakeFinanceRepo struct {
	seq int64
	txs []*entity.FinanceTransaction
}

func (r *fakeFinanceRepo) Create(tx *entity.FinanceTransaction) error {
	r.seq++
	tx.ID = r.seq
	cp := *tx
	r.txs = append(r.txs, &cp)
	return nil
}

func (r *fakeFinanceRepo) UpsertByExternalID(tx *entity.FinanceTransaction) (bool, error) {
	for _, existente := range r.txs {
		if existente.ExternalIDMP != nil && tx.ExternalIDMP != nil &&
			*existente.ExternalIDMP == *tx.ExternalIDMP {
			tx.ID = existente.ID
			*existente = *tx
			return false, nil
		}
	}
	if err := r.Create(tx); err != nil {
		return false, err
	}
	return true, nil
}

func (r *fakeFinanceRepo) ExistsExternalID(externalID, tipo string) (bool, error) {
	for _, tx := range r.txs {
		if tx.ExternalIDMP != nil && *tx.ExternalIDMP == externalID && tx.Tipo == tipo {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFinanceRepo) List(repository.FinanceFilter) ([]*entity.FinanceTransaction, error) {
	return nil, nil
}

func (r *fakeFinanceRepo) SumRange(_, _ *time.Time, _ string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeFinanceRepo) SumBefore(time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeFinanceRepo) ListBatches() ([]*repository.FinanceBatch, error) { return nil, nil }
func (r *fakeFinanceRepo) DeleteBatch(string) (int, error)                  { return 0, nil }
func (r *fakeFinanceRepo) DeleteByTipoDescricao(string, string) error       { return nil }

// fakeTxRunner passa os fakes direto para a função, sem transação real.
type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
	finance  *fakeFinanceRepo
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{
		products: newFakeProductRepo(),
		sales:    &fakeSaleRepo{},
		finance:  &fakeFinanceRepo{},
	}
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	finance repository.FinanceRepository,
) error) error {
	return fn(r.products, r.sales, r.finance)
}

// fakeReportWriter registra as chamadas sem tocar em disco.
type fakeReportWriter struct {
	exceptions []ExceptionRow
	ufEntries  []UFEntry
}

func (w *fakeReportWriter) WriteSalesExceptions(lote string, rows []ExceptionRow) (string, error) {
	w.exceptions = append(w.exceptions, rows...)
	return "vendas_nao_importadas_" + lote + ".xlsx", nil
}

func (w *fakeReportWriter) WriteUFReport(prefix, lote string, entries []UFEntry) (string, error) {
	w.ufEntries = append(w.ufEntries, entries...)
	return prefix + "_" + lote + ".csv", nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}
