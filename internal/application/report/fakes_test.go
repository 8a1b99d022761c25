package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeReportRepo struct {
	totais      repository.SalesTotals
	produtos    int
	estoque     int
	maisVendido *repository.ProductHighlight
	maiorLucro  *repository.ProductHighlight
	piorMargem  *repository.ProductHighlight
	profit      []*repository.ProductProfitAgg
	qtdJanela   map[int64]int
	historico   []*repository.ProductProfitAgg
	netRows     []*repository.SaleNetRow
}

func (r *fakeReportRepo) SalesTotals(_, _ *time.Time) (*repository.SalesTotals, error) {
	t := r.totais
	return &t, nil
}
func (r *fakeReportRepo) ProductCount() (int, error) { return r.produtos, nil }
func (r *fakeReportRepo) StockUnits() (int, error)   { return r.estoque, nil }
func (r *fakeReportRepo) BestSeller(_, _ *time.Time) (*repository.ProductHighlight, error) {
	return r.maisVendido, nil
}
func (r *fakeReportRepo) MostProfitable(_, _ *time.Time) (*repository.ProductHighlight, error) {
	return r.maiorLucro, nil
}
func (r *fakeReportRepo) WorstMargin(_, _ *time.Time) (*repository.ProductHighlight, error) {
	return r.piorMargem, nil
}
func (r *fakeReportRepo) ProfitByProduct(_, _ *time.Time) ([]*repository.ProductProfitAgg, error) {
	return r.profit, nil
}
func (r *fakeReportRepo) QtyByProductSince(time.Time) (map[int64]int, error) {
	return r.qtdJanela, nil
}
func (r *fakeReportRepo) HistoryByProduct() ([]*repository.ProductProfitAgg, error) {
	return r.historico, nil
}
func (r *fakeReportRepo) SalesNetRows(_, _ *time.Time) ([]*repository.SaleNetRow, error) {
	return r.netRows, nil
}

type fakeSettingsRepo struct {
	cfg *entity.Settings
}

func (r *fakeSettingsRepo) Get() (*entity.Settings, error) { return r.cfg, nil }
func (r *fakeSettingsRepo) Update(s *entity.Settings) error {
	r.cfg = s
	return nil
}
func (r *fakeSettingsRepo) EnsureDefault() error { return nil }

type fakeFinanceRepo struct {
	txs []*entity.FinanceTransaction
}

func (r *fakeFinanceRepo) Create(tx *entity.FinanceTransaction) error {
	r.txs = append(r.txs, tx)
	return nil
}
func (r *fakeFinanceRepo) UpsertByExternalID(*entity.FinanceTransaction) (bool, error) {
	return false, nil
}
func (r *fakeFinanceRepo) ExistsExternalID(string, string) (bool, error) { return false, nil }
func (r *fakeFinanceRepo) List(f repository.FinanceFilter) ([]*entity.FinanceTransaction, error) {
	var out []*entity.FinanceTransaction
	for _, tx := range r.txs {
		if f.Tipo != "" && tx.Tipo != f.Tipo {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}
func (r *fakeFinanceRepo) SumRange(_, _ *time.Time, _ string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}
func (r *fakeFinanceRepo) SumBefore(time.Time) (decimal.Decimal, error) { return decimal.Zero, nil }
func (r *fakeFinanceRepo) ListBatches() ([]*repository.FinanceBatch, error) {
	return nil, nil
}
func (r *fakeFinanceRepo) DeleteBatch(string) (int, error)            { return 0, nil }
func (r *fakeFinanceRepo) DeleteByTipoDescricao(string, string) error { return nil }

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(*entity.Product) error              { return nil }
func (r *fakeProductRepo) GetByID(int64) (*entity.Product, error)    { return nil, nil }
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) GetByName(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error              { return nil }
func (r *fakeProductRepo) AddStock(int64, int) error                 { return nil }
func (r *fakeProductRepo) List(bool) ([]*entity.Product, error)      { return r.products, nil }
func (r *fakeProductRepo) Delete(int64) error                        { return nil }
func (r *fakeProductRepo) CountSales(int64) (int, error)             { return 0, nil }
func (r *fakeProductRepo) Relink(int64, int64) (int, error)          { return 0, nil }

func settingsWith(imposto, despesas string) *fakeSettingsRepo {
	return &fakeSettingsRepo{cfg: &entity.Settings{
		ID:              1,
		ImpostoPercent:  d(imposto),
		DespesasPercent: d(despesas),
	}}
}
