package importer

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
	"github.com/oliveirafjdo-web/Mega/pkg/logger"
)

var productFields = []Field{
	{Name: "sku", Candidates: []string{"SKU"}, Required: true},
	{Name: "nome", Candidates: []string{"Nome", "Título"}},
	{Name: "estoque", Candidates: []string{"Estoque"}},
	{Name: "custo", Candidates: []string{"Custo"}},
}

// markup padrão do preço sugerido em produto novo: 1,5x o custo.
var defaultMarkup = decimal.NewFromFloat(1.5)

// ProductImporter ingere o catálogo: upsert por SKU. Linha sem SKU vira erro
// na resposta mas não interrompe o lote.
type ProductImporter struct {
	tx  TxRunner
	log *logger.Logger
}

// NewProductImporter constrói o importador de produtos.
func NewProductImporter(tx TxRunner, log *logger.Logger) *ProductImporter {
	return &ProductImporter{tx: tx, log: log}
}

// Import processa a tabela inteira em uma transação.
func (imp *ProductImporter) Import(ctx context.Context, t *Table) (*dto.ProductImportResponse, error) {
	cols, err := ResolveColumns(t.Headers, productFields)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductImportResponse{}

	err = imp.tx.Run(ctx, func(
		products repository.ProductRepository,
		_ repository.SaleRepository,
		_ repository.FinanceRepository,
	) error {
		for _, row := range t.Rows {
			sku := row.Get(cols["sku"])
			if sku == "" {
				resp.Erros = append(resp.Erros, "Linha sem SKU")
				continue
			}

			nome := row.Get(cols["nome"])
			if nome == "" {
				nome = sku
			}
			estoque := parseInt(row.Get(cols["estoque"]))
			custo := parseDecimal(row.Get(cols["custo"]))

			existente, err := products.GetBySKU(sku)
			if err != nil {
				return err
			}

			if existente != nil {
				existente.Nome = nome
				existente.Custo = custo
				existente.Estoque = estoque
				if err := products.Update(existente); err != nil {
					return err
				}
				resp.Atualizados++
				continue
			}

			novo := &entity.Product{
				SKU:            sku,
				Nome:           nome,
				Custo:          custo,
				PrecoSugerido:  custo.Mul(defaultMarkup),
				EstoqueInicial: estoque,
				Estoque:        estoque,
			}
			if err := products.Create(novo); err != nil {
				return err
			}
			resp.Inseridos++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	imp.log.Info().Int("inseridos", resp.Inseridos).Int("atualizados", resp.Atualizados).
		Int("erros", len(resp.Erros)).Msg("importação de produtos concluída")
	return resp, nil
}
