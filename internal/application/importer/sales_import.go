package importer

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
	"github.com/oliveirafjdo-web/Mega/pkg/br"
	"github.com/oliveirafjdo-web/Mega/pkg/logger"
)

// SalesSheetName aba esperada no export de vendas do Mercado Livre.
const SalesSheetName = "Vendas BR"

// SalesHeaderRow linha (zero-based) onde fica o cabeçalho no export ML.
const SalesHeaderRow = 5

// Campos do export de vendas ML, em ordem de preferência de header.
var salesFields = []Field{
	{Name: "numero", Candidates: []string{"N.º de venda"}, Required: true},
	{Name: "sku", Candidates: []string{"SKU"}},
	{Name: "titulo", Candidates: []string{"Título do anúncio", "Título"}},
	{Name: "data", Candidates: []string{"Data da venda"}},
	{Name: "unidades", Candidates: []string{"Unidades"}},
	{Name: "receita", Candidates: []string{"Receita por produtos (BRL)"}},
	{Name: "preco", Candidates: []string{"Preço"}},
	{Name: "tarifa", Candidates: []string{"Tarifa de venda e impostos (BRL)"}},
	{Name: "status", Candidates: []string{"Status"}},
	{Name: "statusEnvio", Candidates: []string{"Status do envio"}},
}

// SalesImporter ingere o export de vendas do Mercado Livre: resolve produtos,
// detecta cancelamentos, grava as vendas, lança o líquido no caixa e deduz
// estoque. Linhas sem produto não abortam o lote; viram relatório de exceções.
type SalesImporter struct {
	tx      TxRunner
	reports ReportWriter
	log     *logger.Logger
}

// NewSalesImporter constrói o importador de vendas.
func NewSalesImporter(tx TxRunner, reports ReportWriter, log *logger.Logger) *SalesImporter {
	return &SalesImporter{tx: tx, reports: reports, log: log}
}

// Import processa a tabela inteira em uma transação. Erro estrutural (coluna
// obrigatória ausente) aborta antes de qualquer linha.
func (imp *SalesImporter) Import(ctx context.Context, t *Table) (*dto.SalesImportResponse, error) {
	cols, err := ResolveColumns(t.Headers, salesFields)
	if err != nil {
		return nil, err
	}

	lote := batchID()
	ufCol := br.FindUFColumn(t.Headers)

	// Mapa título -> SKU da própria planilha, para preencher SKUs ausentes.
	tituloParaSKU := make(map[string]string)
	for _, row := range t.Rows {
		sku := row.Get(cols["sku"])
		titulo := row.Get(cols["titulo"])
		if sku != "" && titulo != "" {
			if _, ok := tituloParaSKU[titulo]; !ok {
				tituloParaSKU[titulo] = sku
			}
		}
	}

	var (
		importadas int
		semSKU     []ExceptionRow
		semProduto []ExceptionRow
		ufNaoRec   []UFEntry
	)

	err = imp.tx.Run(ctx, func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
		finance repository.FinanceRepository,
	) error {
		for _, row := range t.Rows {
			numero := row.Get(cols["numero"])
			if numero == "" {
				continue
			}

			sku := row.Get(cols["sku"])
			titulo := row.Get(cols["titulo"])
			if sku == "" && titulo != "" {
				if s, ok := tituloParaSKU[titulo]; ok {
					sku = s
					imp.log.Debug().Str("sku", sku).Str("titulo", titulo).
						Msg("sku preenchido a partir do título")
				}
			}

			var produto *entity.Product
			if sku != "" {
				produto, err = products.GetBySKU(sku)
			} else if titulo != "" {
				produto, err = products.GetByName(titulo)
			}
			if err != nil {
				return err
			}

			if sku == "" && produto == nil {
				semSKU = append(semSKU, exceptionRow("Sem SKU/Título", numero, titulo, sku,
					"Cadastrar produto ou adicionar SKU na planilha"))
				continue
			}
			if produto == nil {
				semProduto = append(semProduto, exceptionRow("Produto não cadastrado", numero, titulo, sku,
					"Cadastrar produto com este SKU no sistema"))
				continue
			}

			dataVenda := br.ParseSaleDate(row.Get(cols["data"]))
			unidades := parseInt(row.Get(cols["unidades"]))
			receita := parseDecimal(row.Get(cols["receita"]))

			// Cancelada: receita não positiva, status de cancelamento ou envio
			// "not_specified" sem receita. Cancelamento zera a receita.
			status := strings.ToLower(row.Get(cols["status"]))
			statusEnvio := strings.ToLower(row.Get(cols["statusEnvio"]))
			cancelada := receita.LessThanOrEqual(decimal.Zero) ||
				strings.Contains(status, "cancelad") ||
				strings.Contains(status, "cancelled") ||
				(statusEnvio == "not_specified" && receita.LessThanOrEqual(decimal.Zero))
			if cancelada && !receita.IsZero() {
				imp.log.Info().Str("venda", numero).Str("status", status).
					Msg("venda cancelada por status, receita zerada")
				receita = decimal.Zero
			}

			// Preço unitário: receita/quantidade; cancelada usa a coluna Preço;
			// último recurso é o preço sugerido do produto.
			precoUnit := decimal.Zero
			precoPlanilha := parseDecimal(row.Get(cols["preco"]))
			switch {
			case receita.GreaterThan(decimal.Zero) && unidades > 0:
				precoUnit = receita.Div(decimal.NewFromInt(int64(unidades)))
			case precoPlanilha.GreaterThan(decimal.Zero) && unidades > 0:
				precoUnit = precoPlanilha
			default:
				precoUnit = produto.PrecoSugerido
			}

			comissao := parseDecimal(row.Get(cols["tarifa"])).Abs()
			receitaLiquida := receita.Sub(comissao)
			custoTotal := produto.Custo.Mul(decimal.NewFromInt(int64(unidades)))
			margem := receitaLiquida.Sub(custoTotal)

			estado := ""
			if ufCol != "" {
				raw := row.Get(ufCol)
				if raw != "" {
					estado = br.NormalizeUF(raw)
					if estado == "" {
						ufNaoRec = append(ufNaoRec, UFEntry{Original: raw})
					}
				}
			}

			produtoID := produto.ID
			sale := &entity.Sale{
				ProductID:      &produtoID,
				Quantidade:     unidades,
				PrecoUnitario:  precoUnit,
				ReceitaBruta:   receita,
				Comissao:       comissao,
				ReceitaLiquida: receitaLiquida,
				Custo:          custoTotal,
				Margem:         margem,
				DataVenda:      dataVenda,
				Origem:         entity.SaleOriginMercadoLivre,
				NumeroVendaML:  numero,
				LoteImportacao: lote,
				Estado:         estado,
				MLStatus:       row.Get(cols["status"]),
			}
			if err := sales.Create(sale); err != nil {
				return err
			}

			// Lançamento do líquido no caixa, idempotente pelo número da venda.
			exists, err := finance.ExistsExternalID(numero, entity.FinanceMPNet)
			if err != nil {
				return err
			}
			if !exists {
				externalID := numero
				ftx := &entity.FinanceTransaction{
					Tipo:           entity.FinanceMPNet,
					Valor:          receitaLiquida,
					Descricao:      "Venda ML " + numero,
					Fonte:          entity.FinanceSourceMercadoPago,
					ExternalIDMP:   &externalID,
					LoteImportacao: lote,
				}
				if dataVenda != nil {
					ftx.Data = *dataVenda
				} else {
					ftx.Data = time.Now()
				}
				if err := finance.Create(ftx); err != nil {
					return err
				}
			}

			// Estoque só baixa em venda não cancelada.
			if receita.GreaterThan(decimal.Zero) {
				if err := products.AddStock(produto.ID, -unidades); err != nil {
					return err
				}
			} else {
				imp.log.Info().Str("venda", numero).Msg("venda cancelada, estoque não deduzido")
			}

			importadas++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.SalesImportResponse{
		Lote:             lote,
		VendasImportadas: importadas,
		VendasSemSKU:     len(semSKU),
		VendasSemProduto: len(semProduto),
	}

	if len(semSKU) > 0 || len(semProduto) > 0 {
		resp.RelatorioGerado = true
		name, err := imp.reports.WriteSalesExceptions(lote, append(semSKU, semProduto...))
		if err != nil {
			imp.log.Error().Err(err).Msg("falha ao salvar relatório de exceções")
		} else {
			resp.RelatorioArquivo = name
		}
	}
	if len(ufNaoRec) > 0 {
		name, err := imp.reports.WriteUFReport("uf_not_recognized_vendas", lote, ufNaoRec)
		if err != nil {
			imp.log.Error().Err(err).Msg("falha ao salvar relatório de UF não reconhecidos")
		} else {
			resp.RelatorioUF = name
		}
	}
	return resp, nil
}

func exceptionRow(tipo, numero, titulo, sku, acao string) ExceptionRow {
	if titulo == "" {
		titulo = "(sem título)"
	}
	if sku == "" {
		sku = "(vazio)"
	}
	return ExceptionRow{Tipo: tipo, NumeroVenda: numero, Titulo: titulo, SKU: sku, Acao: acao}
}
