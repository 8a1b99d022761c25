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

var settlementFields = []Field{
	{Name: "externalID", Candidates: []string{"ID DA TRANSAÇÃO NO MERCADO PAGO"}, Required: true},
	{Name: "tipo", Candidates: []string{"TIPO DE TRANSAÇÃO"}, Required: true},
	{Name: "valor", Candidates: []string{"VALOR LÍQUIDO DA TRANSAÇÃO"}, Required: true},
	{Name: "dataLiberacao", Candidates: []string{"DATA DE LIBERAÇÃO DO DINHEIRO"}},
	{Name: "dataAprovacao", Candidates: []string{"DATA DE APROVAÇÃO"}},
	{Name: "dataOrigem", Candidates: []string{"DATA DE ORIGEM"}},
	{Name: "canal", Candidates: []string{"CANAL DE VENDA"}},
}

// SettlementImporter ingere o relatório de liquidações do Mercado Pago:
// classifica o tipo pelo texto livre, resolve o sinal e faz upsert pelo id
// externo, o que torna a reimportação do mesmo arquivo idempotente.
type SettlementImporter struct {
	tx      TxRunner
	reports ReportWriter
	log     *logger.Logger
}

// NewSettlementImporter constrói o importador de liquidações.
func NewSettlementImporter(tx TxRunner, reports ReportWriter, log *logger.Logger) *SettlementImporter {
	return &SettlementImporter{tx: tx, reports: reports, log: log}
}

// Import processa a tabela inteira em uma transação.
func (imp *SettlementImporter) Import(ctx context.Context, t *Table) (*dto.SettlementImportResponse, error) {
	cols, err := ResolveColumns(t.Headers, settlementFields)
	if err != nil {
		return nil, err
	}

	lote := batchID()
	resp := &dto.SettlementImportResponse{Lote: lote}
	processados := make(map[string]bool)

	var ufNaoRec []UFEntry
	ufCol := br.FindUFColumn(t.Headers)

	err = imp.tx.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.SaleRepository,
		finance repository.FinanceRepository,
	) error {
		for _, row := range t.Rows {
			externalID := canonicalExternalID(row.Get(cols["externalID"]))
			if externalID == "" || processados[externalID] {
				resp.Ignoradas++
				continue
			}
			processados[externalID] = true

			tipoTrans := row.Get(cols["tipo"])
			valor := parseDecimal(row.Get(cols["valor"]))
			tipoFin, valor := classifyKind(tipoTrans, valor)

			data := settlementDate(row, cols)

			canal := row.Get(cols["canal"])
			descricao := strings.Trim(tipoTrans+" - "+canal, " -")

			if ufCol != "" {
				if raw := row.Get(ufCol); raw != "" && br.NormalizeUF(raw) == "" {
					ufNaoRec = append(ufNaoRec, UFEntry{Original: raw})
				}
			}

			eid := externalID
			criada, err := finance.UpsertByExternalID(&entity.FinanceTransaction{
				Tipo:           tipoFin,
				Valor:          valor,
				Data:           data,
				Descricao:      descricao,
				Fonte:          entity.FinanceSourceMercadoPago,
				ExternalIDMP:   &eid,
				LoteImportacao: lote,
			})
			if err != nil {
				return err
			}
			if criada {
				resp.Novas++
			} else {
				resp.Atualizadas++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(ufNaoRec) > 0 {
		if _, err := imp.reports.WriteUFReport("uf_not_recognized_settlement", lote, ufNaoRec); err != nil {
			imp.log.Error().Err(err).Msg("falha ao salvar relatório de UF não reconhecidos")
		}
	}

	imp.log.Info().Str("lote", lote).Int("novas", resp.Novas).
		Int("atualizadas", resp.Atualizadas).Int("ignoradas", resp.Ignoradas).
		Msg("importação MP concluída")
	return resp, nil
}

// classifyKind mapeia o texto livre do tipo de transação para o tipo do razão
// e resolve o sinal: estorno e retirada sempre negativos, pagamento sempre
// positivo, o resto entra como MP_NET com o sinal original.
func classifyKind(tipoTrans string, valor decimal.Decimal) (string, decimal.Decimal) {
	lower := strings.ToLower(tipoTrans)
	switch {
	case strings.Contains(lower, "estorno"), strings.Contains(lower, "chargeback"),
		strings.Contains(lower, "devolu"), strings.Contains(lower, "contestação"):
		return entity.FinanceRefund, valor.Abs().Neg()
	case strings.Contains(lower, "retirada"), strings.Contains(lower, "saque"),
		strings.Contains(lower, "payouts"):
		return entity.FinanceWithdrawal, valor.Abs().Neg()
	case strings.Contains(lower, "pagamento"):
		return entity.FinanceMPNet, valor.Abs()
	default:
		return entity.FinanceMPNet, valor
	}
}

// settlementDate escolhe a data do caixa: liberação do dinheiro, depois
// aprovação, depois origem; sem nenhuma, agora.
func settlementDate(row Row, cols map[string]string) time.Time {
	for _, campo := range []string{"dataLiberacao", "dataAprovacao", "dataOrigem"} {
		if col, ok := cols[campo]; ok {
			if t := br.ParseISO(row.Get(col)); t != nil {
				return *t
			}
		}
	}
	return time.Now()
}
