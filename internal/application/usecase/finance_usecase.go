package usecase

import (
	"fmt"
	"time"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/application/report"
	"github.com/oliveirafjdo-web/Mega/internal/domain"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
	"github.com/oliveirafjdo-web/Mega/pkg/logger"
)

// Teto do extrato devolvido na visão do caixa.
const financeViewLimit = 500

// FinanceUseCase visão do caixa, lançamentos manuais e lotes do Mercado Pago.
type FinanceUseCase struct {
	finance repository.FinanceRepository
	log     *logger.Logger
}

// NewFinanceUseCase constrói o caso de uso financeiro.
func NewFinanceUseCase(finance repository.FinanceRepository, log *logger.Logger) *FinanceUseCase {
	return &FinanceUseCase{finance: finance, log: log}
}

// View monta a visão do período (padrão: mês vigente): saldo anterior (tudo
// antes do início), somatórios por tipo, saldo atual e o extrato limitado.
func (uc *FinanceUseCase) View(q dto.PeriodQuery) (*dto.FinanceViewResponse, error) {
	p := report.ResolvePeriod(q.DataInicio, q.DataFim)

	resp := &dto.FinanceViewResponse{DataInicio: p.FromStr, DataFim: p.ToStr}

	if p.From != nil {
		saldo, err := uc.finance.SumBefore(*p.From)
		if err != nil {
			return nil, err
		}
		resp.SaldoAnterior = saldo
	}

	var err error
	if resp.EntradasMP, err = uc.finance.SumRange(p.From, p.To, entity.FinanceMPNet); err != nil {
		return nil, err
	}
	if resp.Devolucoes, err = uc.finance.SumRange(p.From, p.To, entity.FinanceRefund); err != nil {
		return nil, err
	}
	if resp.Retiradas, err = uc.finance.SumRange(p.From, p.To, entity.FinanceWithdrawal); err != nil {
		return nil, err
	}
	if resp.Ajustes, err = uc.finance.SumRange(p.From, p.To, entity.FinanceAdjustment); err != nil {
		return nil, err
	}
	if resp.SaldoPeriodo, err = uc.finance.SumRange(p.From, p.To, ""); err != nil {
		return nil, err
	}
	resp.SaldoAtual = resp.SaldoAnterior.Add(resp.SaldoPeriodo)

	txs, err := uc.finance.List(repository.FinanceFilter{
		From:  p.From,
		To:    p.To,
		Limit: financeViewLimit,
	})
	if err != nil {
		return nil, err
	}
	resp.Transacoes = make([]dto.FinanceTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp.Transacoes = append(resp.Transacoes, financeToDTO(tx))
	}

	lotes, err := uc.ListBatches()
	if err != nil {
		return nil, err
	}
	resp.LotesMP = lotes

	return resp, nil
}

// AddEntry grava um lançamento manual. Devoluções e retiradas entram sempre
// negativas, independente do sinal informado.
func (uc *FinanceUseCase) AddEntry(in dto.FinanceEntryRequest) (*dto.FinanceTransactionResponse, error) {
	var tipo string
	valor := in.Valor
	switch in.Acao {
	case "saldo_inicial":
		tipo = entity.FinanceOpeningBalance
	case "devolucao":
		tipo = entity.FinanceRefund
		valor = valor.Abs().Neg()
	case "retirada":
		tipo = entity.FinanceWithdrawal
		valor = valor.Abs().Neg()
	case "ajuste":
		tipo = entity.FinanceAdjustment
	default:
		return nil, domain.ErrInvalidInput
	}

	data := time.Now()
	if in.Data != "" {
		t, err := time.ParseInLocation("2006-01-02", in.Data, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		data = t
	}

	tx := &entity.FinanceTransaction{
		Tipo:      tipo,
		Valor:     valor,
		Data:      data,
		Descricao: in.Descricao,
		Fonte:     entity.FinanceSourceManual,
	}
	if err := uc.finance.Create(tx); err != nil {
		return nil, err
	}

	uc.log.Info().Str("tipo", tipo).Str("valor", valor.String()).Msg("lançamento manual")
	resp := financeToDTO(tx)
	return &resp, nil
}

// SetOpeningBalance substitui o saldo anterior manual de um período: remove o
// lançamento anterior com a mesma marca e grava o novo na véspera do início,
// para que SumBefore o capture.
func (uc *FinanceUseCase) SetOpeningBalance(in dto.OpeningBalanceRequest) (*dto.FinanceTransactionResponse, error) {
	inicio, err := time.ParseInLocation("2006-01-02", in.DataInicio, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	descricao := fmt.Sprintf("Saldo anterior manual for %s", in.DataInicio)
	if err := uc.finance.DeleteByTipoDescricao(entity.FinanceOpeningBalance, descricao); err != nil {
		return nil, err
	}

	tx := &entity.FinanceTransaction{
		Tipo:      entity.FinanceOpeningBalance,
		Valor:     in.Valor,
		Data:      inicio.AddDate(0, 0, -1),
		Descricao: descricao,
		Fonte:     entity.FinanceSourceManual,
	}
	if err := uc.finance.Create(tx); err != nil {
		return nil, err
	}

	resp := financeToDTO(tx)
	return &resp, nil
}

// ListBatches devolve os lotes importados do Mercado Pago.
func (uc *FinanceUseCase) ListBatches() ([]dto.FinanceBatchResponse, error) {
	lotes, err := uc.finance.ListBatches()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FinanceBatchResponse, 0, len(lotes))
	for _, l := range lotes {
		out = append(out, dto.FinanceBatchResponse{
			Lote:         l.Lote,
			Quantidade:   l.Quantidade,
			PrimeiraData: l.PrimeiraData,
			UltimaData:   l.UltimaData,
		})
	}
	return out, nil
}

// DeleteBatch remove os lançamentos do lote (só os de origem mercado_pago;
// lançamentos manuais nunca saem por aqui).
func (uc *FinanceUseCase) DeleteBatch(lote string) (int, error) {
	n, err := uc.finance.DeleteBatch(lote)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Str("lote", lote).Int("lancamentos", n).Msg("lote do Mercado Pago excluído")
	return n, nil
}

func financeToDTO(tx *entity.FinanceTransaction) dto.FinanceTransactionResponse {
	resp := dto.FinanceTransactionResponse{
		ID:        tx.ID,
		Data:      tx.Data,
		Tipo:      tx.Tipo,
		Valor:     tx.Valor,
		Fonte:     tx.Fonte,
		Descricao: tx.Descricao,
		Lote:      tx.LoteImportacao,
	}
	if tx.ExternalIDMP != nil {
		resp.ExternalIDMP = *tx.ExternalIDMP
	}
	return resp
}
