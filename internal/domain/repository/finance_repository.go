package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
)

// FinanceFilter restringe listagens do razão. Campos nulos/vazios não filtram.
type FinanceFilter struct {
	From  *time.Time
	To    *time.Time
	Tipo  string
	Fonte string
	Limit int
}

// FinanceBatch agrega um lote de importação do Mercado Pago.
type FinanceBatch struct {
	Lote         string
	Quantidade   int
	PrimeiraData *time.Time
	UltimaData   *time.Time
}

// FinanceRepository define a porta de persistência do razão financeiro.
type FinanceRepository interface {
	Create(tx *entity.FinanceTransaction) error
	// UpsertByExternalID insere ou atualiza pelo id externo do Mercado Pago.
	// Devolve true quando a linha foi criada, false quando já existia.
	UpsertByExternalID(tx *entity.FinanceTransaction) (bool, error)
	// ExistsExternalID informa se já há lançamento com esse id externo e tipo.
	ExistsExternalID(externalID, tipo string) (bool, error)
	List(filter FinanceFilter) ([]*entity.FinanceTransaction, error)
	// SumRange soma os valores do tipo no período (tipo vazio soma todos).
	SumRange(from, to *time.Time, tipo string) (decimal.Decimal, error)
	// SumBefore soma tudo lançado antes do instante (saldo anterior).
	SumBefore(t time.Time) (decimal.Decimal, error)
	ListBatches() ([]*FinanceBatch, error)
	// DeleteBatch remove os lançamentos do lote com origem mercado_pago.
	DeleteBatch(lote string) (int, error)
	// DeleteByTipoDescricao remove lançamentos do tipo com a descrição exata
	// (usado para substituir o saldo anterior manual de um período).
	DeleteByTipoDescricao(tipo, descricao string) error
}
