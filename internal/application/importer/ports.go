package importer

import (
	"context"

	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa transação. Cada importação roda inteira em uma
// transação só: ou o lote entra completo, ou nada entra.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
		finance repository.FinanceRepository,
	) error) error
}

// ExceptionRow linha do relatório de vendas não importadas.
type ExceptionRow struct {
	Tipo        string
	NumeroVenda string
	Titulo      string
	SKU         string
	Acao        string
}

// UFEntry valor de estado que o normalizador não reconheceu.
type UFEntry struct {
	Original   string
	Convertido string
}

// ReportWriter persiste os artefatos colaterais de uma importação (relatório
// de exceções em planilha, valores de UF não reconhecidos em CSV) e devolve o
// nome do arquivo gerado.
type ReportWriter interface {
	WriteSalesExceptions(lote string, rows []ExceptionRow) (string, error)
	WriteUFReport(prefix, lote string, entries []UFEntry) (string, error)
}
