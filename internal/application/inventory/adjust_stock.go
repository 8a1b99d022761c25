package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	domaininv "github.com/oliveirafjdo-web/Mega/internal/domain/inventory"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
	"github.com/oliveirafjdo-web/Mega/pkg/logger"
)

// UseCase ajustes manuais de estoque. Entrada com custo informado recalcula a
// média ponderada do produto; saída registra o custo vigente e não o altera.
type UseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewUseCase constrói o caso de uso de estoque.
func NewUseCase(tx TxRunner, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, log: log}
}

// Adjust aplica um ajuste: atualiza estoque e custo do produto e grava o
// registro do ajuste na mesma transação.
func (uc *UseCase) Adjust(ctx context.Context, in dto.StockAdjustmentRequest) (*dto.StockAdjustmentResponse, error) {
	if in.Tipo != entity.AdjustEntrada && in.Tipo != entity.AdjustSaida {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.StockAdjustmentResponse

	err := uc.tx.RunStock(ctx, func(
		products repository.ProductRepository,
		adjustments repository.AdjustmentRepository,
	) error {
		produto, err := products.GetByID(in.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}

		novoCusto := produto.Custo
		if in.Tipo == entity.AdjustEntrada && in.CustoUnitario != nil {
			novoCusto = domaininv.WeightedAverageCost(
				produto.Estoque, produto.Custo, in.Quantidade, *in.CustoUnitario)
		}

		fator := 1
		if in.Tipo == entity.AdjustSaida {
			fator = -1
		}
		novoEstoque := produto.Estoque + fator*in.Quantidade

		// Saída registra o custo vigente; entrada registra o custo informado.
		custoRegistro := decimal.Zero
		if in.Tipo == entity.AdjustSaida {
			custoRegistro = produto.Custo
		} else if in.CustoUnitario != nil {
			custoRegistro = *in.CustoUnitario
		}

		produto.Estoque = novoEstoque
		produto.Custo = novoCusto
		if err := products.Update(produto); err != nil {
			return err
		}

		adj := &entity.StockAdjustment{
			ProductID:     in.ProdutoID,
			DataAjuste:    time.Now(),
			Tipo:          in.Tipo,
			Quantidade:    in.Quantidade,
			CustoUnitario: custoRegistro,
			Observacao:    in.Observacao,
		}
		if err := adjustments.Create(adj); err != nil {
			return err
		}

		resp = &dto.StockAdjustmentResponse{
			ID:            adj.ID,
			ProdutoID:     in.ProdutoID,
			DataAjuste:    adj.DataAjuste,
			Tipo:          in.Tipo,
			Quantidade:    in.Quantidade,
			CustoUnitario: custoRegistro,
			Observacao:    in.Observacao,
			EstoqueAtual:  novoEstoque,
			NovoCusto:     novoCusto,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int64("produto", in.ProdutoID).Str("tipo", in.Tipo).
		Int("quantidade", in.Quantidade).Msg("ajuste de estoque registrado")
	return resp, nil
}
