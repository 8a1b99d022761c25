package inventory

import (
	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
)

// historyDefaultLimit corte do histórico geral quando não há filtro por produto.
const historyDefaultLimit = 100

// HistoryUseCase consulta do histórico de ajustes de estoque.
type HistoryUseCase struct {
	adjustments repository.AdjustmentRepository
}

// NewHistoryUseCase constrói o caso de uso de histórico.
func NewHistoryUseCase(adjustments repository.AdjustmentRepository) *HistoryUseCase {
	return &HistoryUseCase{adjustments: adjustments}
}

// List devolve o histórico de ajustes, mais recente primeiro. Com produtoID
// positivo filtra por produto; sem filtro devolve os últimos lançamentos gerais.
func (uc *HistoryUseCase) List(produtoID int64) ([]dto.StockAdjustmentHistoryItem, error) {
	var (
		adjs []*entity.StockAdjustment
		err  error
	)
	if produtoID > 0 {
		adjs, err = uc.adjustments.ListByProduct(produtoID)
	} else {
		adjs, err = uc.adjustments.ListRecent(historyDefaultLimit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockAdjustmentHistoryItem, 0, len(adjs))
	for _, a := range adjs {
		out = append(out, dto.StockAdjustmentHistoryItem{
			ID:            a.ID,
			ProdutoID:     a.ProductID,
			DataAjuste:    a.DataAjuste,
			Tipo:          a.Tipo,
			Quantidade:    a.Quantidade,
			CustoUnitario: a.CustoUnitario,
			Observacao:    a.Observacao,
		})
	}
	return out, nil
}
