package repository

import "github.com/oliveirafjdo-web/Mega/internal/domain/entity"

// AdjustmentRepository define a porta de persistência para ajustes de estoque.
type AdjustmentRepository interface {
	Create(adj *entity.StockAdjustment) error
	ListByProduct(productID int64) ([]*entity.StockAdjustment, error)
	ListRecent(limit int) ([]*entity.StockAdjustment, error)
}
