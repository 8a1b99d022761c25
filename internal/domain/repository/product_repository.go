package repository

import (
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
)

// ProductRepository define a porta de persistência para Product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByName(nome string) (*entity.Product, error)
	Update(product *entity.Product) error
	// AddStock soma delta ao estoque (delta pode ser negativo).
	AddStock(productID int64, delta int) error
	List(onlyAuto bool) ([]*entity.Product, error)
	Delete(id int64) error
	// CountSales informa quantas vendas referenciam o produto (bloqueia exclusão).
	CountSales(productID int64) (int, error)
	// Relink move as vendas de um produto auto-criado para o produto canônico.
	Relink(fromID, toID int64) (int, error)
}
