package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain"
	"github.com/oliveirafjdo-web/Mega/internal/domain/entity"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
	"github.com/oliveirafjdo-web/Mega/pkg/logger"
)

// ProductUseCase CRUD de produtos, gestão dos produtos auto-criados e
// regeneração de produtos para vendas órfãs.
type ProductUseCase struct {
	products repository.ProductRepository
	tx       TxRunner
	log      *logger.Logger
}

// NewProductUseCase constrói o caso de uso de produtos.
func NewProductUseCase(products repository.ProductRepository, tx TxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, tx: tx, log: log}
}

// Create cadastra um produto. O estoque inicial vira também o estoque atual.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := strings.TrimSpace(in.SKU)
	nome := strings.TrimSpace(in.Nome)
	if sku == "" || nome == "" {
		return nil, domain.ErrInvalidInput
	}

	p := &entity.Product{
		SKU:            sku,
		Nome:           nome,
		Custo:          in.Custo,
		PrecoSugerido:  in.PrecoSugerido,
		EstoqueInicial: in.EstoqueInicial,
		Estoque:        in.EstoqueInicial,
	}
	if err := uc.products.Create(p); err != nil {
		return nil, err
	}
	return productToDTO(p), nil
}

// Get devolve um produto por id.
func (uc *ProductUseCase) Get(id int64) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return productToDTO(p), nil
}

// List devolve o catálogo completo.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	return uc.list(false)
}

// ListAuto devolve apenas os produtos criados automaticamente pela
// regeneração de vendas órfãs.
func (uc *ProductUseCase) ListAuto() ([]dto.ProductResponse, error) {
	return uc.list(true)
}

func (uc *ProductUseCase) list(onlyAuto bool) ([]dto.ProductResponse, error) {
	produtos, err := uc.products.List(onlyAuto)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, *productToDTO(p))
	}
	return out, nil
}

// Update altera nome, SKU e preço sugerido. O custo fica de fora: ele só
// muda via entrada de estoque (média ponderada).
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.Nome != nil && strings.TrimSpace(*in.Nome) != "" {
		p.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.SKU != nil && strings.TrimSpace(*in.SKU) != "" {
		p.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.PrecoSugerido != nil {
		p.PrecoSugerido = *in.PrecoSugerido
	}

	if err := uc.products.Update(p); err != nil {
		return nil, err
	}
	return productToDTO(p), nil
}

// Delete remove um produto sem vendas. Com vendas vinculadas devolve
// ErrHasSales; nesse caso use DeleteWithSales.
func (uc *ProductUseCase) Delete(id int64) error {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	n, err := uc.products.CountSales(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasSales
	}
	return uc.products.Delete(id)
}

// DeleteWithSales remove o produto mesmo com vendas: elas ficam órfãs
// (produto nulo) e podem ser regeneradas depois por RepairOrphans.
func (uc *ProductUseCase) DeleteWithSales(id int64) error {
	p, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	uc.log.Warn().Int64("produto_id", id).Str("sku", p.SKU).
		Msg("produto excluído com vendas vinculadas")
	return uc.products.Delete(id)
}

// Link vincula um produto auto-criado ao produto real: move as vendas do
// alias para o canônico e marca o vínculo. Devolve quantas vendas migraram.
func (uc *ProductUseCase) Link(fromID, toID int64) (int, error) {
	if fromID == toID {
		return 0, domain.ErrSelfLink
	}
	from, err := uc.products.GetByID(fromID)
	if err != nil {
		return 0, err
	}
	if from == nil {
		return 0, domain.ErrNotFound
	}
	if !from.CriadoAutomaticamente {
		return 0, domain.ErrNotAutoCreated
	}
	to, err := uc.products.GetByID(toID)
	if err != nil {
		return 0, err
	}
	if to == nil {
		return 0, domain.ErrNotFound
	}

	moved, err := uc.products.Relink(fromID, toID)
	if err != nil {
		return 0, err
	}
	from.VinculadoA = &toID
	if err := uc.products.Update(from); err != nil {
		return 0, err
	}
	uc.log.Info().Int64("de", fromID).Int64("para", toID).Int("vendas", moved).
		Msg("produto automático vinculado")
	return moved, nil
}

// RepairOrphans cria produtos para vendas sem produto vinculado e as
// revincula, tudo em uma transação. Produtos nascem marcados como
// automáticos, com custo zero e o preço unitário da venda como sugerido;
// vendas do mesmo número compartilham o produto criado.
func (uc *ProductUseCase) RepairOrphans(ctx context.Context) (*dto.OrphanRepairResponse, error) {
	resp := &dto.OrphanRepairResponse{}

	err := uc.tx.Run(ctx, func(
		products repository.ProductRepository,
		sales repository.SaleRepository,
		_ repository.FinanceRepository,
	) error {
		orfas, err := sales.ListOrphans()
		if err != nil {
			return err
		}

		criados := make(map[string]int64)
		for _, venda := range orfas {
			nome := orphanProductName(venda)

			id, ok := criados[nome]
			if !ok {
				existente, err := products.GetByName(nome)
				if err != nil {
					return err
				}
				if existente != nil {
					id = existente.ID
				} else {
					p := &entity.Product{
						Nome:                  nome,
						PrecoSugerido:         venda.PrecoUnitario,
						CriadoAutomaticamente: true,
					}
					if err := products.Create(p); err != nil {
						return err
					}
					id = p.ID
					resp.ProdutosCriados++
				}
				criados[nome] = id
			}

			if err := sales.SetProduct(venda.ID, id); err != nil {
				return err
			}
			resp.VendasVinculadas++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int("produtos", resp.ProdutosCriados).Int("vendas", resp.VendasVinculadas).
		Msg("vendas órfãs regeneradas")
	return resp, nil
}

func orphanProductName(venda *entity.Sale) string {
	numero := venda.NumeroVendaML
	if numero == "" {
		numero = fmt.Sprintf("#%d", venda.ID)
	}
	nome := "Venda " + numero
	if venda.Origem != "" {
		nome = venda.Origem + " - " + nome
	}
	return nome
}

func productToDTO(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                    p.ID,
		SKU:                   p.SKU,
		Nome:                  p.Nome,
		Custo:                 p.Custo,
		PrecoSugerido:         p.PrecoSugerido,
		Estoque:               p.Estoque,
		CriadoAutomaticamente: p.CriadoAutomaticamente,
		VinculadoA:            p.VinculadoA,
	}
}
