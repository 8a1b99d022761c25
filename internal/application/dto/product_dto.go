package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para criar um produto.
type CreateProductRequest struct {
	SKU            string          `json:"sku" validate:"required,min=1,max=100"`
	Nome           string          `json:"nome" validate:"required,min=1,max=255"`
	Custo          decimal.Decimal `json:"custo"`
	PrecoSugerido  decimal.Decimal `json:"preco_sugerido"`
	EstoqueInicial int             `json:"estoque_inicial"`
}

// UpdateProductRequest entrada para atualizar um produto. O custo não entra:
// só muda via entrada de estoque (média ponderada).
type UpdateProductRequest struct {
	Nome          *string          `json:"nome"`
	SKU           *string          `json:"sku"`
	PrecoSugerido *decimal.Decimal `json:"preco_sugerido"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID                    int64           `json:"id"`
	SKU                   string          `json:"sku"`
	Nome                  string          `json:"nome"`
	Custo                 decimal.Decimal `json:"custo"`
	PrecoSugerido         decimal.Decimal `json:"preco_sugerido"`
	Estoque               int             `json:"estoque"`
	CriadoAutomaticamente bool            `json:"criado_automaticamente"`
	VinculadoA            *int64          `json:"vinculado_a,omitempty"`
}

// LinkProductRequest destino do vínculo de um produto criado automaticamente.
type LinkProductRequest struct {
	DestinoID int64 `json:"destino_id" validate:"required"`
}

// OrphanRepairResponse resultado da regeneração de produtos para vendas órfãs.
type OrphanRepairResponse struct {
	ProdutosCriados  int `json:"produtos_criados"`
	VendasVinculadas int `json:"vendas_vinculadas"`
}
