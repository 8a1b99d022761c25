package usecase

import (
	"time"

	"github.com/oliveirafjdo-web/Mega/internal/application/dto"
	"github.com/oliveirafjdo-web/Mega/internal/domain/repository"
	"github.com/oliveirafjdo-web/Mega/pkg/logger"
)

// SaleUseCase listagem de vendas e gestão dos lotes de importação.
type SaleUseCase struct {
	sales repository.SaleRepository
	log   *logger.Logger
}

// NewSaleUseCase constrói o caso de uso de vendas.
func NewSaleUseCase(sales repository.SaleRepository, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{sales: sales, log: log}
}

// List devolve as vendas do filtro com os totais de receita e margem.
// Canceladas (receita <= 0) aparecem na lista mas não somam nos totais.
func (uc *SaleUseCase) List(dataInicio, dataFim, lote string) (*dto.SaleListResponse, error) {
	rows, err := uc.sales.List(saleFilter(dataInicio, dataFim, lote))
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleListResponse{Items: make([]dto.SaleResponse, 0, len(rows))}
	for _, row := range rows {
		item := saleRowToDTO(row)
		resp.Items = append(resp.Items, item)
		if !item.Cancelada {
			resp.ReceitaTotal = resp.ReceitaTotal.Add(row.Sale.ReceitaBruta)
			resp.MargemTotal = resp.MargemTotal.Add(row.Sale.Margem)
		}
	}
	return resp, nil
}

// Export devolve as linhas cruas do filtro, prontas para a exportação em
// planilha.
func (uc *SaleUseCase) Export(dataInicio, dataFim, lote string) ([]*repository.SaleRow, error) {
	return uc.sales.List(saleFilter(dataInicio, dataFim, lote))
}

// saleFilter interpreta as datas ISO do filtro; inválidas ou vazias não filtram.
func saleFilter(dataInicio, dataFim, lote string) repository.SaleFilter {
	filter := repository.SaleFilter{Lote: lote}
	if t, err := time.ParseInLocation("2006-01-02", dataInicio, time.Local); err == nil {
		filter.From = &t
	}
	if t, err := time.ParseInLocation("2006-01-02", dataFim, time.Local); err == nil {
		fim := t.Add(24*time.Hour - time.Second)
		filter.To = &fim
	}
	return filter
}

// ListBatches devolve os lotes de importação de vendas, mais recente primeiro.
func (uc *SaleUseCase) ListBatches() ([]dto.BatchResponse, error) {
	lotes, err := uc.sales.ListBatches()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BatchResponse, 0, len(lotes))
	for _, l := range lotes {
		out = append(out, dto.BatchResponse{
			Lote:         l.Lote,
			TotalVendas:  l.TotalVendas,
			PrimeiraData: l.PrimeiraData,
			UltimaData:   l.UltimaData,
			ReceitaTotal: l.ReceitaTotal,
		})
	}
	return out, nil
}

// DeleteBatch remove todas as vendas do lote. O estoque baixado na
// importação não é devolvido.
func (uc *SaleUseCase) DeleteBatch(lote string) (int, error) {
	n, err := uc.sales.DeleteBatch(lote)
	if err != nil {
		return 0, err
	}
	uc.log.Info().Str("lote", lote).Int("vendas", n).Msg("lote de vendas excluído")
	return n, nil
}

func saleRowToDTO(row *repository.SaleRow) dto.SaleResponse {
	s := row.Sale
	return dto.SaleResponse{
		ID:             s.ID,
		ProdutoID:      s.ProductID,
		ProdutoNome:    row.ProdutoNome,
		ProdutoSKU:     row.ProdutoSKU,
		DataVenda:      s.DataVenda,
		Quantidade:     s.Quantidade,
		PrecoUnitario:  s.PrecoUnitario,
		ReceitaBruta:   s.ReceitaBruta,
		Comissao:       s.Comissao,
		ReceitaLiquida: s.ReceitaLiquida,
		Custo:          s.Custo,
		Margem:         s.Margem,
		Origem:         s.Origem,
		NumeroVendaML:  s.NumeroVendaML,
		Lote:           s.LoteImportacao,
		Estado:         s.Estado,
		Cancelada:      !s.ReceitaBruta.IsPositive(),
	}
}
