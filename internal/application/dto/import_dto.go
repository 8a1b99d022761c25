package dto

// SalesImportResponse resumo de uma importação de vendas do Mercado Livre.
type SalesImportResponse struct {
	Lote             string `json:"lote"`
	VendasImportadas int    `json:"vendas_importadas"`
	VendasSemSKU     int    `json:"vendas_sem_sku"`
	VendasSemProduto int    `json:"vendas_sem_produto"`
	RelatorioGerado  bool   `json:"relatorio_gerado"`
	RelatorioArquivo string `json:"relatorio_arquivo,omitempty"`
	RelatorioUF      string `json:"relatorio_uf,omitempty"`
}

// ProductImportResponse resumo de uma importação de produtos.
type ProductImportResponse struct {
	Inseridos   int      `json:"inseridos"`
	Atualizados int      `json:"atualizados"`
	Erros       []string `json:"erros,omitempty"`
}

// SettlementImportResponse resumo de uma importação de liquidações do
// Mercado Pago.
type SettlementImportResponse struct {
	Lote        string `json:"lote"`
	Novas       int    `json:"novas"`
	Atualizadas int    `json:"atualizadas"`
	Ignoradas   int    `json:"ignoradas"`
}
