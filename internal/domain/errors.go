package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrUserNotFound      = errors.New("usuário não encontrado")
	ErrUsernameTaken     = errors.New("nome de usuário já cadastrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrMissingColumn     = errors.New("coluna obrigatória ausente na planilha")
	ErrMissingSheet      = errors.New("aba obrigatória ausente na planilha")
	ErrHasSales          = errors.New("produto possui vendas vinculadas")
	ErrSelfLink          = errors.New("produto não pode ser vinculado a si mesmo")
	ErrNotAutoCreated    = errors.New("produto não foi criado automaticamente")
	ErrEmptySpreadsheet  = errors.New("planilha sem linhas de dados")
	ErrUnsupportedFile   = errors.New("formato de arquivo não suportado")
)
