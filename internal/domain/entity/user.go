package entity

import "time"

// User representa um usuário do painel. Instalação single-tenant: não há
// empresas nem papéis, todo usuário autenticado acessa tudo.
type User struct {
	ID           string
	Username     string
	PasswordHash string // hash bcrypt, nunca plano depois de persistido
	CreatedAt    time.Time
}
