package repository

import "github.com/oliveirafjdo-web/Mega/internal/domain/entity"

// UserRepository define a porta de persistência para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
