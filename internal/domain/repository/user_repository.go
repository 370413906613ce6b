package repository

import "github.com/segupro/polizas-api/internal/domain/entity"

// UserFilter filtros opcionales del listado de usuarios (vacío = sin filtro).
type UserFilter struct {
	Rol      string
	IsActive *bool
}

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List(filter UserFilter, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
}
