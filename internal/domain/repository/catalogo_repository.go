package repository

import "github.com/segupro/polizas-api/internal/domain/entity"

// Puertos de persistencia de los catálogos. Delete devuelve ErrProtected si
// alguna póliza referencia el registro (la protección la impone la FK).

// AseguradoraRepository puerto de persistencia para Aseguradora.
type AseguradoraRepository interface {
	Create(a *entity.Aseguradora) error
	GetByID(id string) (*entity.Aseguradora, error)
	List(limit, offset int) ([]*entity.Aseguradora, error)
	Update(a *entity.Aseguradora) error
	Delete(id string) error
}

// RamoRepository puerto de persistencia para Ramo.
type RamoRepository interface {
	Create(r *entity.Ramo) error
	GetByID(id string) (*entity.Ramo, error)
	List(limit, offset int) ([]*entity.Ramo, error)
	Update(r *entity.Ramo) error
	Delete(id string) error
}

// FormaPagoRepository puerto de persistencia para FormaPago.
type FormaPagoRepository interface {
	Create(f *entity.FormaPago) error
	GetByID(id string) (*entity.FormaPago, error)
	List(limit, offset int) ([]*entity.FormaPago, error)
	Update(f *entity.FormaPago) error
	Delete(id string) error
}
