package repository

import "github.com/segupro/polizas-api/internal/domain/entity"

// ParteRepository define el puerto de persistencia para una variante de parte
// (contratantes o asegurados; misma forma, tablas separadas).
type ParteRepository interface {
	// Upsert resuelve la parte por documento: si existe, sobreescribe sus datos
	// de contacto con el payload; si no, la crea. Debe ser a prueba de carreras
	// (unique index + insert con manejo de conflicto, no check-then-create).
	// Devuelve el registro persistido, con su ID canónico.
	Upsert(p *entity.Parte) (*entity.Parte, error)
	// Create inserta sin resolver conflictos: documento duplicado → ErrDuplicate.
	Create(p *entity.Parte) error
	GetByID(id string) (*entity.Parte, error)
	GetByDocumento(documento string) (*entity.Parte, error)
	List(limit, offset int) ([]*entity.Parte, error)
	Update(p *entity.Parte) error
	Delete(id string) error
}
