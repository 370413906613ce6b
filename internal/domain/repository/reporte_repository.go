package repository

import "github.com/segupro/polizas-api/internal/domain/entity"

// ReporteRepository define el puerto de persistencia para ReporteGenerado.
// Solo alta y consulta: el registro es append-only.
type ReporteRepository interface {
	Create(r *entity.ReporteGenerado) error
	ListByUsuario(usuarioID string, limit, offset int) ([]*entity.ReporteGenerado, error)
}
