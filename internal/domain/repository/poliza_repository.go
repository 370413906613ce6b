package repository

import (
	"time"

	"github.com/segupro/polizas-api/internal/domain/entity"
)

// PolizaFilter filtros AND-combinados del listado y de reportes.
// Strings vacíos y punteros nil significan "sin filtro".
// El rango de fechas aplica sobre fecha_inicio, inclusivo en ambos extremos,
// y solo si ambos límites están presentes.
type PolizaFilter struct {
	AseguradoraID string
	RamoID        string
	ContratanteID string
	AseguradoID   string
	FechaDesde    *time.Time
	FechaHasta    *time.Time
}

// RenovacionFilter parámetros de la consulta de próximas renovaciones:
// renovacion >= Desde, sin cota superior, más filtros opcionales por entidad.
type RenovacionFilter struct {
	Desde         time.Time
	AseguradoraID string
	RamoID        string
	ContratanteID string
}

// PolizaRepository define el puerto de persistencia para Poliza.
// Los métodos *Detalle resuelven las relaciones (catálogos y partes) en la
// misma consulta; las lecturas de reportes siempre van por ahí.
type PolizaRepository interface {
	Create(p *entity.Poliza) error
	GetByID(id string) (*entity.Poliza, error)
	GetDetalleByID(id string) (*entity.PolizaDetalle, error)
	// List ordena ascendente por fecha_inicio.
	List(filter PolizaFilter, limit, offset int) ([]*entity.PolizaDetalle, error)
	// ListProximasRenovacion ordena ascendente por renovacion.
	ListProximasRenovacion(filter RenovacionFilter) ([]*entity.PolizaDetalle, error)
	Update(p *entity.Poliza) error
	Delete(id string) error
}
