package entity

import "time"

// Tipos de reporte registrados.
const (
	ReporteTipoPolizas      = "polizas"
	ReporteTipoRenovaciones = "renovaciones"
)

// ReporteGenerado registro de auditoría de una generación de reporte.
// Append-only: se crea una vez por solicitud y nunca se modifica.
type ReporteGenerado struct {
	ID              string
	UsuarioID       string
	FechaGeneracion time.Time
	Parametros      map[string]string // parámetros de búsqueda usados
	ArchivoPath     string
	TipoReporte     string
}
