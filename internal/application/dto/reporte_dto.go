package dto

import "time"

// ReporteGeneradoResponse entrada del historial de reportes del usuario.
type ReporteGeneradoResponse struct {
	ID              string            `json:"id"`
	FechaGeneracion time.Time         `json:"fecha_generacion"`
	Parametros      map[string]string `json:"parametros"`
	ArchivoPath     string            `json:"archivo_path"`
	TipoReporte     string            `json:"tipo_reporte"`
}
