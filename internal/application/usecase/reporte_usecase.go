package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

// TablaExporter renderiza un conjunto de filas como documento descargable.
// Lo implementan los exportadores XLSX (excelize) y PDF (maroto).
type TablaExporter interface {
	Render(titulo string, encabezados []string, filas [][]string) ([]byte, error)
	Extension() string
	ContentType() string
}

// ExportResult documento generado listo para descargar.
type ExportResult struct {
	Archivo     []byte
	Nombre      string
	ContentType string
}

// ReporteParams filtros crudos del endpoint de reportes, tal como llegan en
// la query. Las fechas se aplican solo si AMBAS parsean; un par inválido se
// ignora sin error (comportamiento histórico de este endpoint, distinto del
// de próximas renovaciones, que rechaza con 400).
type ReporteParams struct {
	FechaDesde    string
	FechaHasta    string
	AseguradoraID string
	ContratanteID string
	AseguradoID   string
}

// ReporteUseCase consultas filtradas de pólizas, exportación a XLSX/PDF y
// registro de auditoría de cada reporte generado.
type ReporteUseCase struct {
	polizas   repository.PolizaRepository
	reportes  repository.ReporteRepository
	exporters map[string]TablaExporter // por extensión: "xlsx", "pdf"
}

// NewReporteUseCase construye el caso de uso. Los exporters se indexan por
// su extensión.
func NewReporteUseCase(polizas repository.PolizaRepository, reportes repository.ReporteRepository, exporters ...TablaExporter) *ReporteUseCase {
	m := make(map[string]TablaExporter, len(exporters))
	for _, e := range exporters {
		m[e.Extension()] = e
	}
	return &ReporteUseCase{polizas: polizas, reportes: reportes, exporters: m}
}

// Filtrar devuelve las pólizas que cumplen los filtros, orden ascendente por
// fecha de inicio.
func (uc *ReporteUseCase) Filtrar(params ReporteParams, limit, offset int) ([]*dto.PolizaResponse, error) {
	list, err := uc.polizas.List(params.toFilter(), limit, offset)
	if err != nil {
		return nil, err
	}
	return toPolizaResponses(list), nil
}

// ExportPolizas genera el documento del reporte filtrado y registra la
// generación a nombre del usuario.
func (uc *ReporteUseCase) ExportPolizas(params ReporteParams, usuarioID, formato string) (*ExportResult, error) {
	exporter, err := uc.exporter(formato)
	if err != nil {
		return nil, err
	}
	// sin paginación: el export es el conjunto completo
	list, err := uc.polizas.List(params.toFilter(), exportTope, 0)
	if err != nil {
		return nil, err
	}

	encabezados := []string{
		"N° Póliza", "Aseguradora", "Ramo", "Forma de Pago", "Contratante",
		"Asegurado", "Fecha Inicio", "Fecha Fin", "Prima Total", "Renovación",
	}
	filas := make([][]string, 0, len(list))
	for _, d := range list {
		filas = append(filas, []string{
			d.Numero,
			nombreODash(d.Aseguradora != nil, func() string { return d.Aseguradora.Nombre }),
			nombreODash(d.Ramo != nil, func() string { return d.Ramo.Nombre }),
			nombreODash(d.FormaPago != nil, func() string { return d.FormaPago.Nombre }),
			nombreODash(d.Contratante != nil, func() string { return d.Contratante.Nombre }),
			nombreODash(d.Asegurado != nil, func() string { return d.Asegurado.Nombre }),
			d.FechaInicio.Format(FechaLayout),
			d.FechaFin.Format(FechaLayout),
			d.PrimaTotal.StringFixed(2),
			d.Renovacion.Format(FechaLayout),
		})
	}

	archivo, err := exporter.Render("Reporte de Pólizas", encabezados, filas)
	if err != nil {
		return nil, err
	}
	nombre := fmt.Sprintf("reporte_polizas_%s.%s", time.Now().Format("20060102_150405"), exporter.Extension())

	if err := uc.registrar(usuarioID, entity.ReporteTipoPolizas, nombre, params.toParametros(formato)); err != nil {
		return nil, err
	}
	return &ExportResult{Archivo: archivo, Nombre: nombre, ContentType: exporter.ContentType()}, nil
}

// ExportRenovaciones genera el documento de próximas renovaciones. La fecha
// de referencia sigue la regla del endpoint de consulta: default hoy,
// malformada → error de validación.
func (uc *ReporteUseCase) ExportRenovaciones(fecha string, filter repository.RenovacionFilter, usuarioID, formato string) (*ExportResult, error) {
	exporter, err := uc.exporter(formato)
	if err != nil {
		return nil, err
	}
	filter.Desde = hoy()
	if fecha != "" {
		parsed, err := time.Parse(FechaLayout, fecha)
		if err != nil {
			return nil, domain.NewValidationError("fecha", "formato esperado YYYY-MM-DD")
		}
		filter.Desde = parsed
	}
	list, err := uc.polizas.ListProximasRenovacion(filter)
	if err != nil {
		return nil, err
	}

	encabezados := []string{
		"Aseguradora", "Ramo", "Forma de Pago", "N° Póliza", "Contratante",
		"Asegurado", "Vigencia", "I Trimestre", "II Trimestre", "III Trimestre",
		"IV Trimestre", "Prima Total", "Renovación",
	}
	filas := make([][]string, 0, len(list))
	for _, d := range list {
		filas = append(filas, []string{
			nombreODash(d.Aseguradora != nil, func() string { return d.Aseguradora.Nombre }),
			nombreODash(d.Ramo != nil, func() string { return d.Ramo.Nombre }),
			nombreODash(d.FormaPago != nil, func() string { return d.FormaPago.Nombre }),
			d.Numero,
			nombreODash(d.Contratante != nil, func() string { return d.Contratante.Nombre }),
			nombreODash(d.Asegurado != nil, func() string { return d.Asegurado.Nombre }),
			d.FechaInicio.Format(FechaLayout) + " - " + d.FechaFin.Format(FechaLayout),
			d.ITrimestre.StringFixed(2),
			d.IITrimestre.StringFixed(2),
			d.IIITrimestre.StringFixed(2),
			d.IVTrimestre.StringFixed(2),
			d.PrimaTotal.StringFixed(2),
			d.Renovacion.Format(FechaLayout),
		})
	}

	archivo, err := exporter.Render("Pólizas Próximas a Renovación", encabezados, filas)
	if err != nil {
		return nil, err
	}
	nombre := fmt.Sprintf("renovaciones_%s.%s", time.Now().Format("20060102_150405"), exporter.Extension())

	parametros := map[string]string{"formato": formato}
	if fecha != "" {
		parametros["fecha"] = fecha
	}
	if err := uc.registrar(usuarioID, entity.ReporteTipoRenovaciones, nombre, parametros); err != nil {
		return nil, err
	}
	return &ExportResult{Archivo: archivo, Nombre: nombre, ContentType: exporter.ContentType()}, nil
}

// Historial reportes generados por el usuario, más reciente primero.
func (uc *ReporteUseCase) Historial(usuarioID string, limit, offset int) ([]*dto.ReporteGeneradoResponse, error) {
	list, err := uc.reportes.ListByUsuario(usuarioID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReporteGeneradoResponse, 0, len(list))
	for _, r := range list {
		out = append(out, &dto.ReporteGeneradoResponse{
			ID:              r.ID,
			FechaGeneracion: r.FechaGeneracion,
			Parametros:      r.Parametros,
			ArchivoPath:     r.ArchivoPath,
			TipoReporte:     r.TipoReporte,
		})
	}
	return out, nil
}

const exportTope = 10000

func (uc *ReporteUseCase) exporter(formato string) (TablaExporter, error) {
	if formato == "" {
		formato = "xlsx"
	}
	e, ok := uc.exporters[formato]
	if !ok {
		return nil, domain.NewValidationError("formato", "formato no soportado: "+formato)
	}
	return e, nil
}

func (uc *ReporteUseCase) registrar(usuarioID, tipo, nombre string, parametros map[string]string) error {
	return uc.reportes.Create(&entity.ReporteGenerado{
		ID:              uuid.New().String(),
		UsuarioID:       usuarioID,
		FechaGeneracion: time.Now(),
		Parametros:      parametros,
		ArchivoPath:     nombre,
		TipoReporte:     tipo,
	})
}

func (p ReporteParams) toFilter() repository.PolizaFilter {
	filter := repository.PolizaFilter{
		AseguradoraID: p.AseguradoraID,
		ContratanteID: p.ContratanteID,
		AseguradoID:   p.AseguradoID,
	}
	// El rango solo aplica si ambas fechas parsean; un par inválido se ignora.
	desde, errDesde := time.Parse(FechaLayout, p.FechaDesde)
	hasta, errHasta := time.Parse(FechaLayout, p.FechaHasta)
	if errDesde == nil && errHasta == nil {
		filter.FechaDesde = &desde
		filter.FechaHasta = &hasta
	}
	return filter
}

func (p ReporteParams) toParametros(formato string) map[string]string {
	out := map[string]string{"formato": formato}
	if p.FechaDesde != "" {
		out["fecha_desde"] = p.FechaDesde
	}
	if p.FechaHasta != "" {
		out["fecha_hasta"] = p.FechaHasta
	}
	if p.AseguradoraID != "" {
		out["aseguradora_id"] = p.AseguradoraID
	}
	if p.ContratanteID != "" {
		out["contratante_id"] = p.ContratanteID
	}
	if p.AseguradoID != "" {
		out["asegurado_id"] = p.AseguradoID
	}
	return out
}

func nombreODash(ok bool, nombre func() string) string {
	if !ok {
		return "-"
	}
	if n := nombre(); n != "" {
		return n
	}
	return "-"
}
