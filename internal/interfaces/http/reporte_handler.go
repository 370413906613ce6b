package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/segupro/polizas-api/internal/application/usecase"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

// ReporteHandler consulta filtrada de pólizas, exportación a XLSX/PDF e
// historial de reportes del usuario.
type ReporteHandler struct {
	uc *usecase.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *usecase.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Filtrar godoc
// @Summary      Consultar pólizas con los filtros del reporte
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fecha_desde     query  string  false  "YYYY-MM-DD (aplica junto con fecha_hasta)"
// @Param        fecha_hasta     query  string  false  "YYYY-MM-DD (aplica junto con fecha_desde)"
// @Param        aseguradora_id  query  string  false  "Filtrar por aseguradora"
// @Param        contratante_id  query  string  false  "Filtrar por contratante"
// @Param        asegurado_id    query  string  false  "Filtrar por asegurado"
// @Param        limit           query  int     false  "Límite"   default(20)
// @Param        offset          query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.PolizaResponse
// @Router       /api/reportes/polizas [get]
func (h *ReporteHandler) Filtrar(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.Filtrar(reporteParams(c), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ExportPolizas godoc
// @Summary      Exportar el reporte de pólizas (xlsx o pdf)
// @Tags         reportes
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        formato         query  string  false  "xlsx | pdf"  default(xlsx)
// @Param        fecha_desde     query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta     query  string  false  "YYYY-MM-DD"
// @Param        aseguradora_id  query  string  false  "Filtrar por aseguradora"
// @Param        contratante_id  query  string  false  "Filtrar por contratante"
// @Param        asegurado_id    query  string  false  "Filtrar por asegurado"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/polizas/export [get]
func (h *ReporteHandler) ExportPolizas(c *fiber.Ctx) error {
	out, err := h.uc.ExportPolizas(reporteParams(c), GetUserID(c), c.Query("formato"))
	if err != nil {
		return handleError(c, err)
	}
	return enviarArchivo(c, out)
}

// ExportRenovaciones godoc
// @Summary      Exportar el reporte de próximas renovaciones (xlsx o pdf)
// @Tags         reportes
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        formato         query  string  false  "xlsx | pdf"  default(xlsx)
// @Param        fecha           query  string  false  "YYYY-MM-DD; default hoy"
// @Param        aseguradora_id  query  string  false  "Filtrar por aseguradora"
// @Param        ramo_id         query  string  false  "Filtrar por ramo"
// @Param        contratante_id  query  string  false  "Filtrar por contratante"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/renovaciones/export [get]
func (h *ReporteHandler) ExportRenovaciones(c *fiber.Ctx) error {
	filter := repository.RenovacionFilter{
		AseguradoraID: c.Query("aseguradora_id"),
		RamoID:        c.Query("ramo_id"),
		ContratanteID: c.Query("contratante_id"),
	}
	out, err := h.uc.ExportRenovaciones(c.Query("fecha"), filter, GetUserID(c), c.Query("formato"))
	if err != nil {
		return handleError(c, err)
	}
	return enviarArchivo(c, out)
}

// Historial godoc
// @Summary      Reportes generados por el usuario autenticado
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.ReporteGeneradoResponse
// @Router       /api/reportes/historial [get]
func (h *ReporteHandler) Historial(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.Historial(GetUserID(c), limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

func reporteParams(c *fiber.Ctx) usecase.ReporteParams {
	return usecase.ReporteParams{
		FechaDesde:    c.Query("fecha_desde"),
		FechaHasta:    c.Query("fecha_hasta"),
		AseguradoraID: c.Query("aseguradora_id"),
		ContratanteID: c.Query("contratante_id"),
		AseguradoID:   c.Query("asegurado_id"),
	}
}

func enviarArchivo(c *fiber.Ctx, out *usecase.ExportResult) error {
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+out.Nombre+`"`)
	return c.Send(out.Archivo)
}
