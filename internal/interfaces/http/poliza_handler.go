package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/application/usecase"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

// PolizaHandler CRUD de pólizas, consulta de próximas renovaciones y lookups
// para formularios.
type PolizaHandler struct {
	uc *usecase.PolizaUseCase
}

// NewPolizaHandler construye el handler.
func NewPolizaHandler(uc *usecase.PolizaUseCase) *PolizaHandler {
	return &PolizaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear póliza
// @Tags         polizas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePolizaRequest  true  "Datos de la póliza con contratante y asegurado embebidos"
// @Success      201   {object}  dto.PolizaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/polizas [post]
func (h *PolizaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePolizaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener póliza por ID con relaciones resueltas
// @Tags         polizas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la póliza"
// @Success      200  {object}  dto.PolizaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/polizas/{id} [get]
func (h *PolizaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pólizas
// @Tags         polizas
// @Security     Bearer
// @Produce      json
// @Param        aseguradora_id  query  string  false  "Filtrar por aseguradora"
// @Param        ramo_id         query  string  false  "Filtrar por ramo"
// @Param        contratante_id  query  string  false  "Filtrar por contratante"
// @Param        asegurado_id    query  string  false  "Filtrar por asegurado"
// @Param        limit           query  int     false  "Límite"   default(20)
// @Param        offset          query  int     false  "Offset"   default(0)
// @Success      200  {array}  dto.PolizaResponse
// @Router       /api/polizas [get]
func (h *PolizaHandler) List(c *fiber.Ctx) error {
	filter := repository.PolizaFilter{
		AseguradoraID: c.Query("aseguradora_id"),
		RamoID:        c.Query("ramo_id"),
		ContratanteID: c.Query("contratante_id"),
		AseguradoID:   c.Query("asegurado_id"),
	}
	limit, offset := pagina(c)
	out, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar póliza
// @Tags         polizas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la póliza"
// @Param        body  body  dto.UpdatePolizaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PolizaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/polizas/{id} [patch]
func (h *PolizaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePolizaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar póliza
// @Tags         polizas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la póliza"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/polizas/{id} [delete]
func (h *PolizaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ProximasRenovacion godoc
// @Summary      Pólizas con renovación en o después de la fecha de referencia
// @Tags         polizas
// @Security     Bearer
// @Produce      json
// @Param        fecha           query  string  false  "YYYY-MM-DD; default hoy"
// @Param        aseguradora_id  query  string  false  "Filtrar por aseguradora"
// @Param        ramo_id         query  string  false  "Filtrar por ramo"
// @Param        contratante_id  query  string  false  "Filtrar por contratante"
// @Success      200  {array}   dto.PolizaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/polizas/proximas-renovacion [get]
func (h *PolizaHandler) ProximasRenovacion(c *fiber.Ctx) error {
	filter := repository.RenovacionFilter{
		AseguradoraID: c.Query("aseguradora_id"),
		RamoID:        c.Query("ramo_id"),
		ContratanteID: c.Query("contratante_id"),
	}
	out, err := h.uc.ProximasRenovacion(c.Query("fecha"), filter)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Opciones godoc
// @Summary      Listas de lookup para formularios
// @Tags         polizas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OpcionesResponse
// @Router       /api/polizas/opciones [get]
func (h *PolizaHandler) Opciones(c *fiber.Ctx) error {
	out, err := h.uc.Opciones()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
