package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/application/usecase"
)

// catalogoOps operaciones de un catálogo concreto dentro de CatalogoUseCase.
type catalogoOps struct {
	create func(dto.CatalogoRequest) (*dto.CatalogoResponse, error)
	get    func(string) (*dto.CatalogoResponse, error)
	list   func(limit, offset int) ([]*dto.CatalogoResponse, error)
	update func(string, dto.CatalogoRequest) (*dto.CatalogoResponse, error)
	delete func(string) error
}

// CatalogoHandler CRUD genérico de catálogo. Se instancia tres veces:
// aseguradoras, ramos y formas de pago.
type CatalogoHandler struct {
	ops catalogoOps
}

// NewAseguradoraHandler handler del catálogo de aseguradoras.
func NewAseguradoraHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{ops: catalogoOps{
		create: uc.CreateAseguradora,
		get:    uc.GetAseguradora,
		list:   uc.ListAseguradoras,
		update: uc.UpdateAseguradora,
		delete: uc.DeleteAseguradora,
	}}
}

// NewRamoHandler handler del catálogo de ramos.
func NewRamoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{ops: catalogoOps{
		create: uc.CreateRamo,
		get:    uc.GetRamo,
		list:   uc.ListRamos,
		update: uc.UpdateRamo,
		delete: uc.DeleteRamo,
	}}
}

// NewFormaPagoHandler handler del catálogo de formas de pago.
func NewFormaPagoHandler(uc *usecase.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{ops: catalogoOps{
		create: uc.CreateFormaPago,
		get:    uc.GetFormaPago,
		list:   uc.ListFormasPago,
		update: uc.UpdateFormaPago,
		delete: uc.DeleteFormaPago,
	}}
}

// Create godoc
// @Summary      Crear entrada de catálogo
// @Tags         catalogos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CatalogoRequest  true  "nombre, descripcion"
// @Success      201   {object}  dto.CatalogoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/aseguradoras [post]
func (h *CatalogoHandler) Create(c *fiber.Ctx) error {
	var in dto.CatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ops.create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada de catálogo
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.CatalogoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/aseguradoras/{id} [get]
func (h *CatalogoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.ops.get(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar catálogo
// @Tags         catalogos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.CatalogoResponse
// @Router       /api/aseguradoras [get]
func (h *CatalogoHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.ops.list(limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar entrada de catálogo
// @Tags         catalogos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.CatalogoRequest  true  "nombre, descripcion"
// @Success      200   {object}  dto.CatalogoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/aseguradoras/{id} [put]
func (h *CatalogoHandler) Update(c *fiber.Ctx) error {
	var in dto.CatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.ops.update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada de catálogo
// @Tags         catalogos
// @Security     Bearer
// @Param        id  path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/aseguradoras/{id} [delete]
func (h *CatalogoHandler) Delete(c *fiber.Ctx) error {
	if err := h.ops.delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
