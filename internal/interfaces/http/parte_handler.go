package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/application/usecase"
)

// ParteHandler CRUD de una variante de parte. Se instancia dos veces: una
// para contratantes y otra para asegurados, cada una con su caso de uso.
type ParteHandler struct {
	uc *usecase.ParteUseCase
}

// NewParteHandler construye el handler para una variante.
func NewParteHandler(uc *usecase.ParteUseCase) *ParteHandler {
	return &ParteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear parte (contratante o asegurado)
// @Tags         partes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ParteRequest  true  "Datos de la parte"
// @Success      201   {object}  dto.ParteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contratantes [post]
func (h *ParteHandler) Create(c *fiber.Ctx) error {
	var in dto.ParteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener parte por ID
// @Tags         partes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la parte"
// @Success      200  {object}  dto.ParteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contratantes/{id} [get]
func (h *ParteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar partes
// @Tags         partes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.ParteResponse
// @Router       /api/contratantes [get]
func (h *ParteHandler) List(c *fiber.Ctx) error {
	limit, offset := pagina(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar parte
// @Tags         partes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la parte"
// @Param        body  body  dto.ParteUpdateRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ParteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contratantes/{id} [patch]
func (h *ParteHandler) Update(c *fiber.Ctx) error {
	var in dto.ParteUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar parte
// @Tags         partes
// @Security     Bearer
// @Param        id  path  string  true  "ID de la parte"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/contratantes/{id} [delete]
func (h *ParteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
