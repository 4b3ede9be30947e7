package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/application/receipt"
)

// PrecisionHandler expone la precisión configurada por doctype y campo.
type PrecisionHandler struct {
	uc *receipt.PrecisionUseCase
}

// NewPrecisionHandler construye el handler.
func NewPrecisionHandler(uc *receipt.PrecisionUseCase) *PrecisionHandler {
	return &PrecisionHandler{uc: uc}
}

// List godoc
// @Summary      Listar precisiones de un doctype
// @Tags         precisions
// @Security     Bearer
// @Produce      json
// @Param        doctype  path  string  true  "Doctype, p. ej. Purchase Receipt Item"
// @Success      200  {array}   dto.FieldPrecisionResponse
// @Router       /api/precisions/{doctype} [get]
func (h *PrecisionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pathParam(c, "doctype"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(out), "items": out})
}

// Get godoc
// @Summary      Precisión de un campo
// @Tags         precisions
// @Security     Bearer
// @Produce      json
// @Param        doctype  path  string  true  "Doctype"
// @Param        field    path  string  true  "Campo (qty, received_qty, rejected_qty)"
// @Success      200  {object}  dto.FieldPrecisionResponse
// @Router       /api/precisions/{doctype}/{field} [get]
func (h *PrecisionHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), pathParam(c, "doctype"), pathParam(c, "field"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Set godoc
// @Summary      Configurar precisión de un campo
// @Tags         precisions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        doctype  path  string  true  "Doctype"
// @Param        field    path  string  true  "Campo (qty, received_qty, rejected_qty)"
// @Param        body     body  dto.SetPrecisionRequest  true  "precision (0-9)"
// @Success      200  {object}  dto.FieldPrecisionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/precisions/{doctype}/{field} [put]
func (h *PrecisionHandler) Set(c *fiber.Ctx) error {
	var in dto.SetPrecisionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Set(c.UserContext(), pathParam(c, "doctype"), pathParam(c, "field"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// pathParam devuelve el parámetro decodificado ("Purchase%20Receipt%20Item" -> "Purchase Receipt Item").
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if s, err := url.PathUnescape(raw); err == nil {
		return s
	}
	return raw
}
