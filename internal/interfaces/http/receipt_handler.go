package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/application/receipt"
)

// ReceiptHandler maneja la conciliación de líneas de recepción de compra (protegido).
type ReceiptHandler struct {
	uc *receipt.ReconcileUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipt.ReconcileUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Reconcile godoc
// @Summary      Conciliar cantidades de una línea
// @Description  Aplica la regla del campo editado (qty, received_qty o rejected_qty).
// @Description  Un error de conciliación no es fatal: se responde 200 con la línea en cero y "validation".
// @Tags         purchase-receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileLineRequest  true  "edited_field, qty, received_qty, rejected_qty, precision (opcional)"
// @Success      200   {object}  dto.ReconcileLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/purchase-receipts/items/reconcile [post]
func (h *ReceiptHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileLineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.ReconcileLine(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Check godoc
// @Summary      Verificar líneas de una recepción
// @Description  Comprueba qty + rejected_qty = received_qty en cada línea sin modificarlas.
// @Tags         purchase-receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckLinesRequest  true  "items"
// @Success      200   {object}  dto.CheckLinesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-receipts/items/check [post]
func (h *ReceiptHandler) Check(c *fiber.Ctx) error {
	var in dto.CheckLinesRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CheckLines(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
