package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Recepcion-api/internal/application/receipt"
	"github.com/rs/zerolog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Reconcile *receipt.ReconcileUseCase
	Precision *receipt.PrecisionUseCase
	JWTSecret string
	RateLimit int
	Log       zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Conciliación de líneas de recepción
	items := api.Group("/purchase-receipts/items")
	if deps.RateLimit > 0 {
		items.Use(RateLimit(deps.RateLimit))
	}
	receiptHandler := NewReceiptHandler(deps.Reconcile)
	items.Post("/reconcile", receiptHandler.Reconcile)
	items.Post("/check", receiptHandler.Check)

	// Precisión por doctype/campo
	precisions := api.Group("/precisions")
	precisionHandler := NewPrecisionHandler(deps.Precision)
	precisions.Get("/:doctype", precisionHandler.List)
	precisions.Get("/:doctype/:field", precisionHandler.Get)
	precisions.Put("/:doctype/:field", precisionHandler.Set)
}
