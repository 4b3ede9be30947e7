package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")

	// Conciliación de cantidades de recepción de compra. Son recuperables:
	// la línea se devuelve en un estado consistente junto al error.
	ErrAcceptedExceedsReceived = errors.New("accepted quantity exceeds received quantity")
	ErrRejectedExceedsReceived = errors.New("rejected quantity exceeds received quantity")
	ErrQuantityMismatch        = errors.New("accepted + rejected quantity does not match received quantity")
)
