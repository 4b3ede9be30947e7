package receipt

import (
	"fmt"

	"github.com/jhoicas/Recepcion-api/internal/domain"
)

// OnReceivedQuantityChanged se aplica cuando el usuario edita received_qty.
// La cantidad aceptada nunca puede superar lo recibido, así que se recorta antes
// de recalcular el rechazo.
func OnReceivedQuantityChanged(item LineItem) (LineItem, error) {
	item = item.round(FieldQuantity, FieldReceivedQuantity)
	if item.Quantity.GreaterThan(item.ReceivedQuantity) {
		item.Quantity = item.ReceivedQuantity
	}
	return OnQuantityChanged(item)
}

// OnQuantityChanged se aplica cuando el usuario edita qty (aceptado).
//   - Primera captura (recibido y rechazado en cero): recibido := aceptado.
//   - aceptado > recibido: error y aceptado/rechazado quedan en cero.
//   - En otro caso rechazado := recibido - aceptado.
func OnQuantityChanged(item LineItem) (LineItem, error) {
	item = item.round(FieldQuantity, FieldReceivedQuantity)

	if item.ReceivedQuantity.IsZero() && item.RejectedQuantity.IsZero() && !item.Quantity.IsZero() {
		item.ReceivedQuantity = item.Quantity
	}

	if item.Quantity.GreaterThan(item.ReceivedQuantity) {
		err := acceptedExceedsReceived(item)
		return item.zeroed(), err
	}
	item.RejectedQuantity = Round(item.ReceivedQuantity.Sub(item.Quantity), item.Precision)
	return item, nil
}

// OnRejectedQuantityChanged se aplica cuando el usuario edita rejected_qty.
// Tras un error la línea se devuelve ya en cero, sin volver a derivar el rechazo.
func OnRejectedQuantityChanged(item LineItem) (LineItem, error) {
	item = item.round(FieldReceivedQuantity, FieldRejectedQuantity)

	if item.RejectedQuantity.GreaterThan(item.ReceivedQuantity) {
		err := rejectedExceedsReceived(item)
		return item.zeroed(), err
	}
	item.Quantity = Round(item.ReceivedQuantity.Sub(item.RejectedQuantity), item.Precision)
	return OnQuantityChanged(item)
}

// Reconcile despacha según el campo editado.
func Reconcile(field Field, item LineItem) (LineItem, error) {
	switch field {
	case FieldQuantity:
		return OnQuantityChanged(item)
	case FieldReceivedQuantity:
		return OnReceivedQuantityChanged(item)
	case FieldRejectedQuantity:
		return OnRejectedQuantityChanged(item)
	}
	return item, fmt.Errorf("%w: campo editado desconocido %q", domain.ErrInvalidInput, field)
}

// Check verifica la línea sin modificarla. Una línea con aceptado y rechazado
// en cero se considera válida (estado tras un error recuperado o línea vacía).
func Check(item LineItem) error {
	item = item.round(FieldQuantity, FieldReceivedQuantity, FieldRejectedQuantity)

	if item.Quantity.GreaterThan(item.ReceivedQuantity) {
		return acceptedExceedsReceived(item)
	}
	if item.RejectedQuantity.GreaterThan(item.ReceivedQuantity) {
		return rejectedExceedsReceived(item)
	}
	if item.Quantity.IsZero() && item.RejectedQuantity.IsZero() {
		return nil
	}
	if sum := item.Quantity.Add(item.RejectedQuantity); !sum.Equal(item.ReceivedQuantity) {
		return quantityMismatch(sum, item)
	}
	return nil
}
