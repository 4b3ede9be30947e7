// Package receipt contiene las reglas de conciliación de cantidades de una línea
// de recepción de compra: recibido = aceptado + rechazado.
package receipt

import (
	"fmt"

	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxPrecision es el máximo de decimales admitido para un campo de cantidad.
const MaxPrecision int32 = 9

// Field identifica el campo de cantidad que el usuario editó por última vez.
type Field string

const (
	FieldQuantity         Field = "qty"
	FieldReceivedQuantity Field = "received_qty"
	FieldRejectedQuantity Field = "rejected_qty"
)

// ParseField convierte el nombre de campo recibido del cliente.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldQuantity, FieldReceivedQuantity, FieldRejectedQuantity:
		return f, nil
	}
	return "", fmt.Errorf("%w: campo editado desconocido %q", domain.ErrInvalidInput, s)
}

// LineItem cantidades de una línea de recepción.
// Quantity es la cantidad aceptada; ReceivedQuantity el total físico recibido.
type LineItem struct {
	Quantity         decimal.Decimal
	ReceivedQuantity decimal.Decimal
	RejectedQuantity decimal.Decimal
	Precision        int32
}

// Validate rechaza cantidades negativas y precisiones fuera de rango.
func (li LineItem) Validate() error {
	if li.Precision < 0 || li.Precision > MaxPrecision {
		return fmt.Errorf("%w: precisión %d fuera de rango [0, %d]", domain.ErrInvalidInput, li.Precision, MaxPrecision)
	}
	switch {
	case li.Quantity.IsNegative():
		return negative(FieldQuantity)
	case li.ReceivedQuantity.IsNegative():
		return negative(FieldReceivedQuantity)
	case li.RejectedQuantity.IsNegative():
		return negative(FieldRejectedQuantity)
	}
	return nil
}

func negative(f Field) error {
	return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, f)
}

// Round redondea a precision decimales (mitad lejos de cero: 10.005 -> 10.01).
func Round(d decimal.Decimal, precision int32) decimal.Decimal {
	return d.Round(precision)
}

func (li LineItem) round(fields ...Field) LineItem {
	for _, f := range fields {
		switch f {
		case FieldQuantity:
			li.Quantity = Round(li.Quantity, li.Precision)
		case FieldReceivedQuantity:
			li.ReceivedQuantity = Round(li.ReceivedQuantity, li.Precision)
		case FieldRejectedQuantity:
			li.RejectedQuantity = Round(li.RejectedQuantity, li.Precision)
		}
	}
	return li
}

// zeroed deja la línea en el estado seguro tras un error: aceptado y rechazado en cero.
func (li LineItem) zeroed() LineItem {
	li.Quantity = decimal.Zero
	li.RejectedQuantity = decimal.Zero
	return li
}
