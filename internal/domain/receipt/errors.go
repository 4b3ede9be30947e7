package receipt

import (
	"fmt"

	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/shopspring/decimal"
)

// QuantityError envuelve un error de conciliación con el detalle de los campos
// comparados. Usar errors.Is contra los sentinels de domain.
type QuantityError struct {
	Err     error
	Field   string
	Op      string
	Against Field
	Value   decimal.Decimal
	Limit   decimal.Decimal
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details())
}

// Details mensaje corto para mostrar al usuario, p. ej. "qty (12) > received_qty (10)".
func (e *QuantityError) Details() string {
	return fmt.Sprintf("%s (%s) %s %s (%s)", e.Field, e.Value.String(), e.Op, e.Against, e.Limit.String())
}

func (e *QuantityError) Unwrap() error {
	return e.Err
}

func acceptedExceedsReceived(li LineItem) *QuantityError {
	return &QuantityError{
		Err:     domain.ErrAcceptedExceedsReceived,
		Field:   string(FieldQuantity),
		Op:      ">",
		Against: FieldReceivedQuantity,
		Value:   li.Quantity,
		Limit:   li.ReceivedQuantity,
	}
}

func rejectedExceedsReceived(li LineItem) *QuantityError {
	return &QuantityError{
		Err:     domain.ErrRejectedExceedsReceived,
		Field:   string(FieldRejectedQuantity),
		Op:      ">",
		Against: FieldReceivedQuantity,
		Value:   li.RejectedQuantity,
		Limit:   li.ReceivedQuantity,
	}
}

func quantityMismatch(sum decimal.Decimal, li LineItem) *QuantityError {
	return &QuantityError{
		Err:     domain.ErrQuantityMismatch,
		Field:   string(FieldQuantity) + " + " + string(FieldRejectedQuantity),
		Op:      "!=",
		Against: FieldReceivedQuantity,
		Value:   sum,
		Limit:   li.ReceivedQuantity,
	}
}
