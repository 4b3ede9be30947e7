package receipt

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/domain"
	domainreceipt "github.com/jhoicas/Recepcion-api/internal/domain/receipt"
)

// Códigos de validación devueltos al cliente.
const (
	CodeAcceptedExceedsReceived = "ACCEPTED_EXCEEDS_RECEIVED"
	CodeRejectedExceedsReceived = "REJECTED_EXCEEDS_RECEIVED"
	CodeQuantityMismatch        = "QUANTITY_MISMATCH"
)

// ReconcileUseCase concilia cantidades de líneas de recepción de compra.
// No guarda estado: cada llamada recibe la línea completa y devuelve la corregida.
type ReconcileUseCase struct {
	precisions *PrecisionResolver
	log        zerolog.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(precisions *PrecisionResolver, log zerolog.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{
		precisions: precisions,
		log:        log.With().Str("component", "reconcile").Logger(),
	}
}

// ReconcileLine aplica la regla del campo editado. Los errores de conciliación se devuelven
// en Validation (la línea ya viene en cero); el error Go queda para entrada inválida o infraestructura.
func (uc *ReconcileUseCase) ReconcileLine(ctx context.Context, in dto.ReconcileLineRequest) (*dto.ReconcileLineResponse, error) {
	field, err := domainreceipt.ParseField(in.EditedField)
	if err != nil {
		return nil, err
	}
	precision, err := uc.precisions.Resolve(ctx, in.DocType, in.Precision)
	if err != nil {
		return nil, err
	}
	item := toLineItem(in.LineQuantities, precision)
	if err := item.Validate(); err != nil {
		return nil, err
	}

	out, recErr := domainreceipt.Reconcile(field, item)
	resp := &dto.ReconcileLineResponse{
		Item:      fromLineItem(in.ItemCode, out),
		Precision: precision,
	}
	if recErr != nil {
		msg, ok := ValidationMessage(recErr)
		if !ok {
			return nil, recErr
		}
		uc.log.Warn().
			Str("edited_field", string(field)).
			Str("item_code", in.ItemCode).
			Str("code", msg.Code).
			Msg(msg.Details)
		resp.Validation = msg
	}
	return resp, nil
}

// CheckLines verifica un lote de líneas sin modificarlas.
func (uc *ReconcileUseCase) CheckLines(ctx context.Context, in dto.CheckLinesRequest) (*dto.CheckLinesResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	precision, err := uc.precisions.Resolve(ctx, in.DocType, in.Precision)
	if err != nil {
		return nil, err
	}
	resp := &dto.CheckLinesResponse{
		Precision: precision,
		Total:     len(in.Items),
		Results:   make([]dto.LineCheckResult, 0, len(in.Items)),
	}
	for i, q := range in.Items {
		item := toLineItem(q, precision)
		if err := item.Validate(); err != nil {
			return nil, err
		}
		res := dto.LineCheckResult{Index: i, ItemCode: q.ItemCode, Valid: true}
		if err := domainreceipt.Check(item); err != nil {
			msg, ok := ValidationMessage(err)
			if !ok {
				return nil, err
			}
			res.Valid = false
			res.Validation = msg
			resp.Invalid++
		}
		resp.Results = append(resp.Results, res)
	}
	if resp.Invalid > 0 {
		uc.log.Debug().Int("total", resp.Total).Int("invalid", resp.Invalid).Msg("líneas inconsistentes")
	}
	return resp, nil
}

// ValidationMessage traduce un error de conciliación a su mensaje para el cliente.
// ok=false si err no es un error de conciliación.
func ValidationMessage(err error) (*dto.ValidationMessage, bool) {
	var code string
	switch {
	case errors.Is(err, domain.ErrAcceptedExceedsReceived):
		code = CodeAcceptedExceedsReceived
	case errors.Is(err, domain.ErrRejectedExceedsReceived):
		code = CodeRejectedExceedsReceived
	case errors.Is(err, domain.ErrQuantityMismatch):
		code = CodeQuantityMismatch
	default:
		return nil, false
	}
	msg := &dto.ValidationMessage{Code: code, Message: err.Error()}
	var qe *domainreceipt.QuantityError
	if errors.As(err, &qe) {
		msg.Message = qe.Err.Error()
		msg.Details = qe.Details()
	}
	return msg, true
}

func toLineItem(q dto.LineQuantities, precision int32) domainreceipt.LineItem {
	return domainreceipt.LineItem{
		Quantity:         q.Quantity,
		ReceivedQuantity: q.ReceivedQuantity,
		RejectedQuantity: q.RejectedQuantity,
		Precision:        precision,
	}
}

func fromLineItem(itemCode string, li domainreceipt.LineItem) dto.LineQuantities {
	return dto.LineQuantities{
		ItemCode:         itemCode,
		Quantity:         li.Quantity,
		ReceivedQuantity: li.ReceivedQuantity,
		RejectedQuantity: li.RejectedQuantity,
	}
}
