package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineQuantities cantidades de una línea de recepción de compra.
type LineQuantities struct {
	ItemCode         string          `json:"item_code,omitempty" yaml:"item_code,omitempty"`
	Quantity         decimal.Decimal `json:"qty" yaml:"qty"`
	ReceivedQuantity decimal.Decimal `json:"received_qty" yaml:"received_qty"`
	RejectedQuantity decimal.Decimal `json:"rejected_qty" yaml:"rejected_qty"`
}

// ReconcileLineRequest body para POST /api/purchase-receipts/items/reconcile.
// EditedField: qty | received_qty | rejected_qty. Precision vacía = configuración del doctype.
type ReconcileLineRequest struct {
	LineQuantities
	EditedField string `json:"edited_field"`
	DocType     string `json:"doctype,omitempty"`
	Precision   *int32 `json:"precision,omitempty"`
}

// ValidationMessage error recuperable de conciliación; la UI decide cómo mostrarlo.
type ValidationMessage struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// ReconcileLineResponse línea corregida y mensaje opcional.
type ReconcileLineResponse struct {
	Item       LineQuantities     `json:"item" yaml:"item"`
	Precision  int32              `json:"precision" yaml:"precision"`
	Validation *ValidationMessage `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// CheckLinesRequest body para POST /api/purchase-receipts/items/check.
type CheckLinesRequest struct {
	DocType   string           `json:"doctype,omitempty"`
	Precision *int32           `json:"precision,omitempty"`
	Items     []LineQuantities `json:"items"`
}

// LineCheckResult resultado de verificar una línea (Index base 0).
type LineCheckResult struct {
	Index      int                `json:"index" yaml:"index"`
	ItemCode   string             `json:"item_code,omitempty" yaml:"item_code,omitempty"`
	Valid      bool               `json:"valid" yaml:"valid"`
	Validation *ValidationMessage `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// CheckLinesResponse resultado del lote.
type CheckLinesResponse struct {
	Precision int32             `json:"precision"`
	Total     int               `json:"total"`
	Invalid   int               `json:"invalid"`
	Results   []LineCheckResult `json:"results"`
}

// SetPrecisionRequest body para PUT /api/precisions/:doctype/:field.
type SetPrecisionRequest struct {
	Precision int32 `json:"precision"`
}

// FieldPrecisionResponse precisión configurada para un campo.
type FieldPrecisionResponse struct {
	DocType   string     `json:"doctype"`
	FieldName string     `json:"field"`
	Precision int32      `json:"precision"`
	Default   bool       `json:"default,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
