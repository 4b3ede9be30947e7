package entity

import "time"

// FieldPrecision número de decimales configurado para un campo de un tipo de documento
// (p. ej. "Purchase Receipt Item" / "qty").
type FieldPrecision struct {
	DocType   string
	FieldName string
	Precision int32
	UpdatedAt time.Time
}
