package repository

import (
	"context"

	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
)

// PrecisionRepository define el puerto para la configuración de precisión por campo.
type PrecisionRepository interface {
	// Get devuelve la precisión configurada; ok=false si no hay valor para el par.
	Get(ctx context.Context, docType, fieldName string) (precision int32, ok bool, err error)
	Set(ctx context.Context, p *entity.FieldPrecision) error
	List(ctx context.Context, docType string) ([]*entity.FieldPrecision, error)
}
