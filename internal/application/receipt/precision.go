package receipt

import (
	"context"
	"fmt"

	"github.com/jhoicas/Recepcion-api/internal/domain"
	domainreceipt "github.com/jhoicas/Recepcion-api/internal/domain/receipt"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

// PrecisionResolver obtiene la precisión a aplicar a una línea:
// la explícita del request, si no la menor de las configuradas para los campos
// de cantidad del doctype, si no la de defecto.
// Toda la línea usa una misma precisión: así aceptado + rechazado == recibido.
type PrecisionResolver struct {
	repo             repository.PrecisionRepository
	defaultDocType   string
	defaultPrecision int32
}

// NewPrecisionResolver construye el resolver.
func NewPrecisionResolver(repo repository.PrecisionRepository, defaultDocType string, defaultPrecision int32) *PrecisionResolver {
	return &PrecisionResolver{repo: repo, defaultDocType: defaultDocType, defaultPrecision: defaultPrecision}
}

// DocType devuelve docType o el doctype por defecto si viene vacío.
func (r *PrecisionResolver) DocType(docType string) string {
	if docType == "" {
		return r.defaultDocType
	}
	return docType
}

// Default precisión usada cuando no hay configuración.
func (r *PrecisionResolver) Default() int32 {
	return r.defaultPrecision
}

// Resolve devuelve la precisión efectiva.
func (r *PrecisionResolver) Resolve(ctx context.Context, docType string, explicit *int32) (int32, error) {
	if explicit != nil {
		if *explicit < 0 || *explicit > domainreceipt.MaxPrecision {
			return 0, fmt.Errorf("%w: precisión %d fuera de rango", domain.ErrInvalidInput, *explicit)
		}
		return *explicit, nil
	}
	list, err := r.repo.List(ctx, r.DocType(docType))
	if err != nil {
		return 0, fmt.Errorf("resolver precisión: %w", err)
	}
	precision, found := r.defaultPrecision, false
	for _, fp := range list {
		if _, err := domainreceipt.ParseField(fp.FieldName); err != nil {
			continue
		}
		if !found || fp.Precision < precision {
			precision, found = fp.Precision, true
		}
	}
	return precision, nil
}
