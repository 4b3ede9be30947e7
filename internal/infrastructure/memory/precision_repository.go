// Package memory implementa los puertos de repositorio en memoria, para
// PRECISION_SOURCE=config y para tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

var _ repository.PrecisionRepository = (*PrecisionRepo)(nil)

type precisionKey struct {
	docType   string
	fieldName string
}

// PrecisionRepo guarda las precisiones en un mapa protegido por RWMutex.
type PrecisionRepo struct {
	mu    sync.RWMutex
	items map[precisionKey]entity.FieldPrecision
}

// NewPrecisionRepository construye el repositorio con valores iniciales opcionales.
func NewPrecisionRepository(seed ...entity.FieldPrecision) *PrecisionRepo {
	r := &PrecisionRepo{items: make(map[precisionKey]entity.FieldPrecision, len(seed))}
	for _, fp := range seed {
		r.items[precisionKey{fp.DocType, fp.FieldName}] = fp
	}
	return r
}

// Get devuelve la precisión del par (doctype, campo).
func (r *PrecisionRepo) Get(_ context.Context, docType, fieldName string) (int32, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fp, ok := r.items[precisionKey{docType, fieldName}]
	return fp.Precision, ok, nil
}

// Set inserta o reemplaza la precisión.
func (r *PrecisionRepo) Set(_ context.Context, p *entity.FieldPrecision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[precisionKey{p.DocType, p.FieldName}] = *p
	return nil
}

// List devuelve las precisiones del doctype ordenadas por campo.
func (r *PrecisionRepo) List(_ context.Context, docType string) ([]*entity.FieldPrecision, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.FieldPrecision, 0)
	for k, fp := range r.items {
		if k.docType != docType {
			continue
		}
		fp := fp
		out = append(out, &fp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FieldName < out[j].FieldName })
	return out, nil
}
