package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

var _ repository.PrecisionRepository = (*PrecisionRepo)(nil)

// PrecisionRepo implementación de PrecisionRepository sobre la tabla field_precisions.
type PrecisionRepo struct {
	q Querier
}

// NewPrecisionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPrecisionRepository(q Querier) *PrecisionRepo {
	return &PrecisionRepo{q: q}
}

// Get obtiene la precisión de un campo; ok=false si no hay fila.
func (r *PrecisionRepo) Get(ctx context.Context, docType, fieldName string) (int32, bool, error) {
	query := `
		SELECT precision FROM field_precisions
		WHERE doctype = $1 AND fieldname = $2`
	var p int32
	err := r.q.QueryRow(ctx, query, docType, fieldName).Scan(&p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get field precision: %w", err)
	}
	return p, true, nil
}

// Set inserta o actualiza la precisión (por doctype y campo).
func (r *PrecisionRepo) Set(ctx context.Context, p *entity.FieldPrecision) error {
	query := `
		INSERT INTO field_precisions (doctype, fieldname, precision, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (doctype, fieldname)
		DO UPDATE SET precision = EXCLUDED.precision, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, p.DocType, p.FieldName, p.Precision, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert field precision: %w", err)
	}
	return nil
}

// List devuelve las precisiones configuradas de un doctype.
func (r *PrecisionRepo) List(ctx context.Context, docType string) ([]*entity.FieldPrecision, error) {
	query := `
		SELECT doctype, fieldname, precision, updated_at
		FROM field_precisions WHERE doctype = $1
		ORDER BY fieldname`
	rows, err := r.q.Query(ctx, query, docType)
	if err != nil {
		return nil, fmt.Errorf("list field precisions: %w", err)
	}
	defer rows.Close()

	var out []*entity.FieldPrecision
	for rows.Next() {
		var fp entity.FieldPrecision
		if err := rows.Scan(&fp.DocType, &fp.FieldName, &fp.Precision, &fp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan field precision: %w", err)
		}
		out = append(out, &fp)
	}
	return out, rows.Err()
}
