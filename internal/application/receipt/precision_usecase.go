package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	domainreceipt "github.com/jhoicas/Recepcion-api/internal/domain/receipt"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

// PrecisionUseCase consulta y actualiza la precisión configurada por campo.
type PrecisionUseCase struct {
	repo     repository.PrecisionRepository
	resolver *PrecisionResolver
}

// NewPrecisionUseCase construye el caso de uso.
func NewPrecisionUseCase(repo repository.PrecisionRepository, resolver *PrecisionResolver) *PrecisionUseCase {
	return &PrecisionUseCase{repo: repo, resolver: resolver}
}

// Get devuelve la precisión del campo; si no está configurada, la de defecto con Default=true.
func (uc *PrecisionUseCase) Get(ctx context.Context, docType, fieldName string) (*dto.FieldPrecisionResponse, error) {
	if docType == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := domainreceipt.ParseField(fieldName); err != nil {
		return nil, err
	}
	p, ok, err := uc.repo.Get(ctx, docType, fieldName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &dto.FieldPrecisionResponse{
			DocType:   docType,
			FieldName: fieldName,
			Precision: uc.resolver.Default(),
			Default:   true,
		}, nil
	}
	return &dto.FieldPrecisionResponse{DocType: docType, FieldName: fieldName, Precision: p}, nil
}

// Set guarda la precisión de un campo de cantidad.
func (uc *PrecisionUseCase) Set(ctx context.Context, docType, fieldName string, in dto.SetPrecisionRequest) (*dto.FieldPrecisionResponse, error) {
	if docType == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := domainreceipt.ParseField(fieldName); err != nil {
		return nil, err
	}
	if in.Precision < 0 || in.Precision > domainreceipt.MaxPrecision {
		return nil, fmt.Errorf("%w: precisión %d fuera de rango", domain.ErrInvalidInput, in.Precision)
	}
	fp := &entity.FieldPrecision{
		DocType:   docType,
		FieldName: fieldName,
		Precision: in.Precision,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Set(ctx, fp); err != nil {
		return nil, err
	}
	return toPrecisionResponse(fp), nil
}

// List lista las precisiones configuradas de un doctype.
func (uc *PrecisionUseCase) List(ctx context.Context, docType string) ([]*dto.FieldPrecisionResponse, error) {
	if docType == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, docType)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FieldPrecisionResponse, 0, len(list))
	for _, fp := range list {
		out = append(out, toPrecisionResponse(fp))
	}
	return out, nil
}

func toPrecisionResponse(fp *entity.FieldPrecision) *dto.FieldPrecisionResponse {
	updated := fp.UpdatedAt
	return &dto.FieldPrecisionResponse{
		DocType:   fp.DocType,
		FieldName: fp.FieldName,
		Precision: fp.Precision,
		UpdatedAt: &updated,
	}
}
