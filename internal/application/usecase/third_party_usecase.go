package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/jhoicas/gestion-api/pkg/phone"
)

// ThirdPartyUseCase casos de uso para clientes y proveedores.
type ThirdPartyUseCase struct {
	repo   repository.ThirdPartyRepository
	region string
}

// NewThirdPartyUseCase construye el caso de uso. region es la región por defecto de los teléfonos (ej: CO).
func NewThirdPartyUseCase(repo repository.ThirdPartyRepository, region string) *ThirdPartyUseCase {
	return &ThirdPartyUseCase{repo: repo, region: region}
}

// Create crea un tercero; el NIT/Cédula es único y el teléfono se guarda en E.164.
func (uc *ThirdPartyUseCase) Create(ctx context.Context, in dto.CreateThirdPartyRequest) (*dto.ThirdPartyResponse, error) {
	taxID := strings.TrimSpace(in.TaxID)
	if taxID == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	rel := entity.Relation(in.Relation)
	if !rel.Valid() {
		return nil, domain.Detail(domain.ErrInvalidInput, "relation debe ser CLIENT, SUPPLIER o BOTH")
	}
	tel, err := phone.Normalize(in.Phone, uc.region)
	if err != nil {
		return nil, domain.Detail(domain.ErrInvalidInput, "teléfono inválido")
	}
	existing, err := uc.repo.GetByTaxID(ctx, taxID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	tp := &entity.ThirdParty{
		ID:        uuid.New().String(),
		TaxID:     taxID,
		Name:      strings.TrimSpace(in.Name),
		Relation:  rel,
		Email:     strings.TrimSpace(in.Email),
		Phone:     tel,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, tp); err != nil {
		return nil, err
	}
	return toThirdPartyResponse(tp), nil
}

// GetByID obtiene un tercero por ID.
func (uc *ThirdPartyUseCase) GetByID(ctx context.Context, id string) (*dto.ThirdPartyResponse, error) {
	tp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tp == nil {
		return nil, domain.ErrNotFound
	}
	return toThirdPartyResponse(tp), nil
}

// Update actualiza los campos presentes.
func (uc *ThirdPartyUseCase) Update(ctx context.Context, id string, in dto.UpdateThirdPartyRequest) (*dto.ThirdPartyResponse, error) {
	tp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tp == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		tp.Name = strings.TrimSpace(*in.Name)
	}
	if in.Relation != nil {
		rel := entity.Relation(*in.Relation)
		if !rel.Valid() {
			return nil, domain.Detail(domain.ErrInvalidInput, "relation debe ser CLIENT, SUPPLIER o BOTH")
		}
		tp.Relation = rel
	}
	if in.Email != nil {
		tp.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		tel, err := phone.Normalize(*in.Phone, uc.region)
		if err != nil {
			return nil, domain.Detail(domain.ErrInvalidInput, "teléfono inválido")
		}
		tp.Phone = tel
	}
	if in.Active != nil {
		tp.Active = *in.Active
	}
	tp.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, tp); err != nil {
		return nil, err
	}
	return toThirdPartyResponse(tp), nil
}

// List lista terceros; relation vacío = todos. Un filtro CLIENT o SUPPLIER incluye a los BOTH.
func (uc *ThirdPartyUseCase) List(ctx context.Context, relation string, includeInactive bool, limit, offset int) (*dto.ThirdPartyListResponse, error) {
	rel := entity.Relation(relation)
	if rel != "" && !rel.Valid() {
		return nil, domain.Detail(domain.ErrInvalidInput, "relation debe ser CLIENT, SUPPLIER o BOTH")
	}
	list, err := uc.repo.List(ctx, repository.ThirdPartyFilter{
		Relation:        rel,
		IncludeInactive: includeInactive,
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ThirdPartyResponse, 0, len(list))
	for _, tp := range list {
		items = append(items, *toThirdPartyResponse(tp))
	}
	return &dto.ThirdPartyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete desactiva el tercero.
func (uc *ThirdPartyUseCase) Delete(ctx context.Context, id string) error {
	tp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tp == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id)
}

func toThirdPartyResponse(tp *entity.ThirdParty) *dto.ThirdPartyResponse {
	return &dto.ThirdPartyResponse{
		ID:        tp.ID,
		TaxID:     tp.TaxID,
		Name:      tp.Name,
		Relation:  string(tp.Relation),
		Email:     tp.Email,
		Phone:     tp.Phone,
		Active:    tp.Active,
		CreatedAt: tp.CreatedAt,
		UpdatedAt: tp.UpdatedAt,
	}
}
