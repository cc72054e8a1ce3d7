package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// ArticleUseCase casos de uso CRUD para artículos. Existencia y costo promedio se mueven con entradas de almacén.
type ArticleUseCase struct {
	repo repository.ArticleRepository
}

// NewArticleUseCase construye el caso de uso.
func NewArticleUseCase(repo repository.ArticleRepository) *ArticleUseCase {
	return &ArticleUseCase{repo: repo}
}

// Create crea un artículo activo con existencia y costo en 0.
func (uc *ArticleUseCase) Create(ctx context.Context, in dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.Detail(domain.ErrInvalidInput, "unit_price no puede ser negativo")
	}
	existing, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	article := &entity.Article{
		ID:             uuid.New().String(),
		Code:           code,
		Name:           strings.TrimSpace(in.Name),
		UnitPrice:      in.UnitPrice,
		QuantityOnHand: decimal.Zero,
		AverageCost:    decimal.Zero,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// GetByID obtiene un artículo por ID.
func (uc *ArticleUseCase) GetByID(ctx context.Context, id string) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	return toArticleResponse(article), nil
}

// Update actualiza nombre, precio o estado. No toca existencia ni costo.
func (uc *ArticleUseCase) Update(ctx context.Context, id string, in dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		article.Name = strings.TrimSpace(*in.Name)
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.Detail(domain.ErrInvalidInput, "unit_price no puede ser negativo")
		}
		article.UnitPrice = *in.UnitPrice
	}
	if in.Active != nil {
		article.Active = *in.Active
	}
	article.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, article); err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

// List lista artículos; q busca en código o nombre.
func (uc *ArticleUseCase) List(ctx context.Context, q string, includeInactive bool, limit, offset int) (*dto.ArticleListResponse, error) {
	list, err := uc.repo.List(ctx, repository.ArticleFilter{
		Query:           strings.TrimSpace(q),
		IncludeInactive: includeInactive,
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toArticleResponse(a))
	}
	return &dto.ArticleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete desactiva el artículo.
func (uc *ArticleUseCase) Delete(ctx context.Context, id string) error {
	article, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(ctx, id)
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:             a.ID,
		Code:           a.Code,
		Name:           a.Name,
		UnitPrice:      a.UnitPrice,
		QuantityOnHand: a.QuantityOnHand,
		AverageCost:    a.AverageCost,
		Active:         a.Active,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
