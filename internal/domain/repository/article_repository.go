package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// ArticleFilter criterios del listado de artículos.
type ArticleFilter struct {
	Query           string // busca en código o nombre
	IncludeInactive bool
	Limit           int
	Offset          int
}

// ArticleRepository define el puerto de persistencia para Article (DIP).
type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) error
	GetByID(ctx context.Context, id string) (*entity.Article, error)
	GetByCode(ctx context.Context, code string) (*entity.Article, error)
	List(ctx context.Context, f ArticleFilter) ([]*entity.Article, error)
	Update(ctx context.Context, article *entity.Article) error
	// GetByIDForUpdate bloquea la fila del artículo hasta el fin de la transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Article, error)
	// UpdateStock fija existencia y costo promedio tras una entrada de almacén.
	UpdateStock(ctx context.Context, id string, onHand, averageCost decimal.Decimal) error
	// SoftDelete desactiva el artículo; si la tabla no tiene columna active lo elimina.
	SoftDelete(ctx context.Context, id string) error
}
