package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// ThirdPartyFilter criterios del listado de terceros. Relation vacío = todos.
type ThirdPartyFilter struct {
	Relation        entity.Relation
	IncludeInactive bool
	Limit           int
	Offset          int
}

// ThirdPartyRepository define el puerto de persistencia para clientes y proveedores.
type ThirdPartyRepository interface {
	Create(ctx context.Context, tp *entity.ThirdParty) error
	GetByID(ctx context.Context, id string) (*entity.ThirdParty, error)
	GetByTaxID(ctx context.Context, taxID string) (*entity.ThirdParty, error)
	List(ctx context.Context, f ThirdPartyFilter) ([]*entity.ThirdParty, error)
	Update(ctx context.Context, tp *entity.ThirdParty) error
	SoftDelete(ctx context.Context, id string) error
}
