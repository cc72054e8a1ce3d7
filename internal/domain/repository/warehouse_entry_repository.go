package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// WarehouseEntryRepository persistencia de entradas de almacén.
type WarehouseEntryRepository interface {
	Create(ctx context.Context, entry *entity.WarehouseEntry) error
	ListByOrder(ctx context.Context, orderID string) ([]*entity.WarehouseEntry, error)
	// ListLinesByOrder todas las líneas recibidas contra la orden, en orden de registro.
	ListLinesByOrder(ctx context.Context, orderID string) ([]entity.WarehouseEntryLine, error)
}
