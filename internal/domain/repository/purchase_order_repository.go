package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// PurchaseOrderRepository persistencia de órdenes de compra con sus líneas.
type PurchaseOrderRepository interface {
	// Create inserta cabecera y líneas.
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	// GetByID devuelve la orden con sus líneas; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	// GetByIDForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	// List devuelve solo cabeceras. status vacío = todos.
	List(ctx context.Context, status entity.OrderStatus, limit, offset int) ([]*entity.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, payment entity.PaymentStatus, at time.Time) error
}
