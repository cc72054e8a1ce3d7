package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// PaymentRepository libro de pagos de órdenes de compra.
type PaymentRepository interface {
	// Create inserta el pago y asigna payment.Seq.
	Create(ctx context.Context, payment *entity.Payment) error
	// ListByOrder pagos de la orden por orden de inserción.
	ListByOrder(ctx context.Context, orderID string) ([]entity.Payment, error)
}
