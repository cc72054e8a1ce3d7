package repository

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/receivables"
)

// InvoiceRepository persistencia de facturas de venta (cartera).
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// List clientID vacío = todos.
	List(ctx context.Context, clientID string, limit, offset int) ([]*entity.Invoice, error)
	// ListOpen saldos abiertos con los datos del cliente, para el informe de cartera.
	ListOpen(ctx context.Context) ([]receivables.Receivable, error)
}
