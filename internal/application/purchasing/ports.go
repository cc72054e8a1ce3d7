// Package purchasing orquesta órdenes de compra, entradas de almacén y pagos a proveedores.
package purchasing

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Orders   repository.PurchaseOrderRepository
	Entries  repository.WarehouseEntryRepository
	Payments repository.PaymentRepository
	Articles repository.ArticleRepository
}

// TxRunner ejecuta fn dentro de una transacción; Commit si fn retorna nil, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// OrderLocker bloqueo opcional entre instancias de la API. El bloqueo de fila
// (SELECT ... FOR UPDATE) sigue siendo el que garantiza la consistencia.
type OrderLocker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// Actor identidad de quien registra la operación; solo se usa para auditoría.
type Actor struct {
	ID   string
	Name string
}

type noopLocker struct{}

func (noopLocker) Lock(context.Context, string) (func(), error) { return func() {}, nil }
