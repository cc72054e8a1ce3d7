package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRepository consultas de solo lectura para los indicadores del panel.
type DashboardRepository interface {
	// CountOpenOrders órdenes que no están FINALIZED.
	CountOpenOrders(ctx context.Context) (int, error)
	// PayablesOutstanding Σ (total − pagado) de las órdenes recibidas y no finalizadas.
	PayablesOutstanding(ctx context.Context) (decimal.Decimal, error)
	// ReceivablesPending cartera pendiente y la parte vencida a asOf.
	ReceivablesPending(ctx context.Context, asOf time.Time) (pending, overdue decimal.Decimal, err error)
}
