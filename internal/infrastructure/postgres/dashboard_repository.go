package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los indicadores del panel.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountOpenOrders órdenes que no están FINALIZED.
func (r *DashboardRepo) CountOpenOrders(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM purchase_orders WHERE status <> 'FINALIZED'`).Scan(&n)
	return n, wrapErr("count open orders", err)
}

// payableStatuses órdenes ya recibidas por completo que aún tienen saldo por pagar.
var payableStatuses = []string{
	string(entity.OrderStatusReceived),
	string(entity.OrderStatusPartiallyPaid),
}

// PayablesOutstanding Σ (total − pagado) de las órdenes recibidas y no finalizadas.
func (r *DashboardRepo) PayablesOutstanding(ctx context.Context) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(GREATEST(o.total - COALESCE(p.paid, 0), 0)), 0)
	FROM purchase_orders o
	LEFT JOIN (
	    SELECT order_id, SUM(amount) AS paid
	    FROM supplier_payments
	    GROUP BY order_id
	) p ON p.order_id = o.id
	WHERE o.status = ANY($1)`
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, query, payableStatuses).Scan(&total)
	return total, wrapErr("payables outstanding", err)
}

// ReceivablesPending cartera pendiente y la parte con vencimiento anterior a asOf.
func (r *DashboardRepo) ReceivablesPending(ctx context.Context, asOf time.Time) (pending, overdue decimal.Decimal, err error) {
	const query = `
	SELECT COALESCE(SUM(amount_pending), 0),
	       COALESCE(SUM(amount_pending) FILTER (WHERE isfinite(due_date) AND due_date < $1::date), 0)
	FROM sales_invoices
	WHERE amount_pending > 0`
	err = r.q.QueryRow(ctx, query, asOf).Scan(&pending, &overdue)
	return pending, overdue, wrapErr("receivables pending", err)
}
