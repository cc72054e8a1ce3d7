package postgres

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo pagos a proveedores (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create inserta el pago y asigna Seq (orden de inserción).
func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO supplier_payments
			(id, order_id, amount, payment_date, method, reference, notes, actor_id, actor_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING seq`,
		p.ID, p.OrderID, p.Amount, p.Date, p.Method, p.Reference, p.Notes, p.ActorID, p.ActorName, p.CreatedAt,
	).Scan(&p.Seq)
	return wrapErr("insert supplier payment", err)
}

// ListByOrder pagos de la orden en orden de inserción.
func (r *PaymentRepo) ListByOrder(ctx context.Context, orderID string) ([]entity.Payment, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, amount, payment_date, method, reference, notes, actor_id, actor_name, seq, created_at
		FROM supplier_payments
		WHERE order_id = $1
		ORDER BY seq`, orderID)
	if err != nil {
		return nil, wrapErr("list supplier payments", err)
	}
	defer rows.Close()
	var out []entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Date, &p.Method, &p.Reference, &p.Notes,
			&p.ActorID, &p.ActorName, &p.Seq, &p.CreatedAt); err != nil {
			return nil, wrapErr("scan supplier payment", err)
		}
		out = append(out, p)
	}
	return out, wrapErr("list supplier payments", rows.Err())
}
