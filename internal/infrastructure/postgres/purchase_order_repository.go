package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo órdenes de compra y sus líneas (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const orderColumns = `id, number, supplier_id, order_date, delivery_date, status, payment_status,
	subtotal, taxes, total, notes, created_by, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	var status, payment string
	if err := row.Scan(&o.ID, &o.Number, &o.SupplierID, &o.OrderDate, &o.DeliveryDate, &status, &payment,
		&o.Subtotal, &o.Taxes, &o.Total, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	o.PaymentStatus = entity.PaymentStatus(payment)
	return &o, nil
}

// Create inserta cabecera y líneas. Debe llamarse dentro de una transacción.
func (r *PurchaseOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO purchase_orders (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		o.ID, o.Number, o.SupplierID, o.OrderDate, o.DeliveryDate, string(o.Status), string(o.PaymentStatus),
		o.Subtotal, o.Taxes, o.Total, o.Notes, o.CreatedBy, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return wrapErr("insert purchase order", err)
	}
	for _, l := range o.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO purchase_order_lines
				(id, order_id, position, line_type, article_id, description, quantity, unit_cost, taxes, line_total)
			VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7, $8, $9, $10)`,
			l.ID, o.ID, l.Position, string(l.LineType), l.ArticleID, l.Description,
			l.Quantity, l.UnitCost, l.Taxes, l.LineTotal,
		)
		if err != nil {
			return wrapErr("insert purchase order line", err)
		}
	}
	return nil
}

// GetByID obtiene la orden con sus líneas; nil si no existe.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1`, id)
}

// GetByIDForUpdate como GetByID pero bloquea la cabecera (SELECT ... FOR UPDATE).
// Pagos y entradas concurrentes sobre la misma orden quedan serializados.
func (r *PurchaseOrderRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *PurchaseOrderRepo) get(ctx context.Context, query, id string) (*entity.PurchaseOrder, error) {
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get purchase order", err)
	}
	lines, err := r.lines(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return o, nil
}

func (r *PurchaseOrderRepo) lines(ctx context.Context, orderID string) ([]entity.PurchaseOrderLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, position, line_type, COALESCE(article_id::text, ''), description,
		       quantity, unit_cost, taxes, line_total
		FROM purchase_order_lines
		WHERE order_id = $1
		ORDER BY position`, orderID)
	if err != nil {
		return nil, wrapErr("list purchase order lines", err)
	}
	defer rows.Close()
	var out []entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		var lineType string
		if err := rows.Scan(&l.ID, &l.OrderID, &l.Position, &lineType, &l.ArticleID, &l.Description,
			&l.Quantity, &l.UnitCost, &l.Taxes, &l.LineTotal); err != nil {
			return nil, wrapErr("scan purchase order line", err)
		}
		l.LineType = entity.LineType(lineType)
		out = append(out, l)
	}
	return out, wrapErr("list purchase order lines", rows.Err())
}

// List cabeceras (sin líneas) de la más reciente a la más antigua; status vacío = todas.
func (r *PurchaseOrderRepo) List(ctx context.Context, status entity.OrderStatus, limit, offset int) ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+orderColumns+`
		FROM purchase_orders
		WHERE ($1::text = '' OR status = $1)
		ORDER BY order_date DESC, created_at DESC
		LIMIT $2 OFFSET $3`, string(status), limit, offset)
	if err != nil {
		return nil, wrapErr("list purchase orders", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, wrapErr("scan purchase order", err)
		}
		list = append(list, o)
	}
	return list, wrapErr("list purchase orders", rows.Err())
}

// UpdateStatus fija estado de la orden y estado de pago.
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus, payment entity.PaymentStatus, at time.Time) error {
	_, err := r.q.Exec(ctx,
		`UPDATE purchase_orders SET status = $2, payment_status = $3, updated_at = $4 WHERE id = $1`,
		id, string(status), string(payment), at,
	)
	return wrapErr("update purchase order status", err)
}
