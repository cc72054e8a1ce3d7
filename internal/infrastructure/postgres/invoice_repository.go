package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/receivables"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo facturas de venta (cartera) sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, client_id, number, issue_date, due_date, total, amount_pending, created_at, updated_at`

// dueDate nil si es NULL o ±infinity.
func dueDate(d pgtype.Date) *time.Time {
	if !d.Valid || d.InfinityModifier != pgtype.Finite {
		return nil
	}
	t := d.Time
	return &t
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var due pgtype.Date
	if err := row.Scan(&inv.ID, &inv.ClientID, &inv.Number, &inv.IssueDate, &due,
		&inv.Total, &inv.AmountPending, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return nil, err
	}
	inv.DueDate = dueDate(due)
	return &inv, nil
}

// Create persiste una factura. number es único.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO sales_invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		inv.ID, inv.ClientID, inv.Number, inv.IssueDate, inv.DueDate, inv.Total, inv.AmountPending,
		inv.CreatedAt, inv.UpdatedAt,
	)
	return wrapErr("insert sales invoice", err)
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM sales_invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get sales invoice", err)
	}
	return inv, nil
}

// List facturas de la más reciente a la más antigua; clientID vacío = todas.
func (r *InvoiceRepo) List(ctx context.Context, clientID string, limit, offset int) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM sales_invoices
		WHERE ($1::text = '' OR client_id::text = $1)
		ORDER BY issue_date DESC, number
		LIMIT $2 OFFSET $3`, clientID, limit, offset)
	if err != nil {
		return nil, wrapErr("list sales invoices", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, wrapErr("scan sales invoice", err)
		}
		list = append(list, inv)
	}
	return list, wrapErr("list sales invoices", rows.Err())
}

// ListOpen saldos pendientes (> 0) con nombre e identificación del cliente.
func (r *InvoiceRepo) ListOpen(ctx context.Context) ([]receivables.Receivable, error) {
	rows, err := r.q.Query(ctx, `
		SELECT i.id, i.client_id, t.name, t.tax_id, i.amount_pending, i.due_date
		FROM sales_invoices i
		JOIN third_parties t ON t.id = i.client_id
		WHERE i.amount_pending > 0
		ORDER BY t.name, i.client_id, i.id`)
	if err != nil {
		return nil, wrapErr("list open receivables", err)
	}
	defer rows.Close()
	var out []receivables.Receivable
	for rows.Next() {
		var rec receivables.Receivable
		var due pgtype.Date
		if err := rows.Scan(&rec.InvoiceID, &rec.ClientID, &rec.ClientName, &rec.ClientTaxID,
			&rec.PendingAmount, &due); err != nil {
			return nil, wrapErr("scan open receivable", err)
		}
		rec.DueDate = dueDate(due)
		out = append(out, rec)
	}
	return out, wrapErr("list open receivables", rows.Err())
}
