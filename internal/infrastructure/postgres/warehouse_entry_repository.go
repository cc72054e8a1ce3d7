package postgres

import (
	"context"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.WarehouseEntryRepository = (*WarehouseEntryRepo)(nil)

// WarehouseEntryRepo entradas de almacén y sus líneas (usable con pool o tx).
type WarehouseEntryRepo struct {
	q Querier
}

// NewWarehouseEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseEntryRepository(q Querier) *WarehouseEntryRepo {
	return &WarehouseEntryRepo{q: q}
}

// Create inserta la entrada y sus líneas. Debe llamarse dentro de una transacción.
func (r *WarehouseEntryRepo) Create(ctx context.Context, e *entity.WarehouseEntry) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO warehouse_entries (id, order_id, warehouse_id, entry_date, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.OrderID, e.WarehouseID, e.Date, e.Notes, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return wrapErr("insert warehouse entry", err)
	}
	for _, l := range e.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO warehouse_entry_lines (id, entry_id, order_line_id, article_id, quantity)
			VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5)`,
			l.ID, e.ID, l.OrderLineID, l.ArticleID, l.Quantity,
		)
		if err != nil {
			return wrapErr("insert warehouse entry line", err)
		}
	}
	return nil
}

// ListByOrder entradas de la orden con sus líneas, en orden de registro.
func (r *WarehouseEntryRepo) ListByOrder(ctx context.Context, orderID string) ([]*entity.WarehouseEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, warehouse_id, entry_date, notes, created_by, created_at
		FROM warehouse_entries
		WHERE order_id = $1
		ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, wrapErr("list warehouse entries", err)
	}
	var list []*entity.WarehouseEntry
	byID := make(map[string]*entity.WarehouseEntry)
	for rows.Next() {
		var e entity.WarehouseEntry
		if err := rows.Scan(&e.ID, &e.OrderID, &e.WarehouseID, &e.Date, &e.Notes, &e.CreatedBy, &e.CreatedAt); err != nil {
			rows.Close()
			return nil, wrapErr("scan warehouse entry", err)
		}
		list = append(list, &e)
		byID[e.ID] = &e
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list warehouse entries", err)
	}

	lines, err := r.ListLinesByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		if e, ok := byID[l.EntryID]; ok {
			e.Lines = append(e.Lines, l)
		}
	}
	return list, nil
}

// ListLinesByOrder todas las líneas recibidas contra la orden.
func (r *WarehouseEntryRepo) ListLinesByOrder(ctx context.Context, orderID string) ([]entity.WarehouseEntryLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT l.id, l.entry_id, COALESCE(l.order_line_id::text, ''), l.article_id, l.quantity
		FROM warehouse_entry_lines l
		JOIN warehouse_entries e ON e.id = l.entry_id
		WHERE e.order_id = $1
		ORDER BY e.created_at, e.id, l.id`, orderID)
	if err != nil {
		return nil, wrapErr("list warehouse entry lines", err)
	}
	defer rows.Close()
	var out []entity.WarehouseEntryLine
	for rows.Next() {
		var l entity.WarehouseEntryLine
		if err := rows.Scan(&l.ID, &l.EntryID, &l.OrderLineID, &l.ArticleID, &l.Quantity); err != nil {
			return nil, wrapErr("scan warehouse entry line", err)
		}
		out = append(out, l)
	}
	return out, wrapErr("list warehouse entry lines", rows.Err())
}
