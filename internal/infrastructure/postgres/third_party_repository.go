package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.ThirdPartyRepository = (*ThirdPartyRepo)(nil)

// ThirdPartyRepo implementación de ThirdPartyRepository (usable con pool o tx).
type ThirdPartyRepo struct {
	q Querier
}

// NewThirdPartyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewThirdPartyRepository(q Querier) *ThirdPartyRepo {
	return &ThirdPartyRepo{q: q}
}

const thirdPartyColumns = `id, tax_id, name, relation, email, phone, active, created_at, updated_at`

func scanThirdParty(row pgx.Row) (*entity.ThirdParty, error) {
	var tp entity.ThirdParty
	var relation string
	if err := row.Scan(&tp.ID, &tp.TaxID, &tp.Name, &relation, &tp.Email, &tp.Phone,
		&tp.Active, &tp.CreatedAt, &tp.UpdatedAt); err != nil {
		return nil, err
	}
	tp.Relation = entity.Relation(relation)
	return &tp, nil
}

// Create persiste un nuevo tercero. tax_id es único.
func (r *ThirdPartyRepo) Create(ctx context.Context, tp *entity.ThirdParty) error {
	query := `
		INSERT INTO third_parties (` + thirdPartyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		tp.ID, tp.TaxID, tp.Name, string(tp.Relation), tp.Email, tp.Phone, tp.Active, tp.CreatedAt, tp.UpdatedAt,
	)
	return wrapErr("insert third party", err)
}

// GetByID obtiene un tercero por ID.
func (r *ThirdPartyRepo) GetByID(ctx context.Context, id string) (*entity.ThirdParty, error) {
	tp, err := scanThirdParty(r.q.QueryRow(ctx, `SELECT `+thirdPartyColumns+` FROM third_parties WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get third party", err)
	}
	return tp, nil
}

// GetByTaxID obtiene un tercero por NIT/cédula.
func (r *ThirdPartyRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.ThirdParty, error) {
	tp, err := scanThirdParty(r.q.QueryRow(ctx, `SELECT `+thirdPartyColumns+` FROM third_parties WHERE tax_id = $1`, taxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get third party by tax_id", err)
	}
	return tp, nil
}

// List lista terceros por nombre. Filtrar por CLIENT o SUPPLIER incluye a los BOTH.
func (r *ThirdPartyRepo) List(ctx context.Context, f repository.ThirdPartyFilter) ([]*entity.ThirdParty, error) {
	query := `
		SELECT ` + thirdPartyColumns + `
		FROM third_parties
		WHERE ($1::text = '' OR relation = $1 OR relation = 'BOTH')
		  AND ($2::boolean OR active)
		ORDER BY name
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, string(f.Relation), f.IncludeInactive, f.Limit, f.Offset)
	if err != nil {
		return nil, wrapErr("list third parties", err)
	}
	defer rows.Close()
	var list []*entity.ThirdParty
	for rows.Next() {
		tp, err := scanThirdParty(rows)
		if err != nil {
			return nil, wrapErr("scan third party", err)
		}
		list = append(list, tp)
	}
	return list, wrapErr("list third parties", rows.Err())
}

// Update actualiza los datos del tercero.
func (r *ThirdPartyRepo) Update(ctx context.Context, tp *entity.ThirdParty) error {
	_, err := r.q.Exec(ctx, `
		UPDATE third_parties SET name = $2, relation = $3, email = $4, phone = $5, active = $6, updated_at = $7
		WHERE id = $1`,
		tp.ID, tp.Name, string(tp.Relation), tp.Email, tp.Phone, tp.Active, tp.UpdatedAt,
	)
	return wrapErr("update third party", err)
}

// SoftDelete marca el tercero como inactivo.
func (r *ThirdPartyRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE third_parties SET active = false, updated_at = now() WHERE id = $1`, id)
	return wrapErr("deactivate third party", err)
}
