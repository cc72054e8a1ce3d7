package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// ArticleRepo implementación del puerto ArticleRepository sobre PostgreSQL (usable con pool o tx).
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

const articleColumns = `id, code, name, unit_price, quantity_on_hand, average_cost, active, created_at, updated_at`

func scanArticle(row pgx.Row) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(&a.ID, &a.Code, &a.Name, &a.UnitPrice, &a.QuantityOnHand, &a.AverageCost,
		&a.Active, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste un nuevo artículo.
func (r *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Code, a.Name, a.UnitPrice, a.QuantityOnHand, a.AverageCost, a.Active, a.CreatedAt, a.UpdatedAt,
	)
	return wrapErr("insert article", err)
}

// GetByID obtiene un artículo por ID.
func (r *ArticleRepo) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	return r.getOne(ctx, "get article", `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
}

// GetByIDForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
func (r *ArticleRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Article, error) {
	return r.getOne(ctx, "lock article", `SELECT `+articleColumns+` FROM articles WHERE id = $1 FOR UPDATE`, id)
}

// GetByCode obtiene un artículo por código.
func (r *ArticleRepo) GetByCode(ctx context.Context, code string) (*entity.Article, error) {
	return r.getOne(ctx, "get article by code", `SELECT `+articleColumns+` FROM articles WHERE code = $1`, code)
}

func (r *ArticleRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Article, error) {
	a, err := scanArticle(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return a, nil
}

// List lista artículos por código; Query busca sin distinguir mayúsculas en código o nombre.
func (r *ArticleRepo) List(ctx context.Context, f repository.ArticleFilter) ([]*entity.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE ($1::text = '' OR code ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%')
		  AND ($2::boolean OR active)
		ORDER BY code
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.Query, f.IncludeInactive, f.Limit, f.Offset)
	if err != nil {
		return nil, wrapErr("list articles", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, wrapErr("scan article", err)
		}
		list = append(list, a)
	}
	return list, wrapErr("list articles", rows.Err())
}

// Update actualiza nombre, precio y estado. Existencia y costo van por UpdateStock.
func (r *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	_, err := r.q.Exec(ctx,
		`UPDATE articles SET name = $2, unit_price = $3, active = $4, updated_at = $5 WHERE id = $1`,
		a.ID, a.Name, a.UnitPrice, a.Active, a.UpdatedAt,
	)
	return wrapErr("update article", err)
}

// UpdateStock fija existencia y costo promedio (usado por las entradas de almacén).
func (r *ArticleRepo) UpdateStock(ctx context.Context, id string, onHand, averageCost decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE articles SET quantity_on_hand = $2, average_cost = $3, updated_at = now() WHERE id = $1`,
		id, onHand, averageCost,
	)
	return wrapErr("update article stock", err)
}

// SoftDelete marca active = false. En esquemas antiguos sin la columna active, borra la fila.
func (r *ArticleRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE articles SET active = false, updated_at = now() WHERE id = $1`, id)
	if err == nil {
		return nil
	}
	if !isUndefinedColumn(err) {
		return wrapErr("deactivate article", err)
	}
	_, err = r.q.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	return wrapErr("delete article", err)
}
