package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/usecase"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type articleRepo struct {
	byID   map[string]*entity.Article
	filter repository.ArticleFilter
}

func newArticleRepo() *articleRepo { return &articleRepo{byID: map[string]*entity.Article{}} }

func (r *articleRepo) Create(_ context.Context, a *entity.Article) error {
	r.byID[a.ID] = a
	return nil
}
func (r *articleRepo) GetByID(_ context.Context, id string) (*entity.Article, error) {
	return r.byID[id], nil
}
func (r *articleRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Article, error) {
	return r.GetByID(ctx, id)
}
func (r *articleRepo) GetByCode(_ context.Context, code string) (*entity.Article, error) {
	for _, a := range r.byID {
		if a.Code == code {
			return a, nil
		}
	}
	return nil, nil
}
func (r *articleRepo) List(_ context.Context, f repository.ArticleFilter) ([]*entity.Article, error) {
	r.filter = f
	var out []*entity.Article
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}
func (r *articleRepo) Update(_ context.Context, a *entity.Article) error {
	r.byID[a.ID] = a
	return nil
}
func (r *articleRepo) UpdateStock(context.Context, string, decimal.Decimal, decimal.Decimal) error {
	return nil
}
func (r *articleRepo) SoftDelete(_ context.Context, id string) error {
	r.byID[id].Active = false
	return nil
}

type thirdPartyRepo struct {
	byID   map[string]*entity.ThirdParty
	filter repository.ThirdPartyFilter
}

func newThirdPartyRepo() *thirdPartyRepo { return &thirdPartyRepo{byID: map[string]*entity.ThirdParty{}} }

func (r *thirdPartyRepo) Create(_ context.Context, tp *entity.ThirdParty) error {
	r.byID[tp.ID] = tp
	return nil
}
func (r *thirdPartyRepo) GetByID(_ context.Context, id string) (*entity.ThirdParty, error) {
	return r.byID[id], nil
}
func (r *thirdPartyRepo) GetByTaxID(_ context.Context, taxID string) (*entity.ThirdParty, error) {
	for _, tp := range r.byID {
		if tp.TaxID == taxID {
			return tp, nil
		}
	}
	return nil, nil
}
func (r *thirdPartyRepo) List(_ context.Context, f repository.ThirdPartyFilter) ([]*entity.ThirdParty, error) {
	r.filter = f
	return nil, nil
}
func (r *thirdPartyRepo) Update(_ context.Context, tp *entity.ThirdParty) error {
	r.byID[tp.ID] = tp
	return nil
}
func (r *thirdPartyRepo) SoftDelete(_ context.Context, id string) error {
	r.byID[id].Active = false
	return nil
}

type warehouseRepo struct {
	byID map[string]*entity.Warehouse
}

func (r *warehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	r.byID[w.ID] = w
	return nil
}
func (r *warehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return r.byID[id], nil
}
func (r *warehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	r.byID[w.ID] = w
	return nil
}
func (r *warehouseRepo) List(context.Context, int, int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.byID {
		out = append(out, w)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Artículos
// ──────────────────────────────────────────────────────────────────────────────

func TestArticle_CreateYDuplicado(t *testing.T) {
	repo := newArticleRepo()
	uc := usecase.NewArticleUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateArticleRequest{Code: " A-01 ", Name: "Tornillo", UnitPrice: decimal.NewFromInt(1200)})
	require.NoError(t, err)
	assert.Equal(t, "A-01", out.Code)
	assert.True(t, out.Active)
	assert.True(t, out.QuantityOnHand.IsZero())

	_, err = uc.Create(ctx, dto.CreateArticleRequest{Code: "A-01", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateArticleRequest{Code: "A-02", Name: "Negativo", UnitPrice: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestArticle_UpdateDeleteYNoEncontrado(t *testing.T) {
	repo := newArticleRepo()
	uc := usecase.NewArticleUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateArticleRequest{Code: "A-01", Name: "Tornillo"})
	require.NoError(t, err)

	name := "Tornillo 1/4"
	upd, err := uc.Update(ctx, out.ID, dto.UpdateArticleRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, upd.Name)

	require.NoError(t, uc.Delete(ctx, out.ID))
	assert.False(t, repo.byID[out.ID].Active)

	_, err = uc.GetByID(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "x"), domain.ErrNotFound)
}

func TestArticle_ListPasaElFiltro(t *testing.T) {
	repo := newArticleRepo()
	_, err := usecase.NewArticleUseCase(repo).List(context.Background(), " torn ", true, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, repository.ArticleFilter{Query: "torn", IncludeInactive: true, Limit: 10, Offset: 20}, repo.filter)
}

// ──────────────────────────────────────────────────────────────────────────────
// Terceros
// ──────────────────────────────────────────────────────────────────────────────

func TestThirdParty_CreateNormalizaTelefono(t *testing.T) {
	repo := newThirdPartyRepo()
	uc := usecase.NewThirdPartyUseCase(repo, "CO")

	out, err := uc.Create(context.Background(), dto.CreateThirdPartyRequest{
		TaxID: "900123456", Name: "Proveedor SAS", Relation: "SUPPLIER", Phone: "300 123 4567",
	})
	require.NoError(t, err)
	assert.Equal(t, "+573001234567", out.Phone)
	assert.Equal(t, "SUPPLIER", out.Relation)

	_, err = uc.Create(context.Background(), dto.CreateThirdPartyRequest{TaxID: "900123456", Name: "Otro", Relation: "CLIENT"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestThirdParty_Validaciones(t *testing.T) {
	uc := usecase.NewThirdPartyUseCase(newThirdPartyRepo(), "CO")
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateThirdPartyRequest{TaxID: "1", Name: "X", Relation: "PARTNER"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateThirdPartyRequest{TaxID: "1", Name: "X", Relation: "CLIENT", Phone: "12"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.List(ctx, "PARTNER", false, 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestThirdParty_UpdateRelacionYListFiltro(t *testing.T) {
	repo := newThirdPartyRepo()
	uc := usecase.NewThirdPartyUseCase(repo, "CO")
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateThirdPartyRequest{TaxID: "800", Name: "Mixto", Relation: "CLIENT"})
	require.NoError(t, err)

	both := "BOTH"
	upd, err := uc.Update(ctx, out.ID, dto.UpdateThirdPartyRequest{Relation: &both})
	require.NoError(t, err)
	assert.Equal(t, "BOTH", upd.Relation)

	_, err = uc.List(ctx, "SUPPLIER", false, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, entity.RelationSupplier, repo.filter.Relation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bodegas
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouse_CRUD(t *testing.T) {
	repo := &warehouseRepo{byID: map[string]*entity.Warehouse{}}
	uc := usecase.NewWarehouseUseCase(repo)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateWarehouseRequest{Name: "Principal", Address: "Calle 1"})
	require.NoError(t, err)

	addr := "Carrera 7"
	upd, err := uc.Update(ctx, out.ID, dto.UpdateWarehouseRequest{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, addr, upd.Address)

	list, err := uc.List(ctx, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	_, err = uc.Create(ctx, dto.CreateWarehouseRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.GetByID(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
