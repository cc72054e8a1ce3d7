package purchasing_test

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/purchasing"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacenamiento en memoria con transacciones (snapshot + restore)
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	orders       map[string]entity.PurchaseOrder
	entries      []entity.WarehouseEntry
	payments     []entity.Payment
	articles     map[string]entity.Article
	thirdParties map[string]entity.ThirdParty
	warehouses   map[string]entity.Warehouse
	seq          int64
}

func (s memState) clone() memState {
	return memState{
		orders:       maps.Clone(s.orders),
		entries:      slices.Clone(s.entries),
		payments:     slices.Clone(s.payments),
		articles:     maps.Clone(s.articles),
		thirdParties: maps.Clone(s.thirdParties),
		warehouses:   maps.Clone(s.warehouses),
		seq:          s.seq,
	}
}

type memStore struct {
	mu    sync.Mutex
	state memState

	// failPaymentCreate fuerza un error al insertar pagos.
	failPaymentCreate error
	txCount           int
}

func newMemStore() *memStore {
	return &memStore{state: memState{
		orders:       map[string]entity.PurchaseOrder{},
		articles:     map[string]entity.Article{},
		thirdParties: map[string]entity.ThirdParty{},
		warehouses:   map[string]entity.Warehouse{},
	}}
}

func (s *memStore) repos() purchasing.TxRepos {
	return purchasing.TxRepos{
		Orders:   memOrders{s},
		Entries:  memEntries{s},
		Payments: memPayments{s},
		Articles: memArticles{s},
	}
}

// Run serializa las transacciones y revierte el estado si fn falla.
func (s *memStore) Run(ctx context.Context, fn func(purchasing.TxRepos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txCount++
	snapshot := s.state.clone()
	if err := fn(s.repos()); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// ── Órdenes ──────────────────────────────────────────────────────────────────

type memOrders struct{ s *memStore }

var _ repository.PurchaseOrderRepository = memOrders{}

func (r memOrders) Create(_ context.Context, o *entity.PurchaseOrder) error {
	cp := *o
	cp.Lines = slices.Clone(o.Lines)
	r.s.state.orders[o.ID] = cp
	return nil
}

func (r memOrders) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	o, ok := r.s.state.orders[id]
	if !ok {
		return nil, nil
	}
	o.Lines = slices.Clone(o.Lines)
	return &o, nil
}

func (r memOrders) GetByIDForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.GetByID(ctx, id)
}

func (r memOrders) List(_ context.Context, status entity.OrderStatus, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.s.state.orders {
		if status != "" && o.Status != status {
			continue
		}
		o := o
		out = append(out, &o)
	}
	return out, nil
}

func (r memOrders) UpdateStatus(_ context.Context, id string, status entity.OrderStatus, payment entity.PaymentStatus, at time.Time) error {
	o := r.s.state.orders[id]
	o.Status, o.PaymentStatus, o.UpdatedAt = status, payment, at
	r.s.state.orders[id] = o
	return nil
}

// ── Entradas ─────────────────────────────────────────────────────────────────

type memEntries struct{ s *memStore }

func (r memEntries) Create(_ context.Context, e *entity.WarehouseEntry) error {
	cp := *e
	cp.Lines = slices.Clone(e.Lines)
	r.s.state.entries = append(r.s.state.entries, cp)
	return nil
}

func (r memEntries) ListByOrder(_ context.Context, orderID string) ([]*entity.WarehouseEntry, error) {
	var out []*entity.WarehouseEntry
	for _, e := range r.s.state.entries {
		if e.OrderID == orderID {
			e := e
			out = append(out, &e)
		}
	}
	return out, nil
}

func (r memEntries) ListLinesByOrder(_ context.Context, orderID string) ([]entity.WarehouseEntryLine, error) {
	var out []entity.WarehouseEntryLine
	for _, e := range r.s.state.entries {
		if e.OrderID == orderID {
			out = append(out, e.Lines...)
		}
	}
	return out, nil
}

// ── Pagos ────────────────────────────────────────────────────────────────────

type memPayments struct{ s *memStore }

func (r memPayments) Create(_ context.Context, p *entity.Payment) error {
	if r.s.failPaymentCreate != nil {
		return r.s.failPaymentCreate
	}
	r.s.state.seq++
	p.Seq = r.s.state.seq
	r.s.state.payments = append(r.s.state.payments, *p)
	return nil
}

func (r memPayments) ListByOrder(_ context.Context, orderID string) ([]entity.Payment, error) {
	var out []entity.Payment
	for _, p := range r.s.state.payments {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ── Artículos, terceros y bodegas ────────────────────────────────────────────

type memArticles struct{ s *memStore }

func (r memArticles) Create(_ context.Context, a *entity.Article) error {
	r.s.state.articles[a.ID] = *a
	return nil
}

func (r memArticles) GetByID(_ context.Context, id string) (*entity.Article, error) {
	a, ok := r.s.state.articles[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r memArticles) GetByIDForUpdate(ctx context.Context, id string) (*entity.Article, error) {
	return r.GetByID(ctx, id)
}

func (r memArticles) GetByCode(_ context.Context, code string) (*entity.Article, error) {
	for _, a := range r.s.state.articles {
		if a.Code == code {
			return &a, nil
		}
	}
	return nil, nil
}

func (r memArticles) List(context.Context, repository.ArticleFilter) ([]*entity.Article, error) {
	return nil, nil
}

func (r memArticles) Update(_ context.Context, a *entity.Article) error {
	r.s.state.articles[a.ID] = *a
	return nil
}

func (r memArticles) UpdateStock(_ context.Context, id string, onHand, cost decimal.Decimal) error {
	a := r.s.state.articles[id]
	a.QuantityOnHand, a.AverageCost = onHand, cost
	r.s.state.articles[id] = a
	return nil
}

func (r memArticles) SoftDelete(_ context.Context, id string) error {
	delete(r.s.state.articles, id)
	return nil
}

type memThirdParties struct{ s *memStore }

func (r memThirdParties) Create(_ context.Context, tp *entity.ThirdParty) error {
	r.s.state.thirdParties[tp.ID] = *tp
	return nil
}

func (r memThirdParties) GetByID(_ context.Context, id string) (*entity.ThirdParty, error) {
	tp, ok := r.s.state.thirdParties[id]
	if !ok {
		return nil, nil
	}
	return &tp, nil
}

func (r memThirdParties) GetByTaxID(context.Context, string) (*entity.ThirdParty, error) {
	return nil, nil
}

func (r memThirdParties) List(context.Context, repository.ThirdPartyFilter) ([]*entity.ThirdParty, error) {
	return nil, nil
}

func (r memThirdParties) Update(_ context.Context, tp *entity.ThirdParty) error {
	r.s.state.thirdParties[tp.ID] = *tp
	return nil
}

func (r memThirdParties) SoftDelete(context.Context, string) error { return nil }

type memWarehouses struct{ s *memStore }

func (r memWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	r.s.state.warehouses[w.ID] = *w
	return nil
}

func (r memWarehouses) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	w, ok := r.s.state.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r memWarehouses) Update(_ context.Context, w *entity.Warehouse) error {
	r.s.state.warehouses[w.ID] = *w
	return nil
}

func (r memWarehouses) List(context.Context, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var actor = purchasing.Actor{ID: "u-1", Name: "Ana Contable"}

// seedCatalog crea proveedor, cliente, bodega y dos artículos.
func seedCatalog(s *memStore) {
	s.state.thirdParties["sup-1"] = entity.ThirdParty{ID: "sup-1", Name: "Proveedor SAS", Relation: entity.RelationSupplier, Active: true}
	s.state.thirdParties["cli-1"] = entity.ThirdParty{ID: "cli-1", Name: "Cliente Ltda", Relation: entity.RelationClient, Active: true}
	s.state.warehouses["wh-1"] = entity.Warehouse{ID: "wh-1", Name: "Principal"}
	s.state.articles["a1"] = entity.Article{ID: "a1", Code: "A1", Name: "Tornillo", Active: true}
	s.state.articles["a2"] = entity.Article{ID: "a2", Code: "A2", Name: "Tuerca", Active: true}
	s.state.articles["old"] = entity.Article{ID: "old", Code: "OLD", Name: "Descontinuado", Active: false}
}

// seedOrder crea una orden con líneas [a1 × q1 @ c1, a2 × q2 @ c2] sin impuestos.
func seedOrder(s *memStore, id string, q1, c1, q2, c2 string) {
	s.state.orders[id] = entity.PurchaseOrder{
		ID: id, Number: "OC-" + id, SupplierID: "sup-1",
		Status: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusUnpaid,
		Lines: []entity.PurchaseOrderLine{
			{ID: id + "-l1", OrderID: id, LineType: entity.LineTypeProduct, ArticleID: "a1", Quantity: d(q1), UnitCost: d(c1), Taxes: decimal.Zero},
			{ID: id + "-l2", OrderID: id, LineType: entity.LineTypeProduct, ArticleID: "a2", Quantity: d(q2), UnitCost: d(c2), Taxes: decimal.Zero},
		},
	}
}

// seedReceived registra una entrada directamente en el almacenamiento.
func seedReceived(s *memStore, orderID, q1, q2 string) {
	s.state.entries = append(s.state.entries, entity.WarehouseEntry{
		ID: "e-" + orderID, OrderID: orderID, WarehouseID: "wh-1",
		Lines: []entity.WarehouseEntryLine{
			{ArticleID: "a1", Quantity: d(q1)},
			{ArticleID: "a2", Quantity: d(q2)},
		},
	})
}
