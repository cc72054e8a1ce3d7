package purchasing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/purchasing"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

func newReceptionUC(s *memStore) *purchasing.ReceptionUseCase {
	return purchasing.NewReceptionUseCase(s, nil, memOrders{s}, memEntries{s}, memWarehouses{s})
}

func entryReq(orderID string, lines ...dto.WarehouseEntryLineIn) dto.CreateWarehouseEntryRequest {
	return dto.CreateWarehouseEntryRequest{OrderID: orderID, WarehouseID: "wh-1", Date: "2024-06-10", Lines: lines}
}

func in(article, qty string) dto.WarehouseEntryLineIn {
	return dto.WarehouseEntryLineIn{ArticleID: article, Quantity: d(qty)}
}

func newOrderStore() *memStore {
	s := newMemStore()
	seedCatalog(s)
	seedOrder(s, "po-1", "10", "80", "5", "40")
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordEntry
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_RecepcionCompleta(t *testing.T) {
	s := newOrderStore()
	out, err := newReceptionUC(s).RecordEntry(context.Background(), entryReq("po-1", in("a1", "10"), in("a2", "5")), actor)
	require.NoError(t, err)

	require.NotNil(t, out.Reception)
	assert.True(t, out.Reception.ReceptionComplete)
	assert.True(t, out.Reception.TotalPending.IsZero())
	assert.Equal(t, "2024-06-10", out.Date)
	assert.Equal(t, actor.ID, out.CreatedBy)
	assert.Equal(t, entity.OrderStatusReceived, s.state.orders["po-1"].Status)
	assert.True(t, d("10").Equal(s.state.articles["a1"].QuantityOnHand))
	assert.True(t, d("80").Equal(s.state.articles["a1"].AverageCost))
}

func TestRecordEntry_RecepcionParcialYLuegoCompleta(t *testing.T) {
	s := newOrderStore()
	uc := newReceptionUC(s)
	ctx := context.Background()

	out, err := uc.RecordEntry(ctx, entryReq("po-1", in("a1", "4"), in("a2", "5")), actor)
	require.NoError(t, err)
	assert.False(t, out.Reception.ReceptionComplete)
	assert.True(t, d("6").Equal(out.Reception.TotalPending))
	assert.Equal(t, entity.OrderStatusPartiallyReceived, s.state.orders["po-1"].Status)

	out, err = uc.RecordEntry(ctx, entryReq("po-1", in("a1", "6")), actor)
	require.NoError(t, err)
	assert.True(t, out.Reception.ReceptionComplete)
	assert.Equal(t, entity.OrderStatusReceived, s.state.orders["po-1"].Status)

	list, err := uc.ListByOrder(ctx, "po-1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestRecordEntry_CostoPromedioPonderado(t *testing.T) {
	s := newOrderStore()
	a := s.state.articles["a1"]
	a.QuantityOnHand, a.AverageCost = d("10"), d("50")
	s.state.articles["a1"] = a

	_, err := newReceptionUC(s).RecordEntry(context.Background(), entryReq("po-1", in("a1", "10")), actor)
	require.NoError(t, err)

	got := s.state.articles["a1"]
	assert.True(t, d("20").Equal(got.QuantityOnHand))
	assert.True(t, d("65").Equal(got.AverageCost), "(10×50 + 10×80) / 20")
}

func TestRecordEntry_SobreRecepcionSeRechazaSinEscrituras(t *testing.T) {
	s := newOrderStore()
	uc := newReceptionUC(s)

	_, err := uc.RecordEntry(context.Background(), entryReq("po-1", in("a1", "11")), actor)
	assert.ErrorIs(t, err, domain.ErrInvalidLine)

	_, err = uc.RecordEntry(context.Background(), entryReq("po-1", in("a1", "8")), actor)
	require.NoError(t, err)
	_, err = uc.RecordEntry(context.Background(), entryReq("po-1", in("a1", "3")), actor)
	assert.ErrorIs(t, err, domain.ErrInvalidLine, "8 + 3 supera los 10 ordenados")

	assert.Len(t, s.state.entries, 1)
	assert.True(t, d("8").Equal(s.state.articles["a1"].QuantityOnHand))
}

func TestRecordEntry_ArticuloAjenoALaOrden(t *testing.T) {
	s := newOrderStore()
	_, err := newReceptionUC(s).RecordEntry(context.Background(), entryReq("po-1", in("old", "1")), actor)
	assert.ErrorIs(t, err, domain.ErrInvalidLine)
	assert.Empty(t, s.state.entries)
}

func TestRecordEntry_ValidacionesDeEntrada(t *testing.T) {
	s := newOrderStore()
	uc := newReceptionUC(s)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateWarehouseEntryRequest
		want error
	}{
		{"sin líneas", entryReq("po-1"), domain.ErrInvalidLine},
		{"cantidad cero", entryReq("po-1", in("a1", "0")), domain.ErrInvalidLine},
		{"sin artículo", entryReq("po-1", in("", "1")), domain.ErrInvalidLine},
		{"fecha inválida", dto.CreateWarehouseEntryRequest{OrderID: "po-1", WarehouseID: "wh-1", Date: "10/06/2024", Lines: []dto.WarehouseEntryLineIn{in("a1", "1")}}, domain.ErrInvalidInput},
		{"bodega inexistente", dto.CreateWarehouseEntryRequest{OrderID: "po-1", WarehouseID: "wh-x", Lines: []dto.WarehouseEntryLineIn{in("a1", "1")}}, domain.ErrNotFound},
		{"orden inexistente", entryReq("po-x", in("a1", "1")), domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.RecordEntry(ctx, tt.req, actor)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, s.state.entries)
}

func TestRecordEntry_OrdenConPagosNoCambiaEstado(t *testing.T) {
	s := newOrderStore()
	o := s.state.orders["po-1"]
	o.Status, o.PaymentStatus = entity.OrderStatusPartiallyPaid, entity.PaymentStatusPartiallyPaid
	s.state.orders["po-1"] = o

	_, err := newReceptionUC(s).RecordEntry(context.Background(), entryReq("po-1", in("a2", "1")), actor)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPartiallyPaid, s.state.orders["po-1"].Status)
}

func TestListByOrder_OrdenInexistente(t *testing.T) {
	_, err := newReceptionUC(newMemStore()).ListByOrder(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
