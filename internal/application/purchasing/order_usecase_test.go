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

func newOrderUC(s *memStore) *purchasing.OrderUseCase {
	return purchasing.NewOrderUseCase(s, memOrders{s}, memEntries{s}, memPayments{s}, memThirdParties{s}, memArticles{s})
}

func orderReq(supplier string, lines ...dto.CreateOrderLineRequest) dto.CreatePurchaseOrderRequest {
	return dto.CreatePurchaseOrderRequest{SupplierID: supplier, OrderDate: "2024-06-01", Lines: lines}
}

func product(article, qty, cost, taxes string) dto.CreateOrderLineRequest {
	return dto.CreateOrderLineRequest{ArticleID: article, Quantity: d(qty), UnitCost: d(cost), Taxes: d(taxes)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_CalculaTotalesYEstadoInicial(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)

	out, err := newOrderUC(s).Create(context.Background(), actor, orderReq("sup-1",
		product("a1", "3", "14.505", "0"),
		product("a2", "2", "100", "38"),
		dto.CreateOrderLineRequest{LineType: "SERVICE", Description: "Flete", Quantity: d("1"), UnitCost: d("50"), Taxes: d("0")},
	))
	require.NoError(t, err)

	assert.True(t, d("293.52").Equal(out.Subtotal), "43.515 + 200 + 50 redondeado a centavos")
	assert.True(t, d("38").Equal(out.Taxes))
	assert.True(t, d("331.52").Equal(out.Total))
	assert.Equal(t, "PENDING", out.Status)
	assert.Equal(t, "UNPAID", out.PaymentStatus)
	assert.Contains(t, out.Number, "OC-")
	require.Len(t, out.Lines, 3)
	assert.Equal(t, "Tornillo", out.Lines[0].Description, "la descripción toma el nombre del artículo")
	assert.Empty(t, out.Lines[2].ArticleID)

	stored, ok := s.state.orders[out.ID]
	require.True(t, ok)
	assert.Equal(t, actor.ID, stored.CreatedBy)
	assert.Len(t, stored.Lines, 3)
}

func TestCreateOrder_ProveedorInvalido(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	uc := newOrderUC(s)

	_, err := uc.Create(context.Background(), actor, orderReq("no-existe", product("a1", "1", "1", "0")))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Create(context.Background(), actor, orderReq("cli-1", product("a1", "1", "1", "0")))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un cliente no puede ser proveedor")

	tp := s.state.thirdParties["sup-1"]
	tp.Active = false
	s.state.thirdParties["sup-1"] = tp
	_, err = uc.Create(context.Background(), actor, orderReq("sup-1", product("a1", "1", "1", "0")))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, s.state.orders)
}

func TestCreateOrder_LineasInvalidas(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	uc := newOrderUC(s)

	tests := []struct {
		name string
		req  dto.CreatePurchaseOrderRequest
		want error
	}{
		{"sin líneas", orderReq("sup-1"), domain.ErrInvalidLine},
		{"artículo inactivo", orderReq("sup-1", product("old", "1", "1", "0")), domain.ErrInvalidLine},
		{"artículo inexistente", orderReq("sup-1", product("zz", "1", "1", "0")), domain.ErrInvalidLine},
		{"cantidad negativa", orderReq("sup-1", product("a1", "-1", "1", "0")), domain.ErrInvalidLine},
		{"fecha inválida", dto.CreatePurchaseOrderRequest{SupplierID: "sup-1", OrderDate: "junio", Lines: []dto.CreateOrderLineRequest{product("a1", "1", "1", "0")}}, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), actor, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, s.state.orders)
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrder_IncluyeRecepcionYPagos(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	seedOrder(s, "po-1", "10", "80", "5", "40")
	seedReceived(s, "po-1", "10", "2")

	out, err := newOrderUC(s).Get(context.Background(), "po-1")
	require.NoError(t, err)

	assert.False(t, out.Reception.ReceptionComplete)
	assert.True(t, d("3").Equal(out.Reception.TotalPending))
	assert.True(t, d("3").Equal(out.Lines[1].QuantityPending))
	assert.True(t, d("1000").Equal(out.Payments.Remaining))
	assert.Empty(t, out.Payments.Payments)
}

func TestGetOrder_NoEncontrada(t *testing.T) {
	_, err := newOrderUC(newMemStore()).Get(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrders_FiltraPorEstado(t *testing.T) {
	s := newMemStore()
	seedCatalog(s)
	seedOrder(s, "po-1", "1", "1", "1", "1")
	seedOrder(s, "po-2", "1", "1", "1", "1")
	o := s.state.orders["po-2"]
	o.Status = entity.OrderStatusReceived
	s.state.orders["po-2"] = o

	out, err := newOrderUC(s).List(context.Background(), "RECEIVED", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "po-2", out.Items[0].ID)
	assert.Equal(t, 20, out.Page.Limit)
}
