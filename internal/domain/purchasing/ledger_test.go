package purchasing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/purchasing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func productLine(id, article, qty, cost, taxes string) entity.PurchaseOrderLine {
	return entity.PurchaseOrderLine{
		ID: id, LineType: entity.LineTypeProduct, ArticleID: article,
		Quantity: d(qty), UnitCost: d(cost), Taxes: d(taxes),
	}
}

func received(article, qty string) entity.WarehouseEntryLine {
	return entity.WarehouseEntryLine{ArticleID: article, Quantity: d(qty)}
}

func orderWith(lines ...entity.PurchaseOrderLine) *entity.PurchaseOrder {
	return &entity.PurchaseOrder{ID: "po-1", Lines: lines}
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeTotals_SubtotalMasImpuestos(t *testing.T) {
	lines := []entity.PurchaseOrderLine{
		productLine("l1", "a1", "3", "10.005", "5.70"),
		productLine("l2", "a2", "2", "7.25", "2.76"),
	}
	subtotal, taxes, total := purchasing.ComputeTotals(lines)

	// 3×10.005 + 2×7.25 = 30.015 + 14.50 = 44.515 → 44.52 (half-up)
	assert.True(t, d("44.52").Equal(subtotal), "subtotal redondeado a centavos, got %s", subtotal)
	assert.True(t, d("8.46").Equal(taxes))
	assert.True(t, subtotal.Add(taxes).Equal(total), "total = subtotal + impuestos")
}

func TestLineTotal_CantidadPorCostoMasImpuestos(t *testing.T) {
	l := productLine("l1", "a1", "4", "2.50", "1.90")
	assert.True(t, d("11.90").Equal(purchasing.LineTotal(l)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepción
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeLedger_RecepcionCompleta(t *testing.T) {
	order := orderWith(
		productLine("l1", "a1", "10", "1", "0"),
		productLine("l2", "a2", "5", "1", "0"),
	)
	ledger, err := purchasing.ComputeLedger(order, []entity.WarehouseEntryLine{
		received("a1", "10"), received("a2", "5"),
	})
	require.NoError(t, err)

	assert.True(t, ledger.ReceptionComplete, "todo lo ordenado fue recibido")
	assert.True(t, ledger.TotalPending.IsZero())
	assert.True(t, d("15").Equal(ledger.TotalOrdered))
	assert.True(t, d("15").Equal(ledger.TotalReceived))
}

func TestComputeLedger_RecepcionParcial(t *testing.T) {
	order := orderWith(
		productLine("l1", "a1", "10", "1", "0"),
		productLine("l2", "a2", "5", "1", "0"),
	)
	ledger, err := purchasing.ComputeLedger(order, []entity.WarehouseEntryLine{
		received("a1", "4"), received("a2", "5"),
	})
	require.NoError(t, err)

	assert.False(t, ledger.ReceptionComplete)
	assert.True(t, d("6").Equal(ledger.TotalPending), "pendiente = 10-4 + 5-5")
	assert.True(t, ledger.ReceivedAny)
	assert.True(t, d("6").Equal(ledger.Lines[0].Pending))
	assert.True(t, ledger.Lines[1].Pending.IsZero())
}

func TestComputeLedger_ToleranciaEpsilon(t *testing.T) {
	order := orderWith(productLine("l1", "a1", "1", "1", "0"))
	ledger, err := purchasing.ComputeLedger(order, []entity.WarehouseEntryLine{received("a1", "0.99995")})
	require.NoError(t, err)
	assert.True(t, ledger.ReceptionComplete, "un pendiente menor a 1e-4 se considera cero")
}

func TestComputeLedger_MismoArticuloEnVariasLineas(t *testing.T) {
	order := orderWith(
		productLine("l1", "a1", "3", "1", "0"),
		productLine("l2", "a1", "2", "1", "0"),
	)
	ledger, err := purchasing.ComputeLedger(order, []entity.WarehouseEntryLine{received("a1", "4")})
	require.NoError(t, err)

	assert.True(t, d("3").Equal(ledger.Lines[0].Received), "la primera línea se llena primero")
	assert.True(t, d("1").Equal(ledger.Lines[1].Received))
	assert.True(t, d("1").Equal(ledger.TotalPending))
}

func TestComputeLedger_EntradaPorLineaExplicita(t *testing.T) {
	order := orderWith(
		productLine("l1", "a1", "3", "1", "0"),
		productLine("l2", "a1", "2", "1", "0"),
	)
	ledger, err := purchasing.ComputeLedger(order, []entity.WarehouseEntryLine{
		{OrderLineID: "l2", ArticleID: "a1", Quantity: d("2")},
	})
	require.NoError(t, err)

	assert.True(t, ledger.Lines[0].Received.IsZero())
	assert.True(t, d("2").Equal(ledger.Lines[1].Received))
}

func TestComputeLedger_LineaDeServicioNoRequiereRecepcion(t *testing.T) {
	order := orderWith(
		productLine("l1", "a1", "2", "10", "0"),
		entity.PurchaseOrderLine{ID: "l2", LineType: entity.LineTypeService, Description: "Flete",
			Quantity: d("1"), UnitCost: d("50"), Taxes: d("0")},
	)
	ledger, err := purchasing.ComputeLedger(order, []entity.WarehouseEntryLine{received("a1", "2")})
	require.NoError(t, err)

	assert.True(t, ledger.ReceptionComplete)
	assert.True(t, d("70").Equal(ledger.Total))
}

func TestComputeLedger_SobreRecepcionNoGeneraPendienteNegativo(t *testing.T) {
	order := orderWith(productLine("l1", "a1", "2", "1", "0"))
	ledger, err := purchasing.ComputeLedger(order, []entity.WarehouseEntryLine{received("a1", "5")})
	require.NoError(t, err)
	assert.True(t, ledger.Lines[0].Pending.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeLedger_OrdenInexistente(t *testing.T) {
	_, err := purchasing.ComputeLedger(nil, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidateLines(t *testing.T) {
	cases := []struct {
		name string
		line entity.PurchaseOrderLine
	}{
		{"cantidad negativa", productLine("l1", "a1", "-1", "1", "0")},
		{"producto sin artículo", productLine("l1", "", "1", "1", "0")},
		{"costo negativo", productLine("l1", "a1", "1", "-1", "0")},
		{"tipo desconocido", entity.PurchaseOrderLine{LineType: "OTRO", Quantity: d("1")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := purchasing.ValidateLines([]entity.PurchaseOrderLine{tc.line})
			assert.ErrorIs(t, err, domain.ErrInvalidLine)
		})
	}

	service := entity.PurchaseOrderLine{LineType: entity.LineTypeService, Quantity: d("1"), UnitCost: d("1"), Taxes: d("0")}
	assert.NoError(t, purchasing.ValidateLines([]entity.PurchaseOrderLine{service}),
		"una línea de servicio no requiere artículo")
	assert.ErrorIs(t, purchasing.ValidateLines(nil), domain.ErrInvalidLine)
}
