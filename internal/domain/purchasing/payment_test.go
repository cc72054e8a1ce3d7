package purchasing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/purchasing"
)

func receivedLedger(t *testing.T, total string) *purchasing.Ledger {
	t.Helper()
	order := orderWith(productLine("l1", "a1", "1", total, "0"))
	ledger, err := purchasing.ComputeLedger(order, []entity.WarehouseEntryLine{received("a1", "1")})
	require.NoError(t, err)
	require.True(t, ledger.ReceptionComplete)
	return ledger
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckPayment
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckPayment_SecuenciaHastaPagada(t *testing.T) {
	ledger := receivedLedger(t, "1000.00")
	paid := d("0")

	assert.Equal(t, entity.PaymentStatusUnpaid, purchasing.StatusFor(ledger.Total, paid))
	assert.True(t, d("1000").Equal(purchasing.Remaining(ledger.Total, paid)))

	require.NoError(t, purchasing.CheckPayment(ledger, paid, d("400")))
	paid = paid.Add(d("400"))
	assert.Equal(t, entity.PaymentStatusPartiallyPaid, purchasing.StatusFor(ledger.Total, paid))
	assert.True(t, d("600").Equal(purchasing.Remaining(ledger.Total, paid)))

	require.NoError(t, purchasing.CheckPayment(ledger, paid, d("600")))
	paid = paid.Add(d("600"))
	assert.Equal(t, entity.PaymentStatusPaid, purchasing.StatusFor(ledger.Total, paid))
	assert.True(t, purchasing.Remaining(ledger.Total, paid).IsZero())

	err := purchasing.CheckPayment(ledger, paid, d("0.01"))
	assert.ErrorIs(t, err, domain.ErrAmountExceedsBalance, "no hay transición desde PAID")
}

func TestCheckPayment_ToleranciaDeUnCentavo(t *testing.T) {
	ledger := receivedLedger(t, "100.00")

	assert.NoError(t, purchasing.CheckPayment(ledger, d("0"), d("100.01")),
		"un centavo de más se tolera")
	assert.ErrorIs(t, purchasing.CheckPayment(ledger, d("0"), d("100.02")), domain.ErrAmountExceedsBalance)
	assert.ErrorIs(t, purchasing.CheckPayment(ledger, d("60"), d("40.02")), domain.ErrAmountExceedsBalance)
}

func TestCheckPayment_MontoInvalido(t *testing.T) {
	ledger := receivedLedger(t, "100.00")
	for _, amount := range []string{"0", "-5"} {
		err := purchasing.CheckPayment(ledger, d("0"), d(amount))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, "monto %s", amount)
	}
}

func TestCheckPayment_RecepcionIncompletaSiempreFalla(t *testing.T) {
	order := orderWith(
		productLine("l1", "a1", "10", "1", "0"),
		productLine("l2", "a2", "5", "1", "0"),
	)
	ledger, err := purchasing.ComputeLedger(order, []entity.WarehouseEntryLine{received("a1", "4"), received("a2", "5")})
	require.NoError(t, err)

	for _, amount := range []string{"0.01", "1", "15", "0", "-5"} {
		err := purchasing.CheckPayment(ledger, d("0"), d(amount))
		assert.ErrorIs(t, err, domain.ErrReceivingIncomplete, "monto %s", amount)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados y orden de pagos
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderStatusFor(t *testing.T) {
	pending := &purchasing.Ledger{}
	partial := &purchasing.Ledger{ReceivedAny: true}
	complete := &purchasing.Ledger{ReceivedAny: true, ReceptionComplete: true}

	assert.Equal(t, entity.OrderStatusPending, purchasing.OrderStatusFor(pending, entity.PaymentStatusUnpaid))
	assert.Equal(t, entity.OrderStatusPartiallyReceived, purchasing.OrderStatusFor(partial, entity.PaymentStatusUnpaid))
	assert.Equal(t, entity.OrderStatusReceived, purchasing.OrderStatusFor(complete, entity.PaymentStatusUnpaid))
	assert.Equal(t, entity.OrderStatusPartiallyPaid, purchasing.OrderStatusFor(complete, entity.PaymentStatusPartiallyPaid))
	assert.Equal(t, entity.OrderStatusFinalized, purchasing.OrderStatusFor(complete, entity.PaymentStatusPaid))
}

func TestSummarize_MasRecientePrimeroConEmpatesEstables(t *testing.T) {
	day := func(n int) time.Time { return time.Date(2024, 6, n, 0, 0, 0, 0, time.UTC) }
	payments := []entity.Payment{
		{ID: "p1", Amount: d("10"), Date: day(1), Seq: 1},
		{ID: "p2", Amount: d("20"), Date: day(3), Seq: 2},
		{ID: "p3", Amount: d("30"), Date: day(3), Seq: 3},
		{ID: "p4", Amount: d("40"), Date: day(2), Seq: 4},
	}
	summary := purchasing.Summarize(d("200"), payments)

	ids := make([]string, 0, len(summary.Payments))
	for _, p := range summary.Payments {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"p2", "p3", "p4", "p1"}, ids)
	assert.Equal(t, "p1", payments[0].ID, "no debe mutar el slice de entrada")
	assert.True(t, d("100").Equal(summary.TotalPaid))
	assert.True(t, d("100").Equal(summary.Remaining))
	assert.Equal(t, entity.PaymentStatusPartiallyPaid, summary.Status)
}
