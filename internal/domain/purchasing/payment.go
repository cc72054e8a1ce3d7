package purchasing

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// PaymentTolerance un centavo, absorbe diferencias de redondeo.
var PaymentTolerance = decimal.New(1, -2)

// PaymentSummary total, pagado, saldo y pagos de una orden.
type PaymentSummary struct {
	Total     decimal.Decimal
	TotalPaid decimal.Decimal
	Remaining decimal.Decimal
	Status    entity.PaymentStatus
	Payments  []entity.Payment
}

// ValidateAmount el monto debe ser positivo. decimal.Decimal no representa NaN ni infinito.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.Detail(domain.ErrInvalidAmount, "el monto debe ser mayor que cero")
	}
	return nil
}

// SumPayments suma los montos de los pagos.
func SumPayments(payments []entity.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Remaining saldo pendiente, nunca negativo.
func Remaining(total, paid decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, total.Sub(paid))
}

// StatusFor estado de pago según lo pagado frente al total.
func StatusFor(total, paid decimal.Decimal) entity.PaymentStatus {
	if Remaining(total, paid).LessThanOrEqual(PaymentTolerance) {
		return entity.PaymentStatusPaid
	}
	if paid.IsPositive() {
		return entity.PaymentStatusPartiallyPaid
	}
	return entity.PaymentStatusUnpaid
}

// CheckPayment valida un nuevo pago contra el estado vigente de la orden: recepción
// completa, monto y saldo, en ese orden. Sin recepción completa falla con
// ErrReceivingIncomplete sea cual sea el monto.
// Debe llamarse con el libro de pagos recién leído, no con una copia en caché.
func CheckPayment(ledger *Ledger, paid, amount decimal.Decimal) error {
	if !ledger.ReceptionComplete {
		return domain.Detail(domain.ErrReceivingIncomplete,
			"faltan "+ledger.TotalPending.String()+" unidades por recibir")
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if StatusFor(ledger.Total, paid) == entity.PaymentStatusPaid {
		return domain.Detail(domain.ErrAmountExceedsBalance, "la orden ya está pagada")
	}
	remaining := Remaining(ledger.Total, paid)
	if amount.Sub(remaining).GreaterThan(PaymentTolerance) {
		return domain.Detail(domain.ErrAmountExceedsBalance,
			"saldo pendiente "+remaining.StringFixed(2))
	}
	return nil
}

// OrderStatusFor estado de la orden combinando recepción y pago.
func OrderStatusFor(ledger *Ledger, payment entity.PaymentStatus) entity.OrderStatus {
	switch payment {
	case entity.PaymentStatusPaid:
		return entity.OrderStatusFinalized
	case entity.PaymentStatusPartiallyPaid:
		return entity.OrderStatusPartiallyPaid
	}
	switch {
	case ledger.ReceptionComplete:
		return entity.OrderStatusReceived
	case ledger.ReceivedAny:
		return entity.OrderStatusPartiallyReceived
	default:
		return entity.OrderStatusPending
	}
}

// SortNewestFirst ordena los pagos por fecha descendente. Los empates conservan el
// orden de inserción (Seq ascendente).
func SortNewestFirst(payments []entity.Payment) {
	slices.SortStableFunc(payments, func(a, b entity.Payment) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		}
		return 0
	})
}

// Summarize arma el resumen de pagos de una orden con total dado.
func Summarize(total decimal.Decimal, payments []entity.Payment) PaymentSummary {
	sorted := slices.Clone(payments)
	SortNewestFirst(sorted)
	paid := SumPayments(sorted)
	return PaymentSummary{
		Total:     total,
		TotalPaid: paid,
		Remaining: Remaining(total, paid),
		Status:    StatusFor(total, paid),
		Payments:  sorted,
	}
}
