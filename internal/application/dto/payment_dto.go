package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest cuerpo de POST /api/orders/{id}/payments.
type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date" validate:"required,datetime=2006-01-02"`
	Method    string          `json:"method" validate:"max=50"`
	Reference string          `json:"reference" validate:"max=100"`
	Notes     string          `json:"notes" validate:"max=500"`
}

// PaymentResponse un pago registrado.
type PaymentResponse struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Method    string          `json:"method,omitempty"`
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	ActorID   string          `json:"actorId,omitempty"`
	ActorName string          `json:"actorName,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// PaymentSummaryResponse total, pagado y saldo; pagos del más reciente al más antiguo.
type PaymentSummaryResponse struct {
	Total         decimal.Decimal   `json:"total"`
	TotalPaid     decimal.Decimal   `json:"totalPaid"`
	Remaining     decimal.Decimal   `json:"remaining"`
	PaymentStatus string            `json:"paymentStatus"`
	Payments      []PaymentResponse `json:"payments"`
}
