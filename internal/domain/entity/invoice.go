package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice factura de venta (cuenta por cobrar).
type Invoice struct {
	ID            string
	ClientID      string
	Number        string
	IssueDate     time.Time
	DueDate       *time.Time // nil = sin fecha de vencimiento
	Total         decimal.Decimal
	AmountPending decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
