package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment abono a una orden de compra.
type Payment struct {
	ID        string
	OrderID   string
	Amount    decimal.Decimal
	Date      time.Time
	Method    string
	Reference string
	Notes     string
	ActorID   string // solo auditoría
	ActorName string
	Seq       int64 // orden de inserción asignado por la base de datos
	CreatedAt time.Time
}
