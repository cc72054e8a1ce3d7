package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseEntry entrada de almacén: mercancía recibida contra una orden de compra.
type WarehouseEntry struct {
	ID          string
	OrderID     string
	WarehouseID string
	Date        time.Time
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time
	Lines       []WarehouseEntryLine
}

// WarehouseEntryLine cantidad recibida de un artículo.
// OrderLineID es opcional; sin él la cantidad se asigna por artículo.
type WarehouseEntryLine struct {
	ID          string
	EntryID     string
	OrderLineID string
	ArticleID   string
	Quantity    decimal.Decimal
}
