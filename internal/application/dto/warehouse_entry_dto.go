package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseEntryRequest cuerpo de POST /api/warehouse-entries.
type CreateWarehouseEntryRequest struct {
	OrderID     string                 `json:"orderId" validate:"required"`
	WarehouseID string                 `json:"warehouseId" validate:"required"`
	Date        string                 `json:"date" validate:"required,datetime=2006-01-02"`
	Notes       string                 `json:"notes" validate:"max=500"`
	Lines       []WarehouseEntryLineIn `json:"lines" validate:"required,min=1,dive"`
}

// WarehouseEntryLineIn cantidad recibida. OrderLineID es opcional.
type WarehouseEntryLineIn struct {
	ArticleID   string          `json:"articleId" validate:"required"`
	OrderLineID string          `json:"orderLineId"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// WarehouseEntryLineResponse línea registrada.
type WarehouseEntryLineResponse struct {
	ID          string          `json:"id"`
	OrderLineID string          `json:"orderLineId"`
	ArticleID   string          `json:"articleId"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// WarehouseEntryResponse entrada de almacén registrada.
type WarehouseEntryResponse struct {
	ID          string                       `json:"id"`
	OrderID     string                       `json:"orderId"`
	WarehouseID string                       `json:"warehouseId"`
	Date        string                       `json:"date"`
	Notes       string                       `json:"notes,omitempty"`
	CreatedBy   string                       `json:"createdBy,omitempty"`
	CreatedAt   time.Time                    `json:"createdAt"`
	Lines       []WarehouseEntryLineResponse `json:"lines"`
	// Reception estado de recepción de la orden después de la entrada.
	Reception *ReceptionResponse `json:"reception,omitempty"`
}
