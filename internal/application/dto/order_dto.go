package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	Number       string                   `json:"number" validate:"omitempty,max=40"`
	SupplierID   string                   `json:"supplierId" validate:"required"`
	OrderDate    string                   `json:"orderDate" validate:"required,datetime=2006-01-02"`
	DeliveryDate string                   `json:"deliveryDate" validate:"omitempty,datetime=2006-01-02"`
	Notes        string                   `json:"notes"`
	Lines        []CreateOrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// CreateOrderLineRequest línea de la orden. LineType vacío = PRODUCT.
type CreateOrderLineRequest struct {
	LineType    string          `json:"lineType" validate:"omitempty,oneof=PRODUCT SERVICE"`
	ArticleID   string          `json:"articleId"`
	Description string          `json:"description" validate:"max=300"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	Taxes       decimal.Decimal `json:"taxes"`
}

// OrderLineResponse línea con su estado de recepción.
type OrderLineResponse struct {
	ID               string          `json:"id"`
	LineType         string          `json:"lineType"`
	ArticleID        string          `json:"articleId,omitempty"`
	Description      string          `json:"description"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	Taxes            decimal.Decimal `json:"taxes"`
	LineTotal        decimal.Decimal `json:"lineTotal"`
	QuantityReceived decimal.Decimal `json:"quantityReceived"`
	QuantityPending  decimal.Decimal `json:"quantityPending"`
}

// ReceptionResponse estado de recepción de la orden.
type ReceptionResponse struct {
	TotalOrdered      decimal.Decimal `json:"totalOrdered"`
	TotalReceived     decimal.Decimal `json:"totalReceived"`
	TotalPending      decimal.Decimal `json:"totalPending"`
	ReceptionComplete bool            `json:"receptionComplete"`
}

// PurchaseOrderResponse orden con libro de recepción y resumen de pagos.
type PurchaseOrderResponse struct {
	ID            string                 `json:"id"`
	Number        string                 `json:"number"`
	SupplierID    string                 `json:"supplierId"`
	OrderDate     string                 `json:"orderDate"`
	DeliveryDate  string                 `json:"deliveryDate,omitempty"`
	Status        string                 `json:"status"`
	PaymentStatus string                 `json:"paymentStatus"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	Taxes         decimal.Decimal        `json:"taxes"`
	Total         decimal.Decimal        `json:"total"`
	Notes         string                 `json:"notes"`
	CreatedBy     string                 `json:"createdBy"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
	Lines         []OrderLineResponse    `json:"lines"`
	Reception     ReceptionResponse      `json:"reception"`
	Payments      PaymentSummaryResponse `json:"payments"`
}

// PurchaseOrderHeaderResponse cabecera para listados.
type PurchaseOrderHeaderResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	SupplierID    string          `json:"supplierId"`
	OrderDate     string          `json:"orderDate"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Total         decimal.Decimal `json:"total"`
}

// PurchaseOrderListResponse lista paginada de órdenes.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderHeaderResponse `json:"items"`
	Page  PageResponse                  `json:"page"`
}
