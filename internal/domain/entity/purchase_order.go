package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de recepción/pago de la orden.
type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "PENDING"
	OrderStatusPartiallyReceived OrderStatus = "PARTIALLY_RECEIVED"
	OrderStatusReceived          OrderStatus = "RECEIVED"
	OrderStatusPartiallyPaid     OrderStatus = "PARTIALLY_PAID"
	OrderStatusFinalized         OrderStatus = "FINALIZED"
)

// PaymentStatus estado de pago. PAID es terminal.
type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "UNPAID"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
)

// LineType distingue líneas de producto (requieren artículo y recepción física) de servicios.
type LineType string

const (
	LineTypeProduct LineType = "PRODUCT"
	LineTypeService LineType = "SERVICE"
)

// PurchaseOrder cabecera de una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID            string
	Number        string
	SupplierID    string
	OrderDate     time.Time
	DeliveryDate  *time.Time
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Subtotal      decimal.Decimal // Σ cantidad × costo unitario, redondeado a centavos
	Taxes         decimal.Decimal
	Total         decimal.Decimal // Subtotal + Taxes
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Lines         []PurchaseOrderLine
}

// PurchaseOrderLine línea de la orden. LineTotal = Quantity × UnitCost + Taxes.
type PurchaseOrderLine struct {
	ID          string
	OrderID     string
	Position    int
	LineType    LineType
	ArticleID   string // vacío en líneas de servicio
	Description string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	Taxes       decimal.Decimal
	LineTotal   decimal.Decimal
}
