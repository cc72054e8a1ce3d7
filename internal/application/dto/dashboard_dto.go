package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Compras
	OpenOrders          int             `json:"openOrders"`          // órdenes no finalizadas
	PayablesOutstanding decimal.Decimal `json:"payablesOutstanding"` // saldo por pagar a proveedores

	// Cartera a la fecha
	ReceivablesPending decimal.Decimal `json:"receivablesPending"`
	ReceivablesOverdue decimal.Decimal `json:"receivablesOverdue"`

	DateLabel string `json:"dateLabel"` // ej: "Junio 2024"
}
