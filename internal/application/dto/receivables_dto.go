package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest registra una factura de venta en cartera.
type CreateInvoiceRequest struct {
	ClientID  string          `json:"clientId" validate:"required"`
	Number    string          `json:"number" validate:"required,max=40"`
	IssueDate string          `json:"issueDate" validate:"required,datetime=2006-01-02"`
	DueDate   string          `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Total     decimal.Decimal `json:"total"`
	// AmountPending nil = igual al total.
	AmountPending *decimal.Decimal `json:"amountPending"`
}

// InvoiceResponse factura de venta.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"clientId"`
	Number        string          `json:"number"`
	IssueDate     string          `json:"issueDate"`
	DueDate       string          `json:"dueDate,omitempty"`
	Total         decimal.Decimal `json:"total"`
	AmountPending decimal.Decimal `json:"amountPending"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AgingReportResponse respuesta de GET /api/receivables/aging.
type AgingReportResponse struct {
	GeneratedAt  time.Time           `json:"generatedAt"`
	CutoffDate   string              `json:"cutoffDate"`
	TotalPending decimal.Decimal     `json:"totalPending"`
	Summary      AgingSummary        `json:"summary"`
	Clients      []AgingClientResult `json:"clients"`
}

// AgingSummary totales del informe.
type AgingSummary struct {
	TotalClients    int             `json:"totalClients"`
	OverdueAmount   decimal.Decimal `json:"overdueAmount"`
	NotYetDueAmount decimal.Decimal `json:"notYetDueAmount"`
}

// AgingClientResult cartera de un cliente por rangos de días vencidos.
type AgingClientResult struct {
	Name          string          `json:"name"`
	Identifier    string          `json:"identifier"`
	TotalPending  decimal.Decimal `json:"totalPending"`
	Bucket0To30   decimal.Decimal `json:"bucket0to30"`
	Bucket31To60  decimal.Decimal `json:"bucket31to60"`
	Bucket61To90  decimal.Decimal `json:"bucket61to90"`
	BucketOver90  decimal.Decimal `json:"bucketOver90"`
	OverdueAmount decimal.Decimal `json:"overdueAmount"`
}
