package receivables

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// InvoiceUseCase registra y consulta facturas de venta que alimentan la cartera.
type InvoiceUseCase struct {
	invoices     repository.InvoiceRepository
	thirdParties repository.ThirdPartyRepository
	now          func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, thirdParties repository.ThirdPartyRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, thirdParties: thirdParties, now: time.Now}
}

// Create valida el cliente y los montos. Sin amountPending el saldo es el total.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	issue, err := time.Parse(dateLayout, in.IssueDate)
	if err != nil {
		return nil, domain.Detail(domain.ErrInvalidInput, "issueDate debe tener formato YYYY-MM-DD")
	}
	var due *time.Time
	if in.DueDate != "" {
		t, err := time.Parse(dateLayout, in.DueDate)
		if err != nil {
			return nil, domain.Detail(domain.ErrInvalidInput, "dueDate debe tener formato YYYY-MM-DD")
		}
		if t.Before(issue) {
			return nil, domain.Detail(domain.ErrInvalidInput, "dueDate no puede ser anterior a issueDate")
		}
		due = &t
	}

	if in.Total.IsNegative() {
		return nil, domain.Detail(domain.ErrInvalidAmount, "total no puede ser negativo")
	}
	pending := in.Total
	if in.AmountPending != nil {
		pending = *in.AmountPending
	}
	if pending.IsNegative() || pending.GreaterThan(in.Total) {
		return nil, domain.Detail(domain.ErrInvalidAmount, "amountPending debe estar entre 0 y el total")
	}

	client, err := uc.thirdParties.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.Detail(domain.ErrNotFound, "cliente no encontrado")
	}
	if !client.Active || !client.IsClient() {
		return nil, domain.Detail(domain.ErrInvalidInput, "el tercero no es un cliente activo")
	}

	now := uc.now()
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		ClientID:      client.ID,
		Number:        strings.TrimSpace(in.Number),
		IssueDate:     issue,
		DueDate:       due,
		Total:         in.Total,
		AmountPending: pending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Get factura por ID.
func (uc *InvoiceUseCase) Get(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List facturas, opcionalmente de un cliente.
func (uc *InvoiceUseCase) List(ctx context.Context, clientID string, limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoices.List(ctx, clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	out := &dto.InvoiceResponse{
		ID:            inv.ID,
		ClientID:      inv.ClientID,
		Number:        inv.Number,
		IssueDate:     inv.IssueDate.Format(dateLayout),
		Total:         inv.Total,
		AmountPending: inv.AmountPending,
		CreatedAt:     inv.CreatedAt,
	}
	if inv.DueDate != nil {
		out.DueDate = inv.DueDate.Format(dateLayout)
	}
	return out
}
