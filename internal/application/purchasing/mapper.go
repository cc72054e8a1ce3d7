package purchasing

import (
	"time"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/purchasing"
)

const dateLayout = "2006-01-02"

func toOrderResponse(o *entity.PurchaseOrder, l *purchasing.Ledger, s purchasing.PaymentSummary) *dto.PurchaseOrderResponse {
	out := &dto.PurchaseOrderResponse{
		ID:            o.ID,
		Number:        o.Number,
		SupplierID:    o.SupplierID,
		OrderDate:     o.OrderDate.Format(dateLayout),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		Subtotal:      l.Subtotal,
		Taxes:         l.Taxes,
		Total:         l.Total,
		Notes:         o.Notes,
		CreatedBy:     o.CreatedBy,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Lines:         make([]dto.OrderLineResponse, 0, len(l.Lines)),
		Reception:     toReceptionResponse(l),
		Payments:      toSummaryResponse(s),
	}
	if o.DeliveryDate != nil {
		out.DeliveryDate = o.DeliveryDate.Format(dateLayout)
	}
	for _, ls := range l.Lines {
		out.Lines = append(out.Lines, dto.OrderLineResponse{
			ID:               ls.LineID,
			LineType:         string(ls.LineType),
			ArticleID:        ls.ArticleID,
			Description:      ls.Description,
			Quantity:         ls.Ordered,
			UnitCost:         ls.UnitCost,
			Taxes:            ls.Taxes,
			LineTotal:        ls.LineTotal,
			QuantityReceived: ls.Received,
			QuantityPending:  ls.Pending,
		})
	}
	return out
}

func toReceptionResponse(l *purchasing.Ledger) dto.ReceptionResponse {
	return dto.ReceptionResponse{
		TotalOrdered:      l.TotalOrdered,
		TotalReceived:     l.TotalReceived,
		TotalPending:      l.TotalPending,
		ReceptionComplete: l.ReceptionComplete,
	}
}

func toSummaryResponse(s purchasing.PaymentSummary) dto.PaymentSummaryResponse {
	out := dto.PaymentSummaryResponse{
		Total:         s.Total,
		TotalPaid:     s.TotalPaid,
		Remaining:     s.Remaining,
		PaymentStatus: string(s.Status),
		Payments:      make([]dto.PaymentResponse, 0, len(s.Payments)),
	}
	for _, p := range s.Payments {
		out.Payments = append(out.Payments, dto.PaymentResponse{
			ID:        p.ID,
			Amount:    p.Amount,
			Date:      p.Date.Format(dateLayout),
			Method:    p.Method,
			Reference: p.Reference,
			Notes:     p.Notes,
			ActorID:   p.ActorID,
			ActorName: p.ActorName,
			CreatedAt: p.CreatedAt,
		})
	}
	return out
}

func toEntryResponse(e *entity.WarehouseEntry) *dto.WarehouseEntryResponse {
	out := &dto.WarehouseEntryResponse{
		ID:          e.ID,
		OrderID:     e.OrderID,
		WarehouseID: e.WarehouseID,
		Date:        e.Date.Format(dateLayout),
		Notes:       e.Notes,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		Lines:       make([]dto.WarehouseEntryLineResponse, 0, len(e.Lines)),
	}
	for _, l := range e.Lines {
		out.Lines = append(out.Lines, dto.WarehouseEntryLineResponse{
			ID:          l.ID,
			OrderLineID: l.OrderLineID,
			ArticleID:   l.ArticleID,
			Quantity:    l.Quantity,
		})
	}
	return out
}

// parseDate interpreta YYYY-MM-DD; vacío devuelve la fecha de hoy.
func parseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, s)
}
