// Package purchasing contiene las reglas puras de conciliación de órdenes de compra:
// totales financieros, estado de recepción y máquina de estados de pago.
package purchasing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
)

// ReceptionEpsilon tolerancia para considerar una cantidad pendiente como cero.
var ReceptionEpsilon = decimal.New(1, -4)

// LineState estado derivado de una línea de la orden.
type LineState struct {
	LineID      string
	LineType    entity.LineType
	ArticleID   string
	Description string
	Ordered     decimal.Decimal
	Received    decimal.Decimal
	Pending     decimal.Decimal
	UnitCost    decimal.Decimal
	Taxes       decimal.Decimal
	LineTotal   decimal.Decimal
}

// Ledger estado financiero y de recepción de una orden.
type Ledger struct {
	Lines             []LineState
	TotalOrdered      decimal.Decimal
	TotalReceived     decimal.Decimal
	TotalPending      decimal.Decimal
	ReceptionComplete bool
	// ReceivedAny hay al menos una cantidad física recibida (líneas de producto).
	ReceivedAny bool
	Subtotal    decimal.Decimal
	Taxes       decimal.Decimal
	Total       decimal.Decimal
}

// ValidateLines verifica cantidades, costos e impuestos no negativos y que toda
// línea de producto tenga artículo.
func ValidateLines(lines []entity.PurchaseOrderLine) error {
	if len(lines) == 0 {
		return domain.Detail(domain.ErrInvalidLine, "la orden no tiene líneas")
	}
	for i, l := range lines {
		switch l.LineType {
		case entity.LineTypeProduct:
			if l.ArticleID == "" {
				return domain.Detail(domain.ErrInvalidLine, fmt.Sprintf("línea %d: artículo requerido", i+1))
			}
		case entity.LineTypeService:
		default:
			return domain.Detail(domain.ErrInvalidLine, fmt.Sprintf("línea %d: tipo %q desconocido", i+1, l.LineType))
		}
		if l.Quantity.IsNegative() {
			return domain.Detail(domain.ErrInvalidLine, fmt.Sprintf("línea %d: cantidad negativa", i+1))
		}
		if l.UnitCost.IsNegative() || l.Taxes.IsNegative() {
			return domain.Detail(domain.ErrInvalidLine, fmt.Sprintf("línea %d: costo o impuesto negativo", i+1))
		}
	}
	return nil
}

// LineTotal = cantidad × costo unitario + impuestos.
func LineTotal(l entity.PurchaseOrderLine) decimal.Decimal {
	return l.Quantity.Mul(l.UnitCost).Add(l.Taxes)
}

// ComputeTotals calcula subtotal (redondeado a centavos), impuestos y total de las líneas.
func ComputeTotals(lines []entity.PurchaseOrderLine) (subtotal, taxes, total decimal.Decimal) {
	for _, l := range lines {
		subtotal = subtotal.Add(l.Quantity.Mul(l.UnitCost))
		taxes = taxes.Add(l.Taxes)
	}
	subtotal = subtotal.Round(2)
	return subtotal, taxes, subtotal.Add(taxes)
}

// ComputeLedger deriva el estado de la orden a partir de sus líneas y de las líneas
// de entradas de almacén registradas contra ella. No tiene efectos secundarios.
//
// Una línea de entrada con OrderLineID se asigna a esa línea. Sin él, se reparte
// entre las líneas de producto del mismo artículo en orden, llenando cada una hasta
// su cantidad ordenada; el excedente queda en la última. Las líneas de servicio
// no requieren recepción física y cuentan como recibidas.
func ComputeLedger(order *entity.PurchaseOrder, received []entity.WarehouseEntryLine) (*Ledger, error) {
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if err := ValidateLines(order.Lines); err != nil {
		return nil, err
	}

	states := make([]LineState, len(order.Lines))
	byID := make(map[string]int, len(order.Lines))
	byArticle := make(map[string][]int)
	for i, l := range order.Lines {
		states[i] = LineState{
			LineID:      l.ID,
			LineType:    l.LineType,
			ArticleID:   l.ArticleID,
			Description: l.Description,
			Ordered:     l.Quantity,
			UnitCost:    l.UnitCost,
			Taxes:       l.Taxes,
			LineTotal:   LineTotal(l),
		}
		if l.ID != "" {
			byID[l.ID] = i
		}
		if l.LineType == entity.LineTypeProduct {
			byArticle[l.ArticleID] = append(byArticle[l.ArticleID], i)
		}
	}

	for _, r := range received {
		if r.OrderLineID != "" {
			if i, ok := byID[r.OrderLineID]; ok && states[i].LineType == entity.LineTypeProduct {
				states[i].Received = states[i].Received.Add(r.Quantity)
			}
			continue
		}
		allocate(states, byArticle[r.ArticleID], r.Quantity)
	}

	ledger := &Ledger{Lines: states}
	for i := range states {
		s := &states[i]
		if s.LineType == entity.LineTypeService {
			s.Received = s.Ordered
		} else if s.Received.IsPositive() {
			ledger.ReceivedAny = true
		}
		s.Pending = decimal.Max(decimal.Zero, s.Ordered.Sub(s.Received))
		ledger.TotalOrdered = ledger.TotalOrdered.Add(s.Ordered)
		ledger.TotalReceived = ledger.TotalReceived.Add(s.Received)
		ledger.TotalPending = ledger.TotalPending.Add(s.Pending)
	}
	ledger.ReceptionComplete = ledger.TotalPending.LessThanOrEqual(ReceptionEpsilon)
	ledger.Subtotal, ledger.Taxes, ledger.Total = ComputeTotals(order.Lines)
	return ledger, nil
}

// allocate reparte qty entre las líneas candidatas llenando cada una hasta lo ordenado.
func allocate(states []LineState, candidates []int, qty decimal.Decimal) {
	if len(candidates) == 0 {
		return
	}
	for n, i := range candidates {
		if n == len(candidates)-1 {
			states[i].Received = states[i].Received.Add(qty)
			return
		}
		room := states[i].Ordered.Sub(states[i].Received)
		if !room.IsPositive() {
			continue
		}
		take := decimal.Min(room, qty)
		states[i].Received = states[i].Received.Add(take)
		qty = qty.Sub(take)
		if !qty.IsPositive() {
			return
		}
	}
}
