// Package receivables calcula la antigüedad de cartera (cuentas por cobrar) a una fecha de corte.
package receivables

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/pkg/textmatch"
)

// Receivable saldo abierto de una factura, tal como lo entrega el almacenamiento.
type Receivable struct {
	InvoiceID     string
	ClientID      string
	ClientName    string
	ClientTaxID   string
	PendingAmount decimal.Decimal
	DueDate       *time.Time // nil si falta o no se pudo leer
}

// ClientAging cartera de un cliente repartida por rangos de días vencidos.
type ClientAging struct {
	ClientID      string
	Name          string
	Identifier    string
	TotalPending  decimal.Decimal
	Bucket0To30   decimal.Decimal
	Bucket31To60  decimal.Decimal
	Bucket61To90  decimal.Decimal
	BucketOver90  decimal.Decimal
	OverdueAmount decimal.Decimal // solo facturas con al menos un día de vencidas
}

// Report informe de antigüedad de cartera.
type Report struct {
	CutoffDate      time.Time
	Clients         []ClientAging
	TotalPending    decimal.Decimal
	TotalClients    int
	OverdueAmount   decimal.Decimal
	NotYetDueAmount decimal.Decimal
}

// DateOnly trunca t a medianoche UTC conservando la fecha de calendario.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysOverdue días enteros entre el vencimiento y el corte; negativo si aún no vence.
func DaysOverdue(cutoff, due time.Time) int {
	return int(DateOnly(cutoff).Sub(DateOnly(due)).Hours() / 24)
}

// ComputeAging agrupa los saldos por cliente y rango. Los saldos ≤ 0 se excluyen;
// sin fecha de vencimiento la factura se considera vencida en la fecha de corte.
func ComputeAging(cutoff time.Time, items []Receivable) Report {
	cutoff = DateOnly(cutoff)
	byClient := make(map[string]*ClientAging)
	var order []string

	for _, it := range items {
		if !it.PendingAmount.IsPositive() {
			continue
		}
		days := 0
		if it.DueDate != nil {
			days = DaysOverdue(cutoff, *it.DueDate)
		}

		ca, ok := byClient[it.ClientID]
		if !ok {
			ca = &ClientAging{ClientID: it.ClientID, Name: it.ClientName, Identifier: it.ClientTaxID}
			byClient[it.ClientID] = ca
			order = append(order, it.ClientID)
		}

		amount := it.PendingAmount
		switch {
		case days <= 30:
			ca.Bucket0To30 = ca.Bucket0To30.Add(amount)
		case days <= 60:
			ca.Bucket31To60 = ca.Bucket31To60.Add(amount)
		case days <= 90:
			ca.Bucket61To90 = ca.Bucket61To90.Add(amount)
		default:
			ca.BucketOver90 = ca.BucketOver90.Add(amount)
		}
		if days >= 1 {
			ca.OverdueAmount = ca.OverdueAmount.Add(amount)
		}
		ca.TotalPending = ca.TotalPending.Add(amount)
	}

	clients := make([]ClientAging, 0, len(order))
	for _, id := range order {
		clients = append(clients, *byClient[id])
	}
	sort.SliceStable(clients, func(i, j int) bool {
		if c := clients[i].TotalPending.Cmp(clients[j].TotalPending); c != 0 {
			return c > 0
		}
		if clients[i].Name != clients[j].Name {
			return clients[i].Name < clients[j].Name
		}
		return clients[i].ClientID < clients[j].ClientID
	})
	return summarize(cutoff, clients)
}

// Filter conserva los clientes cuyo nombre o identificación contiene q, sin
// distinguir mayúsculas ni tildes, y recalcula los totales.
func (r Report) Filter(q string) Report {
	kept := make([]ClientAging, 0, len(r.Clients))
	for _, c := range r.Clients {
		if textmatch.Contains(q, c.Name, c.Identifier) {
			kept = append(kept, c)
		}
	}
	return summarize(r.CutoffDate, kept)
}

func summarize(cutoff time.Time, clients []ClientAging) Report {
	rep := Report{CutoffDate: cutoff, Clients: clients, TotalClients: len(clients)}
	for _, c := range clients {
		rep.TotalPending = rep.TotalPending.Add(c.TotalPending)
		rep.OverdueAmount = rep.OverdueAmount.Add(c.OverdueAmount)
	}
	rep.NotYetDueAmount = rep.TotalPending.Sub(rep.OverdueAmount)
	return rep
}
