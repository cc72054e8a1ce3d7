// Package analytics contiene los indicadores del panel: compras abiertas,
// saldo por pagar a proveedores y cartera a la fecha.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del panel.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. CountOpenOrders        → OpenOrders
//  2. PayablesOutstanding    → PayablesOutstanding
//  3. ReceivablesPending(hoy) → ReceivablesPending + ReceivablesOverdue
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	type countResult struct {
		n   int
		err error
	}
	type amountResult struct {
		amount decimal.Decimal
		err    error
	}
	type receivablesResult struct {
		pending decimal.Decimal
		overdue decimal.Decimal
		err     error
	}

	ordersCh := make(chan countResult, 1)
	payablesCh := make(chan amountResult, 1)
	receivablesCh := make(chan receivablesResult, 1)

	go func() {
		n, err := uc.repo.CountOpenOrders(ctx)
		ordersCh <- countResult{n, err}
	}()
	go func() {
		amount, err := uc.repo.PayablesOutstanding(ctx)
		payablesCh <- amountResult{amount, err}
	}()
	go func() {
		pending, overdue, err := uc.repo.ReceivablesPending(ctx, today)
		receivablesCh <- receivablesResult{pending, overdue, err}
	}()

	orders := <-ordersCh
	payables := <-payablesCh
	rec := <-receivablesCh

	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: órdenes abiertas: %w", orders.err)
	}
	if payables.err != nil {
		return nil, fmt.Errorf("dashboard: cuentas por pagar: %w", payables.err)
	}
	if rec.err != nil {
		return nil, fmt.Errorf("dashboard: cartera: %w", rec.err)
	}

	return &dto.DashboardSummaryDTO{
		OpenOrders:          orders.n,
		PayablesOutstanding: payables.amount.Round(2),
		ReceivablesPending:  rec.pending.Round(2),
		ReceivablesOverdue:  rec.overdue.Round(2),
		DateLabel:           monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
