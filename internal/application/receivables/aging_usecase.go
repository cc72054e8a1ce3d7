package receivables

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/receivables"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

const dateLayout = "2006-01-02"

var errRendererMissing = errors.New("receivables: exportador no configurado")

// AgingUseCase arma el informe de antigüedad de cartera y sus exportaciones.
type AgingUseCase struct {
	invoices repository.InvoiceRepository
	pdf      AgingRenderer
	sheet    AgingRenderer
	now      func() time.Time
}

// NewAgingUseCase construye el caso de uso. pdf y sheet pueden ser nil si no se
// exporta; now nil = time.Now.
func NewAgingUseCase(invoices repository.InvoiceRepository, pdf, sheet AgingRenderer, now func() time.Time) *AgingUseCase {
	if now == nil {
		now = time.Now
	}
	return &AgingUseCase{invoices: invoices, pdf: pdf, sheet: sheet, now: now}
}

// Report calcula la cartera a cutoffDate (YYYY-MM-DD, vacío = hoy) y aplica el
// filtro por nombre o identificación del cliente.
func (uc *AgingUseCase) Report(ctx context.Context, cutoffDate, filter string) (*dto.AgingReportResponse, error) {
	now := uc.now()
	cutoff := receivables.DateOnly(now)
	if cutoffDate != "" {
		t, err := time.Parse(dateLayout, cutoffDate)
		if err != nil {
			return nil, domain.Detail(domain.ErrInvalidInput, "cutoffDate debe tener formato YYYY-MM-DD")
		}
		cutoff = t
	}

	items, err := uc.invoices.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("cartera: listar saldos abiertos: %w", err)
	}
	rep := receivables.ComputeAging(cutoff, items).Filter(filter)

	l := logger.WithComponent("receivables")
	l.Debug().
		Str("cutoff", rep.CutoffDate.Format(dateLayout)).
		Int("clients", rep.TotalClients).
		Str("total_pending", rep.TotalPending.String()).
		Msg("informe de cartera generado")

	return toAgingResponse(rep, now), nil
}

// ExportPDF informe en PDF y nombre de archivo sugerido.
func (uc *AgingUseCase) ExportPDF(ctx context.Context, cutoffDate, filter string) ([]byte, string, error) {
	return uc.export(ctx, uc.pdf, "pdf", cutoffDate, filter)
}

// ExportXLSX informe en hoja de cálculo y nombre de archivo sugerido.
func (uc *AgingUseCase) ExportXLSX(ctx context.Context, cutoffDate, filter string) ([]byte, string, error) {
	return uc.export(ctx, uc.sheet, "xlsx", cutoffDate, filter)
}

func (uc *AgingUseCase) export(ctx context.Context, r AgingRenderer, ext, cutoffDate, filter string) ([]byte, string, error) {
	if r == nil {
		return nil, "", errRendererMissing
	}
	rep, err := uc.Report(ctx, cutoffDate, filter)
	if err != nil {
		return nil, "", err
	}
	out, err := r.Render(rep)
	if err != nil {
		return nil, "", fmt.Errorf("cartera: exportar %s: %w", ext, err)
	}
	return out, fmt.Sprintf("cartera_%s.%s", rep.CutoffDate, ext), nil
}

func toAgingResponse(rep receivables.Report, now time.Time) *dto.AgingReportResponse {
	out := &dto.AgingReportResponse{
		GeneratedAt:  now,
		CutoffDate:   rep.CutoffDate.Format(dateLayout),
		TotalPending: rep.TotalPending,
		Summary: dto.AgingSummary{
			TotalClients:    rep.TotalClients,
			OverdueAmount:   rep.OverdueAmount,
			NotYetDueAmount: rep.NotYetDueAmount,
		},
		Clients: make([]dto.AgingClientResult, 0, len(rep.Clients)),
	}
	for _, c := range rep.Clients {
		out.Clients = append(out.Clients, dto.AgingClientResult{
			Name:          c.Name,
			Identifier:    c.Identifier,
			TotalPending:  c.TotalPending,
			Bucket0To30:   c.Bucket0To30,
			Bucket31To60:  c.Bucket31To60,
			Bucket61To90:  c.Bucket61To90,
			BucketOver90:  c.BucketOver90,
			OverdueAmount: c.OverdueAmount,
		})
	}
	return out
}
