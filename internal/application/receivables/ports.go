// Package receivables expone la cartera de clientes: facturas abiertas e informe de antigüedad.
package receivables

import (
	"github.com/jhoicas/gestion-api/internal/application/dto"
)

// AgingRenderer convierte el informe de cartera a un formato descargable (PDF, XLSX).
type AgingRenderer interface {
	Render(report *dto.AgingReportResponse) ([]byte, error)
}
