// Package cli comandos de gestionctl: cartera por edades y resumen de pagos de una orden.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-api/internal/application/dto"
)

// AgingService lo implementa *receivables.AgingUseCase.
type AgingService interface {
	Report(ctx context.Context, cutoffDate, filter string) (*dto.AgingReportResponse, error)
	ExportXLSX(ctx context.Context, cutoffDate, filter string) ([]byte, string, error)
}

// OrderService lo implementa *purchasing.OrderUseCase.
type OrderService interface {
	Get(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error)
}

// Deps servicios que usan los comandos; cmd/gestionctl los arma contra PostgreSQL.
type Deps struct {
	Aging  AgingService
	Orders OrderService
}

// NewRootCmd árbol de comandos. version se muestra con --version.
func NewRootCmd(deps Deps, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "gestionctl",
		Short: "Consultas de compras y cartera desde la terminal",
		Long: `gestionctl lee la misma configuración y base de datos que la API.

Permite generar el informe de antigüedad de cartera (tabla, JSON o Excel)
y consultar el estado de recepción y pagos de una orden de compra.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAgingCmd(deps.Aging))
	root.AddCommand(newOrderCmd(deps.Orders))
	return root
}
