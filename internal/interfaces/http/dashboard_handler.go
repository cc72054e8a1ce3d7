package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
)

// DashboardService lo implementa *analytics.DashboardUseCase.
type DashboardService interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	svc DashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetSummary devuelve órdenes abiertas, saldo por pagar y cartera a la fecha.
// GET /api/dashboard/summary
//
// No requiere parámetros; la fecha de corte es la del servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.svc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
