package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
)

// AgingService lo implementa *receivables.AgingUseCase.
type AgingService interface {
	Report(ctx context.Context, cutoffDate, filter string) (*dto.AgingReportResponse, error)
	ExportPDF(ctx context.Context, cutoffDate, filter string) ([]byte, string, error)
	ExportXLSX(ctx context.Context, cutoffDate, filter string) ([]byte, string, error)
}

// InvoiceService lo implementa *receivables.InvoiceUseCase.
type InvoiceService interface {
	Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	Get(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	List(ctx context.Context, clientID string, limit, offset int) (*dto.InvoiceListResponse, error)
}

const (
	mimePDF  = "application/pdf"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReceivablesHandler cartera: facturas de venta e informe de antigüedad.
type ReceivablesHandler struct {
	aging    AgingService
	invoices InvoiceService
}

func NewReceivablesHandler(aging AgingService, invoices InvoiceService) *ReceivablesHandler {
	return &ReceivablesHandler{aging: aging, invoices: invoices}
}

// Aging godoc
// @Summary      Antigüedad de cartera por cliente
// @Tags         receivables
// @Security     Bearer
// @Produce      json
// @Param        cutoffDate  query  string  false  "Fecha de corte YYYY-MM-DD (hoy por defecto)"
// @Param        q           query  string  false  "Filtro por nombre o identificación del cliente"
// @Success      200  {object}  dto.AgingReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/receivables/aging [get]
func (h *ReceivablesHandler) Aging(c *fiber.Ctx) error {
	out, err := h.aging.Report(c.UserContext(), c.Query("cutoffDate"), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AgingPDF godoc
// @Summary      Antigüedad de cartera en PDF
// @Tags         receivables
// @Security     Bearer
// @Produce      application/pdf
// @Param        cutoffDate  query  string  false  "Fecha de corte YYYY-MM-DD"
// @Param        q           query  string  false  "Filtro por cliente"
// @Success      200
// @Router       /api/receivables/aging.pdf [get]
func (h *ReceivablesHandler) AgingPDF(c *fiber.Ctx) error {
	return h.download(c, mimePDF, h.aging.ExportPDF)
}

// AgingXLSX godoc
// @Summary      Antigüedad de cartera en Excel
// @Tags         receivables
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        cutoffDate  query  string  false  "Fecha de corte YYYY-MM-DD"
// @Param        q           query  string  false  "Filtro por cliente"
// @Success      200
// @Router       /api/receivables/aging.xlsx [get]
func (h *ReceivablesHandler) AgingXLSX(c *fiber.Ctx) error {
	return h.download(c, mimeXLSX, h.aging.ExportXLSX)
}

func (h *ReceivablesHandler) download(c *fiber.Ctx, mime string, export func(context.Context, string, string) ([]byte, string, error)) error {
	data, filename, err := export(c.UserContext(), c.Query("cutoffDate"), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// CreateInvoice godoc
// @Summary      Registrar factura de venta en cartera
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *ReceivablesHandler) CreateInvoice(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.invoices.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetInvoice godoc
// @Summary      Obtener factura de venta
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *ReceivablesHandler) GetInvoice(c *fiber.Ctx) error {
	out, err := h.invoices.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListInvoices godoc
// @Summary      Listar facturas de venta
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        client_id  query  string  false  "ID del cliente"
// @Param        limit      query  int     false  "Límite"  default(20)
// @Param        offset     query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *ReceivablesHandler) ListInvoices(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.invoices.List(c.UserContext(), c.Query("client_id"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
