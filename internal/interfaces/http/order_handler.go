package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/application/purchasing"
)

// OrderService lo implementa *purchasing.OrderUseCase.
type OrderService interface {
	Create(ctx context.Context, actor purchasing.Actor, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	Get(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error)
	List(ctx context.Context, status string, limit, offset int) (*dto.PurchaseOrderListResponse, error)
}

// PaymentService lo implementa *purchasing.PaymentUseCase.
type PaymentService interface {
	RecordPayment(ctx context.Context, orderID string, in dto.RecordPaymentRequest, actor purchasing.Actor) (*dto.PaymentSummaryResponse, error)
	GetOrderPaymentSummary(ctx context.Context, orderID string) (*dto.PaymentSummaryResponse, error)
}

// ReceptionService lo implementa *purchasing.ReceptionUseCase.
type ReceptionService interface {
	RecordEntry(ctx context.Context, in dto.CreateWarehouseEntryRequest, actor purchasing.Actor) (*dto.WarehouseEntryResponse, error)
	ListByOrder(ctx context.Context, orderID string) ([]*dto.WarehouseEntryResponse, error)
}

// OrderHandler órdenes de compra, sus pagos y sus entradas de almacén.
type OrderHandler struct {
	orders    OrderService
	payments  PaymentService
	reception ReceptionService
}

func NewOrderHandler(orders OrderService, payments PaymentService, reception ReceptionService) *OrderHandler {
	return &OrderHandler{orders: orders, payments: payments, reception: reception}
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Proveedor y líneas"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.orders.Create(c.UserContext(), actorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Orden con estado de recepción y resumen de pagos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	out, err := h.orders.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "PENDING, PARTIALLY_RECEIVED, RECEIVED, PARTIALLY_PAID, FINALIZED"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.orders.List(c.UserContext(), c.Query("status"), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RecordPayment godoc
// @Summary      Registrar pago a proveedor
// @Description  Solo con la orden recibida por completo y sin exceder el saldo (tolerancia 0.01).
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.RecordPaymentRequest  true  "Pago"
// @Success      201   {object}  dto.PaymentSummaryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/payments [post]
func (h *OrderHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.payments.RecordPayment(c.UserContext(), c.Params("id"), in, actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PaymentSummary godoc
// @Summary      Resumen de pagos de la orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PaymentSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/payments [get]
func (h *OrderHandler) PaymentSummary(c *fiber.Ctx) error {
	out, err := h.payments.GetOrderPaymentSummary(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Entries godoc
// @Summary      Entradas de almacén de la orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {array}   dto.WarehouseEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/entries [get]
func (h *OrderHandler) Entries(c *fiber.Ctx) error {
	out, err := h.reception.ListByOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RecordEntry godoc
// @Summary      Registrar entrada de almacén contra una orden
// @Tags         warehouse-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseEntryRequest  true  "Entrada"
// @Success      201   {object}  dto.WarehouseEntryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/warehouse-entries [post]
func (h *OrderHandler) RecordEntry(c *fiber.Ctx) error {
	var in dto.CreateWarehouseEntryRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.reception.RecordEntry(c.UserContext(), in, actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
