package purchasing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/purchasing"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
)

// OrderUseCase crea y consulta órdenes de compra con su libro de recepción y pagos.
type OrderUseCase struct {
	tx           TxRunner
	orders       repository.PurchaseOrderRepository
	entries      repository.WarehouseEntryRepository
	payments     repository.PaymentRepository
	thirdParties repository.ThirdPartyRepository
	articles     repository.ArticleRepository
	now          func() time.Time
}

// NewOrderUseCase construye el caso de uso. Los repositorios trabajan sobre el pool;
// la escritura de cabecera y líneas va por tx.
func NewOrderUseCase(
	tx TxRunner,
	orders repository.PurchaseOrderRepository,
	entries repository.WarehouseEntryRepository,
	payments repository.PaymentRepository,
	thirdParties repository.ThirdPartyRepository,
	articles repository.ArticleRepository,
) *OrderUseCase {
	return &OrderUseCase{
		tx:           tx,
		orders:       orders,
		entries:      entries,
		payments:     payments,
		thirdParties: thirdParties,
		articles:     articles,
		now:          time.Now,
	}
}

// Create valida proveedor y líneas, calcula los totales y persiste la orden con sus líneas.
func (uc *OrderUseCase) Create(ctx context.Context, actor Actor, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	orderDate, err := time.Parse(dateLayout, in.OrderDate)
	if err != nil {
		return nil, domain.Detail(domain.ErrInvalidInput, "orderDate debe tener formato YYYY-MM-DD")
	}
	var delivery *time.Time
	if in.DeliveryDate != "" {
		t, err := time.Parse(dateLayout, in.DeliveryDate)
		if err != nil {
			return nil, domain.Detail(domain.ErrInvalidInput, "deliveryDate debe tener formato YYYY-MM-DD")
		}
		delivery = &t
	}

	supplier, err := uc.thirdParties.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.Detail(domain.ErrNotFound, "proveedor no encontrado")
	}
	if !supplier.Active || !supplier.IsSupplier() {
		return nil, domain.Detail(domain.ErrInvalidInput, "el tercero no es un proveedor activo")
	}

	now := uc.now()
	order := &entity.PurchaseOrder{
		ID:            uuid.New().String(),
		Number:        strings.TrimSpace(in.Number),
		SupplierID:    supplier.ID,
		OrderDate:     orderDate,
		DeliveryDate:  delivery,
		PaymentStatus: entity.PaymentStatusUnpaid,
		Notes:         in.Notes,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if order.Number == "" {
		order.Number = "OC-" + strings.ToUpper(order.ID[:8])
	}

	for i, l := range in.Lines {
		line := entity.PurchaseOrderLine{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			Position:    i + 1,
			LineType:    entity.LineType(l.LineType),
			ArticleID:   l.ArticleID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitCost:    l.UnitCost,
			Taxes:       l.Taxes,
		}
		if line.LineType == "" {
			line.LineType = entity.LineTypeProduct
		}
		if line.LineType == entity.LineTypeService {
			line.ArticleID = ""
		}
		line.LineTotal = purchasing.LineTotal(line)
		order.Lines = append(order.Lines, line)
	}
	if err := purchasing.ValidateLines(order.Lines); err != nil {
		return nil, err
	}
	for i, l := range order.Lines {
		if l.LineType != entity.LineTypeProduct {
			continue
		}
		art, err := uc.articles.GetByID(ctx, l.ArticleID)
		if err != nil {
			return nil, err
		}
		if art == nil || !art.Active {
			return nil, domain.Detail(domain.ErrInvalidLine, fmt.Sprintf("línea %d: artículo no encontrado o inactivo", i+1))
		}
		if order.Lines[i].Description == "" {
			order.Lines[i].Description = art.Name
		}
	}

	ledger, err := purchasing.ComputeLedger(order, nil)
	if err != nil {
		return nil, err
	}
	order.Subtotal, order.Taxes, order.Total = ledger.Subtotal, ledger.Taxes, ledger.Total
	order.Status = purchasing.OrderStatusFor(ledger, entity.PaymentStatusUnpaid)

	if err := uc.tx.Run(ctx, func(r TxRepos) error {
		return r.Orders.Create(ctx, order)
	}); err != nil {
		return nil, err
	}
	return toOrderResponse(order, ledger, purchasing.Summarize(ledger.Total, nil)), nil
}

// Get devuelve la orden con su libro de recepción y el resumen de pagos.
func (uc *OrderUseCase) Get(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	received, err := uc.entries.ListLinesByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := uc.payments.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	ledger, err := purchasing.ComputeLedger(order, received)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, ledger, purchasing.Summarize(ledger.Total, payments)), nil
}

// List lista cabeceras de órdenes; status vacío = todas.
func (uc *OrderUseCase) List(ctx context.Context, status string, limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	list, err := uc.orders.List(ctx, entity.OrderStatus(status), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderHeaderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, dto.PurchaseOrderHeaderResponse{
			ID:            o.ID,
			Number:        o.Number,
			SupplierID:    o.SupplierID,
			OrderDate:     o.OrderDate.Format(dateLayout),
			Status:        string(o.Status),
			PaymentStatus: string(o.PaymentStatus),
			Total:         o.Total,
		})
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
