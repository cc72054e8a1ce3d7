package purchasing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/inventory"
	"github.com/jhoicas/gestion-api/internal/domain/purchasing"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

// ReceptionUseCase registra entradas de almacén contra órdenes de compra.
type ReceptionUseCase struct {
	tx         TxRunner
	locker     OrderLocker
	orders     repository.PurchaseOrderRepository
	entries    repository.WarehouseEntryRepository
	warehouses repository.WarehouseRepository
	now        func() time.Time
}

// NewReceptionUseCase construye el caso de uso. locker puede ser nil.
func NewReceptionUseCase(
	tx TxRunner,
	locker OrderLocker,
	orders repository.PurchaseOrderRepository,
	entries repository.WarehouseEntryRepository,
	warehouses repository.WarehouseRepository,
) *ReceptionUseCase {
	if locker == nil {
		locker = noopLocker{}
	}
	return &ReceptionUseCase{
		tx:         tx,
		locker:     locker,
		orders:     orders,
		entries:    entries,
		warehouses: warehouses,
		now:        time.Now,
	}
}

// RecordEntry valida cada línea contra la orden, exige que lo recibido acumulado no
// supere lo ordenado, persiste la entrada, actualiza existencia y costo promedio de
// los artículos y recalcula el estado de la orden. Todo en una transacción.
func (uc *ReceptionUseCase) RecordEntry(ctx context.Context, in dto.CreateWarehouseEntryRequest, actor Actor) (*dto.WarehouseEntryResponse, error) {
	now := uc.now()
	date, err := parseDate(in.Date, now)
	if err != nil {
		return nil, domain.Detail(domain.ErrInvalidInput, "date debe tener formato YYYY-MM-DD")
	}
	if len(in.Lines) == 0 {
		return nil, domain.Detail(domain.ErrInvalidLine, "la entrada no tiene líneas")
	}

	entry := &entity.WarehouseEntry{
		ID:          uuid.New().String(),
		OrderID:     in.OrderID,
		WarehouseID: in.WarehouseID,
		Date:        date,
		Notes:       in.Notes,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
	}
	for i, l := range in.Lines {
		if !l.Quantity.IsPositive() {
			return nil, domain.Detail(domain.ErrInvalidLine, fmt.Sprintf("línea %d: la cantidad debe ser mayor que cero", i+1))
		}
		if l.ArticleID == "" {
			return nil, domain.Detail(domain.ErrInvalidLine, fmt.Sprintf("línea %d: artículo requerido", i+1))
		}
		entry.Lines = append(entry.Lines, entity.WarehouseEntryLine{
			ID:          uuid.New().String(),
			EntryID:     entry.ID,
			OrderLineID: l.OrderLineID,
			ArticleID:   l.ArticleID,
			Quantity:    l.Quantity,
		})
	}

	wh, err := uc.warehouses.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.Detail(domain.ErrNotFound, "bodega no encontrada")
	}

	release, err := uc.locker.Lock(ctx, "purchase-order:"+in.OrderID)
	if err != nil {
		l := logger.WithComponent("reception")
		l.Warn().Err(err).Str("order_id", in.OrderID).Msg("bloqueo distribuido no disponible")
		release = func() {}
	}
	defer release()

	var after *purchasing.Ledger
	err = uc.tx.Run(ctx, func(r TxRepos) error {
		order, err := r.Orders.GetByIDForUpdate(ctx, in.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.Detail(domain.ErrNotFound, "orden no encontrada")
		}
		costs, err := matchLines(order, entry.Lines)
		if err != nil {
			return err
		}

		received, err := r.Entries.ListLinesByOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		after, err = purchasing.ComputeLedger(order, append(received, entry.Lines...))
		if err != nil {
			return err
		}
		for _, ls := range after.Lines {
			if ls.Received.Sub(ls.Ordered).GreaterThan(purchasing.ReceptionEpsilon) {
				return domain.Detail(domain.ErrInvalidLine, fmt.Sprintf(
					"artículo %s: recibido %s supera lo ordenado %s", ls.ArticleID, ls.Received, ls.Ordered))
			}
		}

		if err := r.Entries.Create(ctx, entry); err != nil {
			return err
		}
		for i, l := range entry.Lines {
			art, err := r.Articles.GetByIDForUpdate(ctx, l.ArticleID)
			if err != nil {
				return err
			}
			if art == nil {
				return domain.Detail(domain.ErrNotFound, "artículo "+l.ArticleID+" no encontrado")
			}
			cost := inventory.WeightedAverageCost(art.QuantityOnHand, art.AverageCost, l.Quantity, costs[i])
			if err := r.Articles.UpdateStock(ctx, art.ID, art.QuantityOnHand.Add(l.Quantity), cost); err != nil {
				return err
			}
		}

		if order.PaymentStatus != entity.PaymentStatusUnpaid {
			return nil
		}
		status := purchasing.OrderStatusFor(after, entity.PaymentStatusUnpaid)
		if status == order.Status {
			return nil
		}
		return r.Orders.UpdateStatus(ctx, order.ID, status, order.PaymentStatus, now)
	})
	if err != nil {
		return nil, err
	}

	l := logger.WithComponent("reception")
	l.Info().
		Str("order_id", entry.OrderID).
		Str("entry_id", entry.ID).
		Int("lines", len(entry.Lines)).
		Bool("reception_complete", after.ReceptionComplete).
		Str("actor_id", actor.ID).
		Msg("entrada de almacén registrada")

	out := toEntryResponse(entry)
	rec := toReceptionResponse(after)
	out.Reception = &rec
	return out, nil
}

// ListByOrder entradas registradas contra la orden.
func (uc *ReceptionUseCase) ListByOrder(ctx context.Context, orderID string) ([]*dto.WarehouseEntryResponse, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.entries.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WarehouseEntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEntryResponse(e))
	}
	return out, nil
}

// matchLines verifica que cada línea recibida corresponda a una línea de producto de
// la orden y devuelve el costo unitario con el que entra cada una.
func matchLines(order *entity.PurchaseOrder, lines []entity.WarehouseEntryLine) ([]decimal.Decimal, error) {
	costs := make([]decimal.Decimal, len(lines))
	for i, l := range lines {
		found := false
		for _, ol := range order.Lines {
			if ol.LineType != entity.LineTypeProduct || ol.ArticleID != l.ArticleID {
				continue
			}
			if l.OrderLineID != "" && ol.ID != l.OrderLineID {
				continue
			}
			costs[i] = ol.UnitCost
			found = true
			break
		}
		if !found {
			return nil, domain.Detail(domain.ErrInvalidLine,
				fmt.Sprintf("línea %d: el artículo no pertenece a la orden", i+1))
		}
	}
	return costs, nil
}
