package purchasing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/internal/domain/entity"
	"github.com/jhoicas/gestion-api/internal/domain/purchasing"
	"github.com/jhoicas/gestion-api/internal/domain/repository"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

// PaymentUseCase registra pagos a proveedores contra el saldo de una orden recibida.
type PaymentUseCase struct {
	tx       TxRunner
	locker   OrderLocker
	orders   repository.PurchaseOrderRepository
	payments repository.PaymentRepository
	now      func() time.Time
}

// NewPaymentUseCase construye el caso de uso. locker puede ser nil.
func NewPaymentUseCase(
	tx TxRunner,
	locker OrderLocker,
	orders repository.PurchaseOrderRepository,
	payments repository.PaymentRepository,
) *PaymentUseCase {
	if locker == nil {
		locker = noopLocker{}
	}
	return &PaymentUseCase{tx: tx, locker: locker, orders: orders, payments: payments, now: time.Now}
}

// RecordPayment aplica un pago. Dentro de una sola transacción bloquea la orden,
// vuelve a leer recepción y pagos, valida y escribe; cualquier error deja el estado intacto.
func (uc *PaymentUseCase) RecordPayment(ctx context.Context, orderID string, in dto.RecordPaymentRequest, actor Actor) (*dto.PaymentSummaryResponse, error) {
	log := logger.WithComponent("payments")

	now := uc.now()
	date, err := parseDate(in.Date, now)
	if err != nil {
		return nil, domain.Detail(domain.ErrInvalidInput, "date debe tener formato YYYY-MM-DD")
	}

	release, err := uc.locker.Lock(ctx, "purchase-order:"+orderID)
	if err != nil {
		// Sin bloqueo distribuido seguimos: el FOR UPDATE serializa igual.
		log.Warn().Err(err).Str("order_id", orderID).Msg("bloqueo distribuido no disponible")
		release = func() {}
	}
	defer release()

	var summary purchasing.PaymentSummary
	payment := &entity.Payment{
		ID:        uuid.New().String(),
		OrderID:   orderID,
		Amount:    in.Amount,
		Date:      date,
		Method:    in.Method,
		Reference: in.Reference,
		Notes:     in.Notes,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		CreatedAt: now,
	}

	err = uc.tx.Run(ctx, func(r TxRepos) error {
		order, err := r.Orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		received, err := r.Entries.ListLinesByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		ledger, err := purchasing.ComputeLedger(order, received)
		if err != nil {
			return err
		}
		existing, err := r.Payments.ListByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if err := purchasing.CheckPayment(ledger, purchasing.SumPayments(existing), in.Amount); err != nil {
			return err
		}
		if err := r.Payments.Create(ctx, payment); err != nil {
			return err
		}
		summary = purchasing.Summarize(ledger.Total, append(existing, *payment))
		status := purchasing.OrderStatusFor(ledger, summary.Status)
		return r.Orders.UpdateStatus(ctx, orderID, status, summary.Status, now)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			log.Warn().Err(err).
				Str("order_id", orderID).
				Str("amount", in.Amount.String()).
				Str("actor_id", actor.ID).
				Str("actor_name", actor.Name).
				Msg("pago rechazado")
		}
		return nil, err
	}

	log.Info().
		Str("order_id", orderID).
		Str("payment_id", payment.ID).
		Str("amount", in.Amount.String()).
		Str("remaining", summary.Remaining.String()).
		Str("payment_status", string(summary.Status)).
		Str("actor_id", actor.ID).
		Str("actor_name", actor.Name).
		Msg("pago registrado")

	out := toSummaryResponse(summary)
	return &out, nil
}

// GetOrderPaymentSummary resumen de pagos de la orden, del más reciente al más antiguo.
func (uc *PaymentUseCase) GetOrderPaymentSummary(ctx context.Context, orderID string) (*dto.PaymentSummaryResponse, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.payments.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	_, _, total := purchasing.ComputeTotals(order.Lines)
	out := toSummaryResponse(purchasing.Summarize(total, payments))
	return &out, nil
}
