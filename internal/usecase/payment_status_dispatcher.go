package usecase

import (
	"context"
	"log"
	"time"

	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase/interfaces"
)

// PaymentStatusDispatcher routes a fetched payment to the branch for its
// status. Each branch delegates to the order store and the notifier; either
// collaborator may be nil, in which case that side effect is skipped.
//
// Notifications arrive at least once and possibly out of order. The order
// store only moves an order forward, and a customer is only notified when the
// order actually changed, so replays produce no repeated side effects.
type PaymentStatusDispatcher struct {
	orders   interfaces.IOrderRepository
	notifier interfaces.INotifier
	now      func() time.Time
}

func NewPaymentStatusDispatcher(orders interfaces.IOrderRepository, notifier interfaces.INotifier) *PaymentStatusDispatcher {
	return &PaymentStatusDispatcher{orders: orders, notifier: notifier, now: time.Now}
}

func (d *PaymentStatusDispatcher) Dispatch(ctx context.Context, p entities.ProviderPayment) (entities.PaymentOutcome, error) {
	outcome := entities.OutcomeFromStatus(p.Status)
	log.Printf("[webhook][dispatch] payment_id=%s status=%s detail=%s outcome=%s", p.ID, p.Status, p.StatusDetail, outcome)

	var err error
	switch outcome {
	case entities.PaymentOutcomeApproved:
		err = d.handleApproved(ctx, p)
	case entities.PaymentOutcomePending:
		err = d.handlePending(ctx, p)
	case entities.PaymentOutcomeRejected:
		err = d.transition(ctx, p, outcome, entities.OrderStatusRejected, nil, true)
	case entities.PaymentOutcomeCancelled:
		err = d.transition(ctx, p, outcome, entities.OrderStatusCancelled, nil, true)
	case entities.PaymentOutcomeRefunded:
		err = d.transition(ctx, p, outcome, entities.OrderStatusRefunded, nil, true)
	default:
		log.Printf("[webhook][dispatch] unrecognized status payment_id=%s status=%q", p.ID, p.Status)
	}
	return outcome, err
}

func (d *PaymentStatusDispatcher) handleApproved(ctx context.Context, p entities.ProviderPayment) error {
	paidAt := p.DateApproved
	if paidAt == nil {
		now := d.now().UTC()
		paidAt = &now
	}
	return d.transition(ctx, p, entities.PaymentOutcomeApproved, entities.OrderStatusPaid, paidAt, true)
}

// Pending keeps the order waiting; the customer already has the QR code or
// the card screen, so nothing is sent.
func (d *PaymentStatusDispatcher) handlePending(ctx context.Context, p entities.ProviderPayment) error {
	return d.transition(ctx, p, entities.PaymentOutcomePending, entities.OrderStatusAwaitingPayment, nil, false)
}

func (d *PaymentStatusDispatcher) transition(
	ctx context.Context,
	p entities.ProviderPayment,
	outcome entities.PaymentOutcome,
	status entities.OrderStatus,
	paidAt *time.Time,
	notify bool,
) error {
	changed := true
	if d.orders != nil {
		if p.ExternalReference == "" {
			log.Printf("[webhook][dispatch] payment without external_reference; order update skipped payment_id=%s", p.ID)
		} else {
			update := entities.OrderUpdate{
				OrderID:       p.ExternalReference,
				PaymentID:     p.ID,
				Status:        status,
				Amount:        p.TransactionAmount,
				PaymentMethod: p.PaymentMethodID,
				PaidAt:        paidAt,
				UpdatedAt:     d.now().UTC(),
			}
			applied, err := d.orders.UpdateStatus(ctx, update)
			if err != nil {
				log.Printf("[webhook][dispatch] order update failed order_id=%s payment_id=%s status=%s err=%v", update.OrderID, p.ID, status, err)
				return err
			}
			if !applied {
				log.Printf("[webhook][dispatch] stale notification ignored order_id=%s payment_id=%s status=%s", update.OrderID, p.ID, status)
			}
			changed = applied
		}
	}

	if !notify || !changed || d.notifier == nil {
		return nil
	}
	if err := d.notifier.NotifyPayment(ctx, outcome, p); err != nil {
		log.Printf("[webhook][dispatch] customer notification failed payment_id=%s outcome=%s err=%v", p.ID, outcome, err)
	}
	return nil
}
