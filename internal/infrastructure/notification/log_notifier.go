package notification

import (
	"context"
	"fmt"
	"log"

	"checkout_relay/internal/domain/entities"
	"checkout_relay/internal/usecase/interfaces"
)

// LogNotifier records the customer message instead of delivering it. It is the
// injection point for a real mail or push sender.
type LogNotifier struct {
	storeName string
	logger    *log.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(storeName string, logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{storeName: storeName, logger: logger}
}

func (n *LogNotifier) NotifyPayment(_ context.Context, outcome entities.PaymentOutcome, p entities.ProviderPayment) error {
	subject, ok := subjectFor(outcome, n.storeName)
	if !ok {
		return fmt.Errorf("no customer message for outcome %q", outcome)
	}
	to := p.PayerEmail
	if to == "" {
		to = "<unknown>"
	}
	n.logger.Printf("[webhook][notify] to=%s order=%s payment_id=%s subject=%q", to, p.ExternalReference, p.ID, subject)
	return nil
}

func subjectFor(outcome entities.PaymentOutcome, store string) (string, bool) {
	switch outcome {
	case entities.PaymentOutcomeApproved:
		return fmt.Sprintf("%s: pagamento aprovado", store), true
	case entities.PaymentOutcomeRejected:
		return fmt.Sprintf("%s: pagamento recusado", store), true
	case entities.PaymentOutcomeCancelled:
		return fmt.Sprintf("%s: pagamento cancelado", store), true
	case entities.PaymentOutcomeRefunded:
		return fmt.Sprintf("%s: pagamento estornado", store), true
	}
	return "", false
}
