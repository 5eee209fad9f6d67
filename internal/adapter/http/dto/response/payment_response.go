package response

import "checkout_relay/pkg"

const StatusFailed = "failed"

// PaymentFailure is the body returned when a charge could not be created.
type PaymentFailure struct {
	Success       bool   `json:"success"`
	Error         string `json:"error"`
	Code          string `json:"code"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
}

func NewPaymentFailure(appErr *pkg.AppError, paymentMethod string) PaymentFailure {
	return PaymentFailure{
		Success:       false,
		Error:         appErr.Message,
		Code:          appErr.Code,
		PaymentMethod: paymentMethod,
		Status:        StatusFailed,
	}
}
