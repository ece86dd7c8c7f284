package payment

import (
	"strings"

	"checkout/kit/external_payment_gateway"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount the way the processor expects it: two
// decimal places, rounded half away from zero.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func ToOrderRequest(r OneTimeRequest) external_payment_gateway.OrderRequest {
	return external_payment_gateway.OrderRequest{
		Value:     FormatAmount(r.Amount),
		Currency:  strings.ToUpper(r.Currency),
		ReturnURL: r.ReturnURL,
		CancelURL: r.CancelURL,
	}
}

func ToPlanRequest(r RecurringRequest) external_payment_gateway.PlanRequest {
	return external_payment_gateway.PlanRequest{
		Name:     r.PlanName,
		Value:    FormatAmount(r.Price),
		Currency: strings.ToUpper(r.Currency),
	}
}

func ToSubscriptionRequest(planID string, r RecurringRequest) external_payment_gateway.SubscriptionRequest {
	return external_payment_gateway.SubscriptionRequest{
		PlanID:    planID,
		ReturnURL: r.ReturnURL,
		CancelURL: r.CancelURL,
	}
}
