package payment

import (
	"context"

	"checkout/kit/external_payment_gateway"
)

// GatewayContract define the processor calls the service needs.
type GatewayContract interface {
	CreateOrder(ctx context.Context, req external_payment_gateway.OrderRequest) (*external_payment_gateway.Approval, error)
	CreatePlan(ctx context.Context, req external_payment_gateway.PlanRequest) (string, error)
	CreateSubscription(ctx context.Context, req external_payment_gateway.SubscriptionRequest) (*external_payment_gateway.Approval, error)
	CaptureOrder(ctx context.Context, orderID string) (*external_payment_gateway.Capture, error)
}

// ServiceContract define payment service responsibility.
type ServiceContract interface {
	CreateOneTime(ctx context.Context, req OneTimeRequest) (*external_payment_gateway.Approval, error)
	CreateRecurring(ctx context.Context, req RecurringRequest) (*external_payment_gateway.Approval, error)
	Capture(ctx context.Context, orderID string) (*external_payment_gateway.Capture, error)
}
