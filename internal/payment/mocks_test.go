package payment

import (
	"context"

	"checkout/kit/external_payment_gateway"

	"github.com/stretchr/testify/mock"
)

type GatewayMock struct {
	mock.Mock
	GatewayContract
}

func (m *GatewayMock) CreateOrder(ctx context.Context, req external_payment_gateway.OrderRequest) (*external_payment_gateway.Approval, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*external_payment_gateway.Approval)
	return a, args.Error(1)
}

func (m *GatewayMock) CreatePlan(ctx context.Context, req external_payment_gateway.PlanRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *GatewayMock) CreateSubscription(ctx context.Context, req external_payment_gateway.SubscriptionRequest) (*external_payment_gateway.Approval, error) {
	args := m.Called(ctx, req)
	a, _ := args.Get(0).(*external_payment_gateway.Approval)
	return a, args.Error(1)
}

func (m *GatewayMock) CaptureOrder(ctx context.Context, orderID string) (*external_payment_gateway.Capture, error) {
	args := m.Called(ctx, orderID)
	c, _ := args.Get(0).(*external_payment_gateway.Capture)
	return c, args.Error(1)
}
