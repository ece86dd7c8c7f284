package handlers

import (
	"context"

	"checkout/internal/checkout"
	"checkout/kit/backend_client"

	"github.com/stretchr/testify/mock"
)

type backendMock struct {
	mock.Mock
	checkout.BackendContract
}

func (m *backendMock) CreateOneTime(ctx context.Context, req backend_client.OneTimeRequest) (*backend_client.ApprovalResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*backend_client.ApprovalResponse)
	return r, args.Error(1)
}

func (m *backendMock) CreateRecurring(ctx context.Context, req backend_client.RecurringRequest) (*backend_client.ApprovalResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*backend_client.ApprovalResponse)
	return r, args.Error(1)
}

func (m *backendMock) Capture(ctx context.Context, token string) (backend_client.CaptureResult, error) {
	args := m.Called(ctx, token)
	r, _ := args.Get(0).(backend_client.CaptureResult)
	return r, args.Error(1)
}

type snapshotMock struct{ mock.Mock }

func (m *snapshotMock) Snapshot() map[string]int64 {
	args := m.Called()
	return args.Get(0).(map[string]int64)
}
