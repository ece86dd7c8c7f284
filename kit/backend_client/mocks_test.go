package backend_client

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type BackendMock struct {
	mock.Mock
	Backend
}

func (m *BackendMock) CreateOneTime(ctx context.Context, req OneTimeRequest) (*ApprovalResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*ApprovalResponse)
	return r, args.Error(1)
}

func (m *BackendMock) CreateRecurring(ctx context.Context, req RecurringRequest) (*ApprovalResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*ApprovalResponse)
	return r, args.Error(1)
}

func (m *BackendMock) Capture(ctx context.Context, token string) (CaptureResult, error) {
	args := m.Called(ctx, token)
	r, _ := args.Get(0).(CaptureResult)
	return r, args.Error(1)
}
