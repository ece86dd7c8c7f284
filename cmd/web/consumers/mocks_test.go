package consumers

import (
	"context"

	"checkout/kit/broker"

	"github.com/stretchr/testify/mock"
)

type AuditorMock struct {
	mock.Mock
	AuditorContract
}

func (m *AuditorMock) Record(ctx context.Context, evt broker.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

type MetricsMock struct {
	mock.Mock
	MetricsContract
}

func (m *MetricsMock) OneTimeInitiatedAdd(n int64)      { m.Called(n) }
func (m *MetricsMock) SubscriptionInitiatedAdd(n int64) { m.Called(n) }
func (m *MetricsMock) ApprovalLinkMissingAdd(n int64)   { m.Called(n) }
func (m *MetricsMock) InitiationFailedAdd(n int64)      { m.Called(n) }
func (m *MetricsMock) CapturesRequestedAdd(n int64)     { m.Called(n) }
func (m *MetricsMock) CapturesSucceededAdd(n int64)     { m.Called(n) }
func (m *MetricsMock) CapturesFailedAdd(n int64)        { m.Called(n) }
