package checkout

import (
	"context"
	"sync"

	"checkout/kit/backend_client"
	"checkout/kit/broker"

	"github.com/stretchr/testify/mock"
)

type BackendMock struct {
	mock.Mock
	BackendContract
}

func (m *BackendMock) CreateOneTime(ctx context.Context, req backend_client.OneTimeRequest) (*backend_client.ApprovalResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*backend_client.ApprovalResponse)
	return r, args.Error(1)
}

func (m *BackendMock) CreateRecurring(ctx context.Context, req backend_client.RecurringRequest) (*backend_client.ApprovalResponse, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*backend_client.ApprovalResponse)
	return r, args.Error(1)
}

func (m *BackendMock) Capture(ctx context.Context, token string) (backend_client.CaptureResult, error) {
	args := m.Called(ctx, token)
	r, _ := args.Get(0).(backend_client.CaptureResult)
	return r, args.Error(1)
}

type PublisherMock struct {
	mock.Mock
	PublisherContract
}

func (m *PublisherMock) Publish(ctx context.Context, evt broker.Event) []error {
	args := m.Called(ctx, evt)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]error)
}

// navigatorRecorder and noticeRecorder stand in for the browser.
type navigatorRecorder struct {
	mu        sync.Mutex
	navigated []string
	replaced  []string
}

func (n *navigatorRecorder) Navigate(href string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.navigated = append(n.navigated, href)
}

func (n *navigatorRecorder) ReplaceURL(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.replaced = append(n.replaced, path)
}

func (n *navigatorRecorder) snapshot() ([]string, []string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.navigated...), append([]string(nil), n.replaced...)
}

type noticeRecorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *noticeRecorder) Notify(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

func (r *noticeRecorder) snapshot() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}
