package observability

import "sync/atomic"

// Metrics holds process-wide checkout counters.
type Metrics struct {
	OneTimeInitiated      atomic.Int64
	SubscriptionInitiated atomic.Int64
	ApprovalLinkMissing   atomic.Int64
	InitiationFailed      atomic.Int64
	CapturesRequested     atomic.Int64
	CapturesSucceeded     atomic.Int64
	CapturesFailed        atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) OneTimeInitiatedAdd(n int64) {
	m.OneTimeInitiated.Add(n)
}

func (m *Metrics) SubscriptionInitiatedAdd(n int64) {
	m.SubscriptionInitiated.Add(n)
}

func (m *Metrics) ApprovalLinkMissingAdd(n int64) {
	m.ApprovalLinkMissing.Add(n)
}

func (m *Metrics) InitiationFailedAdd(n int64) {
	m.InitiationFailed.Add(n)
}

func (m *Metrics) CapturesRequestedAdd(n int64) {
	m.CapturesRequested.Add(n)
}

func (m *Metrics) CapturesSucceededAdd(n int64) {
	m.CapturesSucceeded.Add(n)
}

func (m *Metrics) CapturesFailedAdd(n int64) {
	m.CapturesFailed.Add(n)
}

func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"one_time_initiated":     m.OneTimeInitiated.Load(),
		"subscription_initiated": m.SubscriptionInitiated.Load(),
		"approval_link_missing":  m.ApprovalLinkMissing.Load(),
		"initiation_failed":      m.InitiationFailed.Load(),
		"captures_requested":     m.CapturesRequested.Load(),
		"captures_succeeded":     m.CapturesSucceeded.Load(),
		"captures_failed":        m.CapturesFailed.Load(),
	}
}
