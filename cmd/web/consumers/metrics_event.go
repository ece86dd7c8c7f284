package consumers

import (
	"context"

	"checkout/internal/events"
	"checkout/kit/broker"
)

type MetricsEvent struct {
	m MetricsContract
}

func NewMetricsEvent(m MetricsContract) *MetricsEvent {
	return &MetricsEvent{m: m}
}

func (h *MetricsEvent) HandleAny(ctx context.Context, evt broker.Event) error {
	if h.m == nil {
		return nil
	}

	switch e := evt.(type) {
	case events.CheckoutInitiated:
		switch e.Kind {
		case events.KindOneTime:
			h.m.OneTimeInitiatedAdd(1)
		case events.KindSubscription:
			h.m.SubscriptionInitiatedAdd(1)
		}
	case events.ApprovalLinkMissing:
		h.m.ApprovalLinkMissingAdd(1)
	case events.CheckoutFailed:
		h.m.InitiationFailedAdd(1)
	case events.CaptureRequested:
		h.m.CapturesRequestedAdd(1)
	case events.CaptureSucceeded:
		h.m.CapturesSucceededAdd(1)
	case events.CaptureFailed:
		h.m.CapturesFailedAdd(1)
	}
	return nil
}
