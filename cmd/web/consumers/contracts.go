package consumers

import (
	"context"

	"checkout/kit/broker"
)

type MetricsContract interface {
	OneTimeInitiatedAdd(n int64)
	SubscriptionInitiatedAdd(n int64)
	ApprovalLinkMissingAdd(n int64)
	InitiationFailedAdd(n int64)
	CapturesRequestedAdd(n int64)
	CapturesSucceededAdd(n int64)
	CapturesFailedAdd(n int64)
}

type AuditorContract interface {
	Record(ctx context.Context, evt broker.Event) error
}
