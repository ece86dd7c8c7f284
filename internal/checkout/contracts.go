package checkout

import (
	"context"

	"checkout/kit/backend_client"
	"checkout/kit/broker"
)

// BackendContract define the payment backend calls the widget makes.
type BackendContract interface {
	CreateOneTime(ctx context.Context, req backend_client.OneTimeRequest) (*backend_client.ApprovalResponse, error)
	CreateRecurring(ctx context.Context, req backend_client.RecurringRequest) (*backend_client.ApprovalResponse, error)
	Capture(ctx context.Context, token string) (backend_client.CaptureResult, error)
}

// NavigatorContract define the browser location side effects.
type NavigatorContract interface {
	// Navigate leaves the page for href.
	Navigate(href string)
	// ReplaceURL rewrites the visible URL without reloading.
	ReplaceURL(path string)
}

// NotifierContract define how the user is told about an outcome.
type NotifierContract interface {
	Notify(n Notice)
}

// PublisherContract define publish responsibility (broker).
type PublisherContract interface {
	Publish(ctx context.Context, evt broker.Event) []error
}
