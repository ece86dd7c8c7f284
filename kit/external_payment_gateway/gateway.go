package external_payment_gateway

import (
	"context"
	"errors"
)

var (
	ErrNotCompleted = errors.New("gateway: capture not completed")
	ErrNoPlan       = errors.New("gateway: plan not created")
	ErrUnconfigured = errors.New("gateway: missing credentials")
)

// Gateway is the payment processor the API delegates to.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Approval, error)
	CreatePlan(ctx context.Context, req PlanRequest) (string, error)
	CreateSubscription(ctx context.Context, req SubscriptionRequest) (*Approval, error)
	CaptureOrder(ctx context.Context, orderID string) (*Capture, error)
	Ping(ctx context.Context) error
}

type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

// Approval is a created order or subscription awaiting buyer approval.
type Approval struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []Link `json:"links"`
}

type Capture struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OrderRequest carries money values already formatted for the processor:
// Value is a decimal string with two places, Currency an ISO code.
type OrderRequest struct {
	Value     string
	Currency  string
	ReturnURL string
	CancelURL string
}

type PlanRequest struct {
	Name     string
	Value    string
	Currency string
}

type SubscriptionRequest struct {
	PlanID    string
	ReturnURL string
	CancelURL string
}
