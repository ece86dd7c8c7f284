package external_payment_gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
)

// FailCapturePrefix makes FakeGateway reject captures of matching order IDs.
const FailCapturePrefix = "FAIL-"

// FakeGateway approves everything in memory. With an empty approve base the
// approve link points straight back at the return URL with the token, which
// mimics a buyer approving instantly. Captures are idempotent per order ID.
type FakeGateway struct {
	approveBase string
	seq         atomic.Int64

	mu       sync.Mutex
	captured map[string]*Capture
}

func NewFakeGateway(approveBase string) *FakeGateway {
	return &FakeGateway{approveBase: approveBase, captured: make(map[string]*Capture)}
}

func (g *FakeGateway) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (g *FakeGateway) CreateOrder(ctx context.Context, req OrderRequest) (*Approval, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.approval(fmt.Sprintf("ORDER-%d", g.seq.Add(1)), "CREATED", req.ReturnURL), nil
}

func (g *FakeGateway) CreatePlan(ctx context.Context, req PlanRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return fmt.Sprintf("P-%d", g.seq.Add(1)), nil
}

func (g *FakeGateway) CreateSubscription(ctx context.Context, req SubscriptionRequest) (*Approval, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.PlanID == "" {
		return nil, ErrNoPlan
	}
	return g.approval(fmt.Sprintf("I-%d", g.seq.Add(1)), "APPROVAL_PENDING", req.ReturnURL), nil
}

func (g *FakeGateway) CaptureOrder(ctx context.Context, orderID string) (*Capture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.HasPrefix(orderID, FailCapturePrefix) {
		return nil, fmt.Errorf("%w: status DECLINED", ErrNotCompleted)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.captured[orderID]; ok {
		cpy := *c
		return &cpy, nil
	}
	c := &Capture{ID: orderID, Status: "COMPLETED"}
	g.captured[orderID] = c
	cpy := *c
	return &cpy, nil
}

func (g *FakeGateway) approval(id, status, returnURL string) *Approval {
	href := g.approveBase + "?token=" + url.QueryEscape(id)
	if g.approveBase == "" {
		sep := "?"
		if strings.Contains(returnURL, "?") {
			sep = "&"
		}
		href = returnURL + sep + "token=" + url.QueryEscape(id)
	}
	return &Approval{
		ID:     id,
		Status: status,
		Links: []Link{
			{Rel: "self", Href: "https://api.sandbox.paypal.com/v2/checkout/orders/" + id, Method: "GET"},
			{Rel: "approve", Href: href, Method: "GET"},
		},
	}
}
