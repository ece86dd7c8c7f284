package external_payment_gateway

import (
	"context"
	"fmt"
	"log"

	"github.com/plutov/paypal/v4"
)

const (
	intentCapture = "CAPTURE"
	// The SDK only declares DAY through YEAR.
	intervalMinute = paypal.IntervalUnit("MINUTE")
)

type PayPalConfig struct {
	ClientID     string
	ClientSecret string
	Live         bool
	ProductID    string
	BrandName    string
	// APIBase overrides the sandbox/live endpoint.
	APIBase string
}

type PayPalGateway struct {
	client    *paypal.Client
	productID string
	brandName string
}

func NewPayPalGateway(cfg PayPalConfig) (*PayPalGateway, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrUnconfigured
	}
	base := paypal.APIBaseSandBox
	if cfg.Live {
		base = paypal.APIBaseLive
	}
	if cfg.APIBase != "" {
		base = cfg.APIBase
	}
	client, err := paypal.NewClient(cfg.ClientID, cfg.ClientSecret, base)
	if err != nil {
		return nil, fmt.Errorf("paypal client: %w", err)
	}
	return &PayPalGateway{client: client, productID: cfg.ProductID, brandName: cfg.BrandName}, nil
}

// Ping fetches an access token, proving the credentials work.
func (g *PayPalGateway) Ping(ctx context.Context) error {
	if _, err := g.client.GetAccessToken(ctx); err != nil {
		return fmt.Errorf("paypal auth: %w", err)
	}
	return nil
}

func (g *PayPalGateway) CreateOrder(ctx context.Context, req OrderRequest) (*Approval, error) {
	units := []paypal.PurchaseUnitRequest{
		{
			Amount: &paypal.PurchaseUnitAmount{
				Currency: req.Currency,
				Value:    req.Value,
			},
		},
	}
	appCtx := &paypal.ApplicationContext{
		ReturnURL: req.ReturnURL,
		CancelURL: req.CancelURL,
	}

	order, err := g.client.CreateOrder(ctx, intentCapture, units, nil, appCtx)
	if err != nil {
		log.Printf("layer=gateway component=paypal method=CreateOrder currency=%s value=%s err=%v", req.Currency, req.Value, err)
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &Approval{ID: order.ID, Status: order.Status, Links: toLinks(order.Links)}, nil
}

func (g *PayPalGateway) CreatePlan(ctx context.Context, req PlanRequest) (string, error) {
	plan := paypal.SubscriptionPlan{
		ProductId: g.productID,
		Name:      req.Name,
		Status:    paypal.SubscriptionPlanStatusActive,
		BillingCycles: []paypal.BillingCycle{
			{
				Frequency: paypal.Frequency{
					IntervalUnit:  intervalMinute,
					IntervalCount: 1,
				},
				TenureType:  paypal.TenureTypeRegular,
				Sequence:    1,
				TotalCycles: 0,
				PricingScheme: paypal.PricingScheme{
					FixedPrice: paypal.Money{
						Currency: req.Currency,
						Value:    req.Value,
					},
				},
			},
		},
		PaymentPreferences: &paypal.PaymentPreferences{
			AutoBillOutstanding:     true,
			SetupFeeFailureAction:   paypal.SetupFeeFailureActionContinue,
			PaymentFailureThreshold: 3,
		},
	}

	res, err := g.client.CreateSubscriptionPlan(ctx, plan)
	if err != nil {
		log.Printf("layer=gateway component=paypal method=CreatePlan plan=%q err=%v", req.Name, err)
		return "", fmt.Errorf("create plan: %w", err)
	}
	if res.ID == "" {
		return "", ErrNoPlan
	}
	return res.ID, nil
}

func (g *PayPalGateway) CreateSubscription(ctx context.Context, req SubscriptionRequest) (*Approval, error) {
	sub := paypal.SubscriptionBase{
		PlanID: req.PlanID,
		ApplicationContext: &paypal.ApplicationContext{
			BrandName:  g.brandName,
			UserAction: paypal.UserActionSubscribeNow,
			ReturnURL:  req.ReturnURL,
			CancelURL:  req.CancelURL,
		},
	}

	res, err := g.client.CreateSubscription(ctx, sub)
	if err != nil {
		log.Printf("layer=gateway component=paypal method=CreateSubscription plan_id=%s err=%v", req.PlanID, err)
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return &Approval{ID: res.ID, Status: string(res.SubscriptionStatus), Links: toLinks(res.Links)}, nil
}

func (g *PayPalGateway) CaptureOrder(ctx context.Context, orderID string) (*Capture, error) {
	res, err := g.client.CaptureOrder(ctx, orderID, paypal.CaptureOrderRequest{})
	if err != nil {
		log.Printf("layer=gateway component=paypal method=CaptureOrder order_id=%s err=%v", orderID, err)
		return nil, fmt.Errorf("capture order: %w", err)
	}
	if res.Status != "COMPLETED" {
		return nil, fmt.Errorf("%w: status %s", ErrNotCompleted, res.Status)
	}
	return &Capture{ID: res.ID, Status: res.Status}, nil
}

func toLinks(in []paypal.Link) []Link {
	out := make([]Link, 0, len(in))
	for _, l := range in {
		out = append(out, Link{Rel: l.Rel, Href: l.Href, Method: l.Method})
	}
	return out
}
