package external_payment_gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type paypalStub struct {
	mu     sync.Mutex
	bodies map[string]map[string]any
	status map[string]int
}

func newPayPalStub() *paypalStub {
	return &paypalStub{bodies: map[string]map[string]any{}, status: map[string]int{}}
}

func (s *paypalStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path == "/v1/oauth2/token" {
		_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":32400}`))
		return
	}

	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	s.mu.Lock()
	s.bodies[r.URL.Path] = body
	code, ok := s.status[r.URL.Path]
	s.mu.Unlock()
	if !ok {
		code = http.StatusCreated
	}
	w.WriteHeader(code)

	switch r.URL.Path {
	case "/v2/checkout/orders":
		_, _ = w.Write([]byte(`{"id":"O-9","status":"CREATED","links":[{"href":"https://sandbox/approve?token=O-9","rel":"approve","method":"GET"}]}`))
	case "/v2/checkout/orders/O-9/capture":
		_, _ = w.Write([]byte(`{"id":"O-9","status":"COMPLETED"}`))
	case "/v2/checkout/orders/O-10/capture":
		_, _ = w.Write([]byte(`{"id":"O-10","status":"PENDING"}`))
	case "/v1/billing/plans":
		_, _ = w.Write([]byte(`{"id":"P-7","status":"ACTIVE"}`))
	case "/v1/billing/subscriptions":
		_, _ = w.Write([]byte(`{"id":"I-3","status":"APPROVAL_PENDING","links":[{"href":"https://sandbox/sub?ba_token=x","rel":"approve","method":"GET"}]}`))
	default:
		_, _ = w.Write([]byte(`{"name":"RESOURCE_NOT_FOUND","message":"not found"}`))
	}
}

func (s *paypalStub) body(path string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies[path]
}

func newTestPayPal(t *testing.T, stub *paypalStub) *PayPalGateway {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	g, err := NewPayPalGateway(PayPalConfig{ClientID: "id", ClientSecret: "secret", APIBase: srv.URL, ProductID: "PROD-1", BrandName: "Acme"})
	require.NoError(t, err)
	return g
}

func TestPayPalGateway_CreateOrder(t *testing.T) {
	stub := newPayPalStub()
	g := newTestPayPal(t, stub)

	a, err := g.CreateOrder(context.Background(), OrderRequest{Value: "5.00", Currency: "USD", ReturnURL: "http://x/?success=true", CancelURL: "http://x/?cancel=true"})
	require.NoError(t, err)
	require.Equal(t, "O-9", a.ID)
	require.Equal(t, []Link{{Rel: "approve", Href: "https://sandbox/approve?token=O-9", Method: "GET"}}, a.Links)

	sent := stub.body("/v2/checkout/orders")
	require.Equal(t, "CAPTURE", sent["intent"])
	units := sent["purchase_units"].([]any)
	amount := units[0].(map[string]any)["amount"].(map[string]any)
	require.Equal(t, "USD", amount["currency_code"])
	require.Equal(t, "5.00", amount["value"])
	appCtx := sent["application_context"].(map[string]any)
	require.Equal(t, "http://x/?success=true", appCtx["return_url"])
	require.Equal(t, "http://x/?cancel=true", appCtx["cancel_url"])
}

func TestPayPalGateway_CreateOrderFailure(t *testing.T) {
	stub := newPayPalStub()
	stub.status["/v2/checkout/orders"] = http.StatusUnprocessableEntity
	g := newTestPayPal(t, stub)

	_, err := g.CreateOrder(context.Background(), OrderRequest{Value: "5.00", Currency: "USD"})
	require.Error(t, err)
}

func TestPayPalGateway_Subscription(t *testing.T) {
	stub := newPayPalStub()
	g := newTestPayPal(t, stub)
	ctx := context.Background()

	planID, err := g.CreatePlan(ctx, PlanRequest{Name: "1-Minute Demo Plan", Value: "2.50", Currency: "EUR"})
	require.NoError(t, err)
	require.Equal(t, "P-7", planID)

	plan := stub.body("/v1/billing/plans")
	require.Equal(t, "PROD-1", plan["product_id"])
	require.Equal(t, "1-Minute Demo Plan", plan["name"])
	cycle := plan["billing_cycles"].([]any)[0].(map[string]any)
	require.Equal(t, "MINUTE", cycle["frequency"].(map[string]any)["interval_unit"])
	require.Equal(t, "REGULAR", cycle["tenure_type"])
	price := cycle["pricing_scheme"].(map[string]any)["fixed_price"].(map[string]any)
	require.Equal(t, "2.50", price["value"])
	require.Equal(t, "EUR", price["currency_code"])
	prefs := plan["payment_preferences"].(map[string]any)
	require.Equal(t, true, prefs["auto_bill_outstanding"])
	require.Equal(t, "CONTINUE", prefs["setup_fee_failure_action"])

	a, err := g.CreateSubscription(ctx, SubscriptionRequest{PlanID: planID, ReturnURL: "http://x/?success=true", CancelURL: "http://x/?cancel=true"})
	require.NoError(t, err)
	require.Equal(t, "I-3", a.ID)
	require.Equal(t, "APPROVAL_PENDING", a.Status)
	require.Equal(t, "https://sandbox/sub?ba_token=x", a.Links[0].Href)

	sub := stub.body("/v1/billing/subscriptions")
	require.Equal(t, "P-7", sub["plan_id"])
	subCtx := sub["application_context"].(map[string]any)
	require.Equal(t, "SUBSCRIBE_NOW", subCtx["user_action"])
	require.Equal(t, "Acme", subCtx["brand_name"])
}

func TestPayPalGateway_CaptureOrder(t *testing.T) {
	var tests = []struct {
		name        string
		orderID     string
		expected    *Capture
		expectedErr error
	}{
		{name: "completed", orderID: "O-9", expected: &Capture{ID: "O-9", Status: "COMPLETED"}},
		{name: "not completed", orderID: "O-10", expectedErr: ErrNotCompleted},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newTestPayPal(t, newPayPalStub())
			c, err := g.CaptureOrder(context.Background(), tt.orderID)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, c)
		})
	}
}

func TestPayPalGateway_Ping(t *testing.T) {
	g := newTestPayPal(t, newPayPalStub())
	require.NoError(t, g.Ping(context.Background()))
}
