package backend_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

var (
	ErrTimeout     = errors.New("backend timeout")
	ErrTransport   = errors.New("backend unreachable")
	ErrServer      = errors.New("backend 5xx")
	ErrClient      = errors.New("backend 4xx")
	ErrDecode      = errors.New("backend response undecodable")
	ErrCircuitOpen = errors.New("circuit open")
)

const (
	pathOneTime   = "/pay/one-time"
	pathRecurring = "/pay/recurring"
	pathCapture   = "/pay/capture/"
)

// Backend is the payment backend as seen by the checkout widget.
type Backend interface {
	CreateOneTime(ctx context.Context, req OneTimeRequest) (*ApprovalResponse, error)
	CreateRecurring(ctx context.Context, req RecurringRequest) (*ApprovalResponse, error)
	Capture(ctx context.Context, token string) (CaptureResult, error)
}

type Client struct {
	baseURL string
	timeout time.Duration
	http    *fasthttp.Client
}

// New returns a client for the backend at baseURL. A zero timeout leaves
// requests bounded only by the caller's context deadline.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		http: &fasthttp.Client{
			Name:                "checkout-web",
			MaxIdleConnDuration: 30 * time.Second,
		},
	}
}

func (c *Client) CreateOneTime(ctx context.Context, req OneTimeRequest) (*ApprovalResponse, error) {
	var out ApprovalResponse
	if err := c.post(ctx, pathOneTime, req, &out); err != nil {
		log.Printf("layer=client component=backend method=CreateOneTime currency=%s err=%v", req.Currency, err)
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateRecurring(ctx context.Context, req RecurringRequest) (*ApprovalResponse, error) {
	var out ApprovalResponse
	if err := c.post(ctx, pathRecurring, req, &out); err != nil {
		log.Printf("layer=client component=backend method=CreateRecurring plan=%q currency=%s err=%v", req.PlanName, req.Currency, err)
		return nil, err
	}
	return &out, nil
}

func (c *Client) Capture(ctx context.Context, token string) (CaptureResult, error) {
	out := CaptureResult{}
	if err := c.post(ctx, pathCapture+url.PathEscape(token), nil, &out); err != nil {
		log.Printf("layer=client component=backend method=Capture token=%s err=%v", token, err)
		return nil, err
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, body any, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(b)
	}

	if err := c.do(ctx, req, resp); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return fmt.Errorf("%w: %s", ErrTimeout, path)
		}
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	code := resp.StatusCode()
	switch {
	case code >= 500:
		return fmt.Errorf("%w: status=%d body=%s", ErrServer, code, truncate(resp.Body()))
	case code >= 400:
		return fmt.Errorf("%w: status=%d body=%s", ErrClient, code, truncate(resp.Body()))
	}

	raw := resp.Body()
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	deadline, hasDeadline := ctx.Deadline()
	if c.timeout > 0 {
		if own := time.Now().Add(c.timeout); !hasDeadline || own.Before(deadline) {
			deadline, hasDeadline = own, true
		}
	}
	if hasDeadline {
		return c.http.DoDeadline(req, resp, deadline)
	}
	return c.http.Do(req, resp)
}

func truncate(b []byte) string {
	const limit = 256
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
