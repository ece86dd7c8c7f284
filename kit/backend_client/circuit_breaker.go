package backend_client

import (
	"context"
	"errors"
	"sync"
	"time"
)

type CircuitBreakerConfig struct {
	FailureThreshold int
	SuccessThreshold int
	OpenTimeout      time.Duration
	IsFailure        func(error) bool
}

// CircuitBreakerClient fails fast with ErrCircuitOpen once the backend has
// returned FailureThreshold consecutive infrastructure failures. It never
// retries a call.
type CircuitBreakerClient struct {
	next Backend
	cfg  CircuitBreakerConfig

	mu           sync.Mutex
	state        int
	failures     int
	successes    int
	openedAt     time.Time
	halfInFlight bool
}

const (
	cbClosed = iota
	cbOpen
	cbHalfOpen
)

func NewCircuitBreakerClient(next Backend, cfg CircuitBreakerConfig) *CircuitBreakerClient {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 1
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 2 * time.Second
	}
	if cfg.IsFailure == nil {
		cfg.IsFailure = func(err error) bool {
			return errors.Is(err, ErrTimeout) || errors.Is(err, ErrServer) || errors.Is(err, ErrTransport) || errors.Is(err, context.DeadlineExceeded)
		}
	}
	return &CircuitBreakerClient{next: next, cfg: cfg, state: cbClosed}
}

func (g *CircuitBreakerClient) CreateOneTime(ctx context.Context, req OneTimeRequest) (*ApprovalResponse, error) {
	if err := g.beforeCall(); err != nil {
		return nil, err
	}
	out, err := g.next.CreateOneTime(ctx, req)
	g.afterCall(err)
	return out, err
}

func (g *CircuitBreakerClient) CreateRecurring(ctx context.Context, req RecurringRequest) (*ApprovalResponse, error) {
	if err := g.beforeCall(); err != nil {
		return nil, err
	}
	out, err := g.next.CreateRecurring(ctx, req)
	g.afterCall(err)
	return out, err
}

func (g *CircuitBreakerClient) Capture(ctx context.Context, token string) (CaptureResult, error) {
	if err := g.beforeCall(); err != nil {
		return nil, err
	}
	out, err := g.next.Capture(ctx, token)
	g.afterCall(err)
	return out, err
}

func (g *CircuitBreakerClient) beforeCall() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case cbClosed:
		return nil
	case cbOpen:
		if time.Since(g.openedAt) < g.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		g.state = cbHalfOpen
		g.successes = 0
		g.halfInFlight = false
		fallthrough
	case cbHalfOpen:
		if g.halfInFlight {
			return ErrCircuitOpen
		}
		g.halfInFlight = true
		return nil
	default:
		return ErrCircuitOpen
	}
}

func (g *CircuitBreakerClient) afterCall(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == cbHalfOpen {
		g.halfInFlight = false
	}

	if err == nil {
		g.recordSuccess()
		return
	}
	if !g.cfg.IsFailure(err) {
		return
	}

	switch g.state {
	case cbClosed:
		g.failures++
		if g.failures >= g.cfg.FailureThreshold {
			g.trip()
		}
	case cbHalfOpen:
		g.trip()
	}
}

func (g *CircuitBreakerClient) recordSuccess() {
	switch g.state {
	case cbClosed:
		g.failures = 0
	case cbHalfOpen:
		g.successes++
		if g.successes >= g.cfg.SuccessThreshold {
			g.state = cbClosed
			g.failures = 0
			g.successes = 0
		}
	}
}

func (g *CircuitBreakerClient) trip() {
	g.state = cbOpen
	g.openedAt = time.Now().UTC()
	g.failures = g.cfg.FailureThreshold
	g.successes = 0
	g.halfInFlight = false
}
