// Package health runs dependency checks for the payment API and caches the
// outcome so that probes do not hit PayPal on every request.
package health

import (
	"context"
	"sync"
	"time"
)

type CheckFunc func(ctx context.Context) error

type Service struct {
	mu sync.Mutex

	checks  map[string]CheckFunc
	ttl     time.Duration
	timeout time.Duration

	nextCheckAt time.Time
	lastResult  Result
}

type Result struct {
	At     time.Time         `json:"at"`
	OK     bool              `json:"ok"`
	Checks map[string]string `json:"checks"`
}

// NewService caches results for ttl. Each check gets at most timeout to
// answer; zero means no per-check limit.
func NewService(ttl, timeout time.Duration, checks map[string]CheckFunc) *Service {
	return &Service{ttl: ttl, timeout: timeout, checks: checks, lastResult: Result{Checks: map[string]string{}}}
}

func (s *Service) Check(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if time.Now().Before(s.nextCheckAt) {
		return s.lastResult
	}

	res := Result{At: time.Now().UTC(), OK: true, Checks: make(map[string]string, len(s.checks))}
	var (
		wg    sync.WaitGroup
		resMu sync.Mutex
	)
	for name, fn := range s.checks {
		wg.Add(1)
		go func(name string, fn CheckFunc) {
			defer wg.Done()
			status := s.run(ctx, fn)
			resMu.Lock()
			defer resMu.Unlock()
			if status != "ok" {
				res.OK = false
			}
			res.Checks[name] = status
		}(name, fn)
	}
	wg.Wait()

	s.lastResult = res
	s.nextCheckAt = time.Now().Add(s.ttl)
	return res
}

func (s *Service) run(ctx context.Context, fn CheckFunc) string {
	if fn == nil {
		return "invalid check"
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := fn(ctx); err != nil {
		return err.Error()
	}
	return "ok"
}
