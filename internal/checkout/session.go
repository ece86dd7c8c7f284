package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"checkout/internal/events"
	"checkout/kit/backend_client"
	"checkout/kit/broker"
)

// DemoPlanName is the plan every subscription is created under.
const DemoPlanName = "1-Minute Demo Plan"

var (
	ErrInvalidCurrency     = errors.New("unsupported currency")
	ErrApprovalLinkMissing = errors.New("approval link missing")
)

// Session is the widget for a single page load. Mount runs the
// capture-on-return effect at most once; the initiators may be called any
// number of times.
type Session struct {
	backend  BackendContract
	nav      NavigatorContract
	notifier NotifierContract
	bus      PublisherContract

	mount sync.Once
	done  chan struct{}

	mu       sync.Mutex
	location string
	state    CaptureState
}

// NewSession starts a page load at location, the absolute URL the browser
// shows. bus may be nil.
func NewSession(location string, backend BackendContract, nav NavigatorContract, notifier NotifierContract, bus PublisherContract) *Session {
	return &Session{
		backend:  backend,
		nav:      nav,
		notifier: notifier,
		bus:      bus,
		done:     make(chan struct{}),
		location: location,
		state:    CaptureIdle,
	}
}

func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

func (s *Session) State() CaptureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Done is closed once Mount has settled: immediately when there is nothing
// to capture, otherwise after the capture outcome has been notified.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Mount reads success and token from the location. When both say so it
// issues one capture in the background and strips the query string from
// the visible URL without waiting for the capture to finish.
func (s *Session) Mount(ctx context.Context) {
	s.mount.Do(func() { s.captureOnReturn(ctx) })
}

func (s *Session) captureOnReturn(ctx context.Context) {
	u, err := url.Parse(s.Location())
	if err != nil {
		log.Printf("layer=widget component=checkout method=Mount err=%v", err)
		close(s.done)
		return
	}

	params := ParseReturnParams(u.RawQuery)
	if !params.ShouldCapture() {
		close(s.done)
		return
	}

	s.setState(CaptureInFlight)
	s.publish(ctx, events.CaptureRequested{Token: params.Token, At: time.Now().UTC()})
	go s.capture(context.WithoutCancel(ctx), params.Token)

	stripped := stripQuery(u)
	s.mu.Lock()
	s.location = stripped.String()
	s.mu.Unlock()
	s.nav.ReplaceURL(stripped.EscapedPath())
}

func (s *Session) capture(ctx context.Context, token string) {
	defer close(s.done)

	res, err := s.backend.Capture(ctx, token)
	if err != nil {
		log.Printf("layer=widget component=checkout method=capture token=%s err=%v", token, err)
		s.setState(CaptureFailed)
		s.notify(NoticeError, MsgCaptureFailed)
		s.publish(ctx, events.CaptureFailed{Token: token, Reason: err.Error(), At: time.Now().UTC()})
		return
	}

	s.setState(CaptureSucceeded)
	s.notify(NoticeSuccess, MsgCaptureSucceeded)
	s.publish(ctx, events.CaptureSucceeded{Token: token, CaptureID: res.ID(), Status: res.Status(), At: time.Now().UTC()})
}

// InitiateOneTime asks the backend for a one-time order and sends the
// browser to its approval link.
func (s *Session) InitiateOneTime(ctx context.Context, form FormState) error {
	amount, err := s.checkForm(ctx, events.KindOneTime, form)
	if err != nil {
		return err
	}

	returnURL, cancelURL := RedirectURLs(s.Location())
	s.publish(ctx, events.CheckoutInitiated{Kind: events.KindOneTime, Amount: form.Amount, Currency: string(form.Currency), At: time.Now().UTC()})
	res, err := s.backend.CreateOneTime(ctx, backend_client.OneTimeRequest{
		Amount:    amount,
		Currency:  string(form.Currency),
		ReturnURL: returnURL,
		CancelURL: cancelURL,
	})
	return s.redirect(ctx, events.KindOneTime, res, err)
}

// InitiateSubscription is InitiateOneTime for a recurring plan priced at the
// form amount.
func (s *Session) InitiateSubscription(ctx context.Context, form FormState) error {
	price, err := s.checkForm(ctx, events.KindSubscription, form)
	if err != nil {
		return err
	}

	returnURL, cancelURL := RedirectURLs(s.Location())
	s.publish(ctx, events.CheckoutInitiated{Kind: events.KindSubscription, Amount: form.Amount, Currency: string(form.Currency), At: time.Now().UTC()})
	res, err := s.backend.CreateRecurring(ctx, backend_client.RecurringRequest{
		PlanName:  DemoPlanName,
		Price:     price,
		Currency:  string(form.Currency),
		ReturnURL: returnURL,
		CancelURL: cancelURL,
	})
	return s.redirect(ctx, events.KindSubscription, res, err)
}

func (s *Session) checkForm(ctx context.Context, kind string, form FormState) (float64, error) {
	if !form.Currency.Valid() {
		s.reject(ctx, kind, ErrInvalidCurrency, MsgInvalidCurrency)
		return 0, ErrInvalidCurrency
	}
	d, err := ParseAmount(form.Amount)
	if err != nil {
		s.reject(ctx, kind, err, MsgInvalidAmount)
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

func (s *Session) redirect(ctx context.Context, kind string, res *backend_client.ApprovalResponse, err error) error {
	if err != nil {
		log.Printf("layer=widget component=checkout method=redirect kind=%s err=%v", kind, err)
		s.reject(ctx, kind, err, MsgInitiationFailed)
		return fmt.Errorf("%s checkout: %w", kind, err)
	}

	href, ok := res.ApprovalURL()
	if !ok {
		log.Printf("layer=widget component=checkout method=redirect kind=%s err=%v", kind, ErrApprovalLinkMissing)
		s.notify(NoticeError, MsgApprovalLinkAbsent)
		s.publish(ctx, events.ApprovalLinkMissing{Kind: kind, At: time.Now().UTC()})
		return ErrApprovalLinkMissing
	}

	s.publish(ctx, events.CheckoutRedirected{Kind: kind, ApprovalURL: href, At: time.Now().UTC()})
	s.nav.Navigate(href)
	return nil
}

func (s *Session) reject(ctx context.Context, kind string, err error, msg string) {
	s.notify(NoticeError, msg)
	s.publish(ctx, events.CheckoutFailed{Kind: kind, Reason: err.Error(), At: time.Now().UTC()})
}

func (s *Session) setState(st CaptureState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Session) notify(kind NoticeKind, msg string) {
	if s.notifier != nil {
		s.notifier.Notify(Notice{Kind: kind, Message: msg})
	}
}

func (s *Session) publish(ctx context.Context, evt broker.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, evt)
	}
}

func stripQuery(u *url.URL) *url.URL {
	cpy := *u
	cpy.RawQuery = ""
	cpy.ForceQuery = false
	cpy.Fragment = ""
	cpy.RawFragment = ""
	if cpy.Path == "" {
		cpy.Path = "/"
	}
	return &cpy
}
