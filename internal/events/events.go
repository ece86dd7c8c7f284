package events

import "time"

// Kind of checkout started from the widget.
const (
	KindOneTime      = "one_time"
	KindSubscription = "subscription"
)

type CheckoutInitiated struct {
	Kind     string    `json:"kind"`
	Amount   string    `json:"amount"`
	Currency string    `json:"currency"`
	At       time.Time `json:"at"`
}

func (CheckoutInitiated) Name() string { return "checkout.initiated" }

type CheckoutRedirected struct {
	Kind        string    `json:"kind"`
	ApprovalURL string    `json:"approval_url"`
	At          time.Time `json:"at"`
}

func (CheckoutRedirected) Name() string { return "checkout.redirected" }

type ApprovalLinkMissing struct {
	Kind string    `json:"kind"`
	At   time.Time `json:"at"`
}

func (ApprovalLinkMissing) Name() string { return "checkout.approval_link_missing" }

type CheckoutFailed struct {
	Kind   string    `json:"kind"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

func (CheckoutFailed) Name() string { return "checkout.failed" }

type CaptureRequested struct {
	Token string    `json:"token"`
	At    time.Time `json:"at"`
}

func (CaptureRequested) Name() string { return "capture.requested" }

type CaptureSucceeded struct {
	Token     string    `json:"token"`
	CaptureID string    `json:"capture_id"`
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
}

func (CaptureSucceeded) Name() string { return "capture.succeeded" }

type CaptureFailed struct {
	Token  string    `json:"token"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

func (CaptureFailed) Name() string { return "capture.failed" }

// All lists every checkout event name, for subscribers that observe the
// whole flow.
func All() []string {
	return []string{
		CheckoutInitiated{}.Name(),
		CheckoutRedirected{}.Name(),
		ApprovalLinkMissing{}.Name(),
		CheckoutFailed{}.Name(),
		CaptureRequested{}.Name(),
		CaptureSucceeded{}.Name(),
		CaptureFailed{}.Name(),
	}
}
