package backend_client

import "github.com/spf13/cast"

const RelApprove = "approve"

type Link struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

// ApprovalResponse is the body returned by the one-time and recurring
// initiation endpoints.
type ApprovalResponse struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
	Links  []Link `json:"links"`
}

// ApprovalURL returns the href of the first link tagged "approve".
func (r *ApprovalResponse) ApprovalURL() (string, bool) {
	if r == nil {
		return "", false
	}
	for _, l := range r.Links {
		if l.Rel == RelApprove {
			return l.Href, true
		}
	}
	return "", false
}

type OneTimeRequest struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	ReturnURL string  `json:"return_url"`
	CancelURL string  `json:"cancel_url"`
}

type RecurringRequest struct {
	PlanName  string  `json:"plan_name"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	ReturnURL string  `json:"return_url"`
	CancelURL string  `json:"cancel_url"`
}

// CaptureResult is the opaque payload of a successful capture.
type CaptureResult map[string]any

func (r CaptureResult) ID() string { return cast.ToString(r["id"]) }

func (r CaptureResult) Status() string { return cast.ToString(r["status"]) }
