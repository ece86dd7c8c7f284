package payment

// OneTimeRequest asks for a single captured order.
type OneTimeRequest struct {
	Amount    float64
	Currency  string
	ReturnURL string
	CancelURL string
}

// RecurringRequest asks for a billing plan and a subscription to it.
type RecurringRequest struct {
	PlanName  string
	Price     float64
	Currency  string
	ReturnURL string
	CancelURL string
}
