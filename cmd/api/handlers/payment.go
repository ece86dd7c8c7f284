package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"checkout/cmd/api/validator"
	"checkout/internal/health"
	"checkout/internal/payment"
	"checkout/kit/external_payment_gateway"

	"github.com/julienschmidt/httprouter"
)

type PaymentServiceContract interface {
	CreateOneTime(ctx context.Context, req payment.OneTimeRequest) (*external_payment_gateway.Approval, error)
	CreateRecurring(ctx context.Context, req payment.RecurringRequest) (*external_payment_gateway.Approval, error)
	Capture(ctx context.Context, orderID string) (*external_payment_gateway.Capture, error)
}

type HealthContract interface {
	Check(ctx context.Context) health.Result
}

type Payment struct {
	json    *validator.JSON
	payment PaymentServiceContract
	health  HealthContract
}

func NewPayment(jsonV *validator.JSON, paymentSvc PaymentServiceContract, healthSvc HealthContract) *Payment {
	return &Payment{json: jsonV, payment: paymentSvc, health: healthSvc}
}

type oneTimeReq struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	ReturnURL string  `json:"return_url"`
	CancelURL string  `json:"cancel_url"`
}

type recurringReq struct {
	PlanName  string  `json:"plan_name"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	ReturnURL string  `json:"return_url"`
	CancelURL string  `json:"cancel_url"`
}

type errorResp struct {
	Detail string `json:"detail"`
}

func (h *Payment) OneTime(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req oneTimeReq
	if err := h.json.Decode(w, r, &req); err != nil {
		log.Printf("layer=handler component=payment method=OneTime err=%v", err)
		writeJSON(w, http.StatusBadRequest, errorResp{Detail: err.Error()})
		return
	}

	a, err := h.payment.CreateOneTime(r.Context(), payment.OneTimeRequest{
		Amount:    req.Amount,
		Currency:  req.Currency,
		ReturnURL: req.ReturnURL,
		CancelURL: req.CancelURL,
	})
	if err != nil {
		h.fail(w, "OneTime", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *Payment) Recurring(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req recurringReq
	if err := h.json.Decode(w, r, &req); err != nil {
		log.Printf("layer=handler component=payment method=Recurring err=%v", err)
		writeJSON(w, http.StatusBadRequest, errorResp{Detail: err.Error()})
		return
	}

	a, err := h.payment.CreateRecurring(r.Context(), payment.RecurringRequest{
		PlanName:  req.PlanName,
		Price:     req.Price,
		Currency:  req.Currency,
		ReturnURL: req.ReturnURL,
		CancelURL: req.CancelURL,
	})
	if err != nil {
		h.fail(w, "Recurring", err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Capture takes no body; the order id is the PayPal token from the return
// redirect.
func (h *Payment) Capture(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	c, err := h.payment.Capture(r.Context(), ps.ByName("token"))
	if err != nil {
		h.fail(w, "Capture", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Payment) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	res := h.health.Check(r.Context())
	status := http.StatusOK
	if !res.OK {
		log.Printf("layer=handler component=payment method=Health err=service_unavailable checks=%v", res.Checks)
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, res)
}

func (h *Payment) fail(w http.ResponseWriter, method string, err error) {
	log.Printf("layer=handler component=payment method=%s err=%v", method, err)
	if errors.Is(err, payment.ErrInvalidRequest) {
		writeJSON(w, http.StatusBadRequest, errorResp{Detail: err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResp{Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("layer=handler component=payment method=writeJSON err=%v", err)
	}
}
