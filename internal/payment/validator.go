package payment

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
)

var (
	ErrInvalidRequest = errors.New("invalid payment request")
	ErrGateway        = errors.New("payment gateway failure")
)

func ValidateOneTimeRequest(r OneTimeRequest) error {
	if err := validateAmount(r.Amount); err != nil {
		return err
	}
	return validateCommon(r.Currency, r.ReturnURL, r.CancelURL)
}

func ValidateRecurringRequest(r RecurringRequest) error {
	if strings.TrimSpace(r.PlanName) == "" {
		return fmt.Errorf("%w: empty plan name", ErrInvalidRequest)
	}
	if err := validateAmount(r.Price); err != nil {
		return err
	}
	return validateCommon(r.Currency, r.ReturnURL, r.CancelURL)
}

func ValidateCaptureToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidRequest)
	}
	return nil
}

func validateAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: amount must be a positive number", ErrInvalidRequest)
	}
	return nil
}

func validateCommon(currency, returnURL, cancelURL string) error {
	if !isCurrencyCode(currency) {
		return fmt.Errorf("%w: currency %q", ErrInvalidRequest, currency)
	}
	for _, raw := range []string{returnURL, cancelURL} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: redirect url %q", ErrInvalidRequest, raw)
		}
	}
	return nil
}

func isCurrencyCode(c string) bool {
	if len(c) != 3 {
		return false
	}
	for _, r := range c {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
