package checkout

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be a positive number")

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyINR Currency = "INR"
)

// Currencies is the order the form offers them in.
var Currencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyINR}

func (c Currency) Valid() bool {
	for _, v := range Currencies {
		if c == v {
			return true
		}
	}
	return false
}

const (
	DefaultAmount   = "5.00"
	DefaultCurrency = CurrencyUSD
)

// FormState is one immutable snapshot of the payment form.
type FormState struct {
	Amount   string
	Currency Currency
}

func DefaultForm() FormState {
	return FormState{Amount: DefaultAmount, Currency: DefaultCurrency}
}

// Action is a user edit applied to the form by Reduce.
type Action interface {
	apply(FormState) FormState
}

type SetAmount string

func (a SetAmount) apply(s FormState) FormState {
	s.Amount = string(a)
	return s
}

// SetCurrency is ignored for codes outside Currencies.
type SetCurrency Currency

func (a SetCurrency) apply(s FormState) FormState {
	if c := Currency(a); c.Valid() {
		s.Currency = c
	}
	return s
}

func Reduce(s FormState, actions ...Action) FormState {
	for _, a := range actions {
		if a != nil {
			s = a.apply(s)
		}
	}
	return s
}

// ParseAmount reads the free-text amount field.
func ParseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
