package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingRate is returned when a currency code is absent from CurrencyRates.
var ErrMissingRate = errors.New("currency rate missing")

// USD is the currency code every price payload must carry.
const USD = "USD"

// CurrencyRates maps fiat currency codes to the price of one BTC.
type CurrencyRates struct {
	Time  time.Time
	Rates map[string]float64
}

// Rate returns the price of one BTC in the given currency.
func (r CurrencyRates) Rate(code string) (float64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	v, ok := r.Rates[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingRate, code)
	}
	return v, nil
}

// USD returns the USD price of one BTC.
func (r CurrencyRates) USD() (float64, error) {
	return r.Rate(USD)
}
