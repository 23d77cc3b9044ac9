package domain

import "github.com/shopspring/decimal"

// Money is a price as the platform reports it: an exact decimal amount kept
// as a string plus an ISO currency code.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Decimal parses the amount. A malformed amount counts as zero so a single
// bad price never poisons a whole cart total.
func (m Money) Decimal() decimal.Decimal {
	d, err := decimal.NewFromString(m.Amount)
	if err != nil {
		return decimal.Zero
	}
	return d
}
