// Package money converts minor-unit integers stored by the persistence layer
// into display-ready amounts. All arithmetic stays in int64 minor units; the
// decimal major value exists for serialization only.
package money

import (
	"github.com/shopspring/decimal"
)

// Amount is an immutable monetary value. Minor is the stored integer
// (kopecks); Major is always Minor/100 under the two-decimal currency
// assumption. Negative values pass through unmodified.
type Amount struct {
	Minor     int64           `json:"minor"`
	Major     decimal.Decimal `json:"major"`
	Formatted string          `json:"formatted"`
	Currency  string          `json:"currency"`
}

// FromMinor builds an Amount from a minor-unit integer. It is total: any
// int64 input yields a valid Amount. The Formatted field is left empty;
// use a Formatter to render it.
func FromMinor(minor int64, currency string) Amount {
	return Amount{
		Minor:    minor,
		Major:    decimal.New(minor, -2),
		Currency: currency,
	}
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool { return a.Minor == 0 }
