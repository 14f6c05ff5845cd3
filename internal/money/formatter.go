package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts for display: locale-aware digit grouping, zero
// decimal places, configured currency symbol appended. Rendering is a pure
// function of the amount, so outputs are stable across calls.
type Formatter struct {
	printer *message.Printer
	code    string
	symbol  string
}

// NewFormatter builds a Formatter for the given BCP 47 locale and currency.
// Unparseable locales fall back to English.
func NewFormatter(locale, code, symbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		code:    code,
		symbol:  symbol,
	}
}

// CurrencyCode returns the configured ISO currency code.
func (f *Formatter) CurrencyCode() string { return f.code }

// FromMinor builds a fully rendered Amount in the formatter's currency.
func (f *Formatter) FromMinor(minor int64) Amount {
	a := FromMinor(minor, f.code)
	a.Formatted = f.Format(a)
	return a
}

// Format renders the amount with grouping and no decimal places, rounding
// half away from zero, with the currency symbol as suffix.
func (f *Formatter) Format(a Amount) string {
	whole := a.Major.Round(0).IntPart()
	return f.printer.Sprintf("%d", whole) + " " + f.symbol
}
