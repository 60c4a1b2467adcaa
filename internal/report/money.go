package report

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is a currency amount rounded to cents for export.
// NaN and infinities, which decimal cannot hold, are carried as text.
type Money struct {
	decimal.Decimal
	nonFinite string
}

// NewMoney rounds v half away from zero to two decimal places.
func NewMoney(v float64) Money {
	switch {
	case math.IsNaN(v):
		return Money{nonFinite: "NaN"}
	case math.IsInf(v, 1):
		return Money{nonFinite: "+Inf"}
	case math.IsInf(v, -1):
		return Money{nonFinite: "-Inf"}
	}
	return Money{Decimal: decimal.NewFromFloat(v).Round(2)}
}

// IsFinite reports whether m holds an actual amount.
func (m Money) IsFinite() bool {
	return m.nonFinite == ""
}

// String renders the amount with exactly two decimals and no grouping.
func (m Money) String() string {
	if !m.IsFinite() {
		return m.nonFinite
	}
	return m.StringFixed(2)
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (m Money) MarshalCSV() (string, error) {
	return m.String(), nil
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Dollars renders the amount as "$1,234.56".
func (m Money) Dollars() string {
	if !m.IsFinite() {
		return m.nonFinite
	}
	f := m.InexactFloat64()
	if f < 0 {
		return printer.Sprintf("-$%.2f", -f)
	}
	return printer.Sprintf("$%.2f", f)
}

// Dollars renders v as "$1,234.56" for human-readable output.
func Dollars(v float64) string {
	return NewMoney(v).Dollars()
}
