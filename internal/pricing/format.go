package pricing

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var gbPrinter = message.NewPrinter(language.BritishEnglish)

// FormatPence renders a minor-unit amount as a pound string in the en-GB
// locale, e.g. 125 pence formats with a pound sign and two decimal places.
func FormatPence(pence int64) string {
	amount := currency.GBP.Amount(float64(pence) / 100)
	return gbPrinter.Sprintf("%v", currency.Symbol(amount))
}

// Savings describes the gap between two prices.
type Savings struct {
	Amount     int64   `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// CalculateSavings returns the absolute difference between two prices and
// that difference as a percentage of the dearer one. Zero when either price
// is zero.
func CalculateSavings(a, b int64) Savings {
	if a == 0 || b == 0 {
		return Savings{}
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	max := a
	if b > max {
		max = b
	}
	return Savings{
		Amount:     diff,
		Percentage: float64(diff) / float64(max) * 100,
	}
}
