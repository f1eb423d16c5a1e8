// Package money centralizes decimal amount handling. Amounts live as
// exact decimals internally and are rounded to 2 fractional digits
// before every persisted write.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scale is the number of fractional digits stored for monetary columns.
const Scale = 2

var printer = message.NewPrinter(language.Indonesian)

// Round normalizes an amount to the persisted scale.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Max returns the larger of two amounts.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThanOrEqual(b) {
		return a
	}
	return b
}

// Display renders an amount as a localized Rupiah string for logs and
// human-facing summaries. Persistence and the wire format never use it.
func Display(d decimal.Decimal) string {
	f, _ := d.Round(Scale).Float64()
	return printer.Sprintf("Rp%.2f", f)
}
