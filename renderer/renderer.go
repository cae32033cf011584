// Package renderer turns ledger reports into markdown strings for the
// terminal. It never touches the store; every function takes plain report
// data and returns a document.
package renderer

import (
	"fmt"
	"strings"

	"kharcha"
)

// Options carries the display settings shared by all reports.
type Options struct {
	Currency string // ISO code, e.g. "INR"
	Hidden   bool   // mask every monetary value
}

// masked replaces hidden balances in listings.
const masked = "••••••"

// Money formats an amount under the display options.
func (o Options) Money(a kharcha.Amount) string {
	if o.Hidden {
		return masked
	}
	if o.Currency == "" {
		return a.String()
	}
	return a.Display(o.Currency)
}

// Signed is like Money but keeps an explicit sign for flow listings.
func (o Options) Signed(a kharcha.Amount) string {
	if o.Hidden {
		return masked
	}
	if a.IsNegative() {
		return "-" + o.Money(a.Neg())
	}
	return "+" + o.Money(a)
}

// bar renders a percent as a fixed-width text gauge, e.g. "[██████----]".
func bar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(strings.Repeat("█", filled))
	b.WriteString(strings.Repeat("-", width-filled))
	b.WriteString("]")
	return b.String()
}

// label renders a category for a table cell, icon first.
func label(icon, name string) string {
	if icon == "" {
		return name
	}
	return fmt.Sprintf("%s %s", icon, name)
}
