// Package currency formats whole-dollar amounts for display. Fixed to
// en-US / USD with zero decimal places; no other configuration is exposed.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders a whole-dollar amount as e.g. "$1,234". Negative amounts
// render with a leading sign ("-$42").
func FormatUSD(amount int) string {
	if amount < 0 {
		return "-" + FormatUSD(-amount)
	}
	return printer.Sprintf("$%v", number.Decimal(amount))
}
