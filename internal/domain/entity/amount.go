package entity

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol prefixes every amount rendered into a description
const CurrencySymbol = "₱"

var amountLocale = language.MustParse("en-PH")

// FormatAmount renders whole pesos with thousands separators, e.g. 12345 -> "₱12,345"
func FormatAmount(amount int) string {
	// Printers carry formatting state, so one per call
	p := message.NewPrinter(amountLocale)
	return CurrencySymbol + p.Sprintf("%d", amount)
}
