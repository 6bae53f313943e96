package account

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders v as dollars with thousands separators and two
// decimals, e.g. 10100 -> "$10,100.00" and -10000 -> "$-10,000.00".
func FormatCurrency(v float64) string {
	return "$" + printer.Sprint(number.Decimal(v, number.Scale(2)))
}
