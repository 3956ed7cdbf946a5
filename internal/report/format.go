package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency formats v as dollars with thousands separators and two decimals.
// The sign follows the dollar sign: -1000 becomes "$-1,000.00".
func Currency(v float64) string {
	return "$" + printer.Sprintf("%.2f", v)
}

// Number formats v with thousands separators and the given decimals.
func Number(v float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

func Percent(v float64) string {
	return printer.Sprintf("%.1f%%", v*100)
}

func monthLabel(month int) string {
	if month <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("Month %d", month)
}

func rule(width int) string {
	return strings.Repeat("-", width)
}
