package document

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// All four paper forms use the European convention: period grouping with a
// comma decimal separator. German locale formatting produces exactly that.
var printer = message.NewPrinter(language.German)

// FormatWeight renders kilograms with grouping and no fractional digits.
func FormatWeight(v float64) string {
	return printer.Sprintf("%.0f", v)
}

// FormatMoney renders an amount with grouping and exactly two fractional
// digits.
func FormatMoney(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// FormatDate renders a calendar date as zero-padded day/month/year.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
