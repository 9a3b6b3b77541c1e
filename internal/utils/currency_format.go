package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount the way the app displays money:
// whole rupiah with Indonesian digit grouping.
// Example: 1250000 returns "Rp 1.250.000"
// Example: -30000.6 returns "-Rp 30.001"
func FormatRupiah(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	if rounded.IsNegative() {
		return "-Rp " + rupiahPrinter.Sprintf("%d", rounded.Neg().IntPart())
	}
	return "Rp " + rupiahPrinter.Sprintf("%d", rounded.IntPart())
}
