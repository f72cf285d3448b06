package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatSEK formats an amount in Swedish kronor the way the settlement
// documents display it: rounded to whole kronor, thousands separated with a
// space, "kr" suffix. E.g. 302500 -> "302 500 kr", -125000 -> "-125 000 kr".
// All internal arithmetic keeps full precision; rounding happens only here.
func FormatSEK(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	digits := rounded.Abs().String()

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(' ')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(' ')
		}
	}
	b.WriteString(" kr")
	return b.String()
}

// FormatWithPrecision formats an amount rounded to the given number of
// decimal places.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
