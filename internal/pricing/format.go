package pricing

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amounts are rupiah shown without fraction digits, id-ID style: "Rp\u00a0136.250"
// with a no-break space after the symbol.
const currencyPrefix = "Rp\u00a0"

var displayLocale = language.Indonesian

// maxExactInt is the largest magnitude at which every integer is exactly
// representable as a float64.
const maxExactInt = 1 << 53

func FormatCurrency(amount float64) string {
	p := message.NewPrinter(displayLocale)
	rounded := math.Round(amount)
	if math.Abs(rounded) < maxExactInt {
		return currencyPrefix + p.Sprintf("%d", int64(rounded))
	}
	return currencyPrefix + p.Sprintf("%.0f", rounded)
}

// FormatSurcharge renders a difficulty multiplier as "+15%".
func FormatSurcharge(multiplier float64) string {
	return "+" + strconv.FormatFloat(math.Round(multiplier*1000)/10, 'f', -1, 64) + "%"
}
