package utils

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatStablePrice renders a stablecoin price with four fractional digits,
// e.g. 1.0002.
func FormatStablePrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// FormatGroupedPrice renders a price with thousands separators and exactly
// two fractional digits, e.g. 92,948.00. Part of the display contract for
// BTC/ETH pairs.
func FormatGroupedPrice(v float64) string {
	return pricePrinter.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
