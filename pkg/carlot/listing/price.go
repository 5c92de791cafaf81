package listing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	million = decimal.NewFromInt(1_000_000)
	two     = decimal.NewFromInt(2)
	four    = decimal.NewFromInt(4)
)

// PriceMillions converts a display price such as "Ksh 4,200,000" into
// millions (4.2). Every character other than digits and dots is dropped
// before parsing; anything left unparseable counts as zero.
func PriceMillions(price string) decimal.Decimal {
	m, _ := parsePriceMillions(price)
	return m
}

// parsePriceMillions reports false when price holds no number.
func parsePriceMillions(price string) (decimal.Decimal, bool) {
	digits := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, price)

	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, false
	}
	return d.Div(million), true
}

// inPriceBucket keeps the overlapping boundaries of the price selector:
// exactly 2 million sits in both 0-2 and 2-4, exactly 4 in both 2-4 and 4+.
func inPriceBucket(m decimal.Decimal, bucket string) bool {
	switch bucket {
	case PriceUpTo2:
		return m.LessThanOrEqual(two)
	case Price2To4:
		return m.GreaterThanOrEqual(two) && m.LessThanOrEqual(four)
	case PriceFrom4:
		return m.GreaterThanOrEqual(four)
	}
	return true
}
