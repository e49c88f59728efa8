package savings

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a ratio expressed in percent: 7.0 is 7%.
type Percent float64

// RatePercent converts a rate expressed as a fraction (0.07) into a Percent (7.00%).
func RatePercent(rate decimal.Decimal) Percent {
	return Percent(rate.Shift(2).InexactFloat64())
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
