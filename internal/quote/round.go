package quote

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundTo rounds half away from zero to the given number of decimal places.
// Non-finite values are returned unchanged since decimal cannot hold them.
func roundTo(v float64, places int32) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
