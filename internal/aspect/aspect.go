// Package aspect snaps numeric aspect ratios to well-known n:d pairs.
package aspect

import "math"

// Ratio is a catalog entry: the numeric ratio and its numerator/denominator.
type Ratio struct {
	Value       float64
	Numerator   float64
	Denominator float64
}

func ratio(n, d float64) Ratio {
	return Ratio{Value: n / d, Numerator: n, Denominator: d}
}

// common is ordered by priority. FindCommon returns the first entry within
// tolerance, so earlier entries win over closer later ones.
var common = [...]Ratio{
	ratio(16, 9),
	ratio(16, 10),
	ratio(4, 3),
	ratio(5, 4),
	ratio(3, 2),
	// ultrawide
	ratio(17, 9),
	ratio(21, 9),
	ratio(32, 9),
	ratio(1, 1),
	ratio(4, 1),
}

// Common returns a copy of the catalog in priority order.
func Common() []Ratio {
	out := make([]Ratio, len(common))
	copy(out, common[:])
	return out
}

// FindCommon returns the numerator and denominator of the first catalog
// entry whose ratio differs from r by strictly less than rounding.
func FindCommon(r, rounding float64) ([2]float64, bool) {
	for _, c := range common {
		if math.Abs(r-c.Value) < rounding {
			return [2]float64{c.Numerator, c.Denominator}, true
		}
	}

	return [2]float64{}, false
}

// Snap is FindCommon with the fallback used for display: a ratio with no
// common match is shown as r:1.
func Snap(r, rounding float64) [2]float64 {
	if nd, ok := FindCommon(r, rounding); ok {
		return nd
	}

	return [2]float64{r, 1}
}
