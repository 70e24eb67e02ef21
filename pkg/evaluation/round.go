package evaluation

import "math"

// Round rounds v to the given number of decimal places, ties to even.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
