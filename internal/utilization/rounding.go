package utilization

import "math"

// Round1 rounds to one decimal place, halves toward positive infinity
// (-2.25 becomes -2.2), which keeps numbers identical to the dashboard's.
func Round1(x float64) float64 {
	return roundHalfUp(x*10) / 10
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Percent returns part/whole as a percentage with one decimal. A zero,
// negative or non-finite denominator yields 0.
func Percent(part, whole float64) float64 {
	if whole <= 0 || math.IsNaN(whole) || math.IsInf(whole, 0) || math.IsNaN(part) || math.IsInf(part, 0) {
		return 0
	}
	return Round1(part / whole * 100)
}
