// Package layout provides the small sizing arithmetic shared by
// dialog surfaces and app bars.
package layout

// PercentOf returns percent percent of whole, with native
// floating-point semantics and no rounding.
func PercentOf(whole, percent float64) float64 {
	return percent * whole / 100
}

// Width returns percent percent of a total cell width, truncated to
// whole cells and never negative.
func Width(total int, percent float64) int {
	w := int(PercentOf(float64(total), percent))
	if w < 0 {
		return 0
	}
	return w
}

// Clamp constrains a value to a range.
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
