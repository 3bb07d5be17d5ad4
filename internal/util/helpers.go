package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Ratio returns part/whole clamped to [0, 1]. A non-positive whole yields 0.
func Ratio(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	r := float64(part) / float64(whole)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
