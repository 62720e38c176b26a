package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Approach moves cur toward target by at most step.
func Approach(cur, target, step float64) float64 {
	d := target - cur
	if math.Abs(d) <= step {
		return target
	}
	return cur + Sign(d)*step
}
