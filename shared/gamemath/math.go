// Package gamemath holds the pure math helpers shared by the menu core and
// the ebiten host: clamping, easing, rectangles and time-windowed averages.
package gamemath

import "math"

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
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

// EaseInOut maps alpha in [0, 1] onto a symmetric ease-in/ease-out curve
// with the given exponent. An exponent of 2 is a quadratic ease.
func EaseInOut(alpha, exp float64) float64 {
	alpha = Clamp(alpha, 0, 1)
	if alpha < 0.5 {
		return 0.5 * math.Pow(2*alpha, exp)
	}
	return 1 - 0.5*math.Pow(2*(1-alpha), exp)
}

// InterpEaseInOut interpolates between a and b along EaseInOut.
func InterpEaseInOut(a, b, alpha, exp float64) float64 {
	return Lerp(a, b, EaseInOut(alpha, exp))
}

// StepToward moves current toward target by at most step, never overshooting.
func StepToward(current, target, step float64) float64 {
	diff := target - current
	if diff == 0 {
		return current
	}
	if math.Abs(diff) <= step {
		return target
	}
	return current + Sign(diff)*step
}

// AnalogFilter removes the dead zone from an analog value and rescales the
// remainder to [-1, 1].
func AnalogFilter(v, threshold float64) float64 {
	if threshold >= 1 {
		return 0
	}
	return Sign(v) * math.Max(math.Abs(v)-threshold, 0) / (1 - threshold)
}
