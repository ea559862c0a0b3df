package utils

import "math"

// Fl is the floating point type used for all computed CSS values.
type Fl = float32

func MinF(x, y Fl) Fl {
	if x < y {
		return x
	}
	return y
}

func MaxF(x, y Fl) Fl {
	if x > y {
		return x
	}
	return y
}

func IsInf(x Fl) bool { return math.IsInf(float64(x), 0) }
