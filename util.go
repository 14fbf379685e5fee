package cordate

import (
	"math"
	"strings"
)

// Basename retrieves the basename of a file path.
func Basename(fName string) string {
	if lslash := strings.LastIndex(fName, "/"); lslash != -1 {
		fName = fName[lslash+1:]
	}
	return fName
}

// Clamp current value between low and high
func Clamp(cur, low, high float64) float64 {
	if low > high {
		low, high = high, low
	}
	if cur < low {
		return low
	}
	if cur > high {
		return high
	}
	return cur
}

// Lerp is a linear interpolation from v0 to v1 where t varies from 0 to 1.
// t is not clamped.
func Lerp(v0, v1, t float64) float64 {
	return v0*(1-t) + v1*t
}

// Map re-maps v from the range [start1, stop1] to [start2, stop2].
// Values outside the first range extrapolate.
func Map(v, start1, stop1, start2, stop2 float64) float64 {
	return start2 + (stop2-start2)*((v-start1)/(stop1-start1))
}

// Byte rounds v to the nearest integer in [0, 255].
func Byte(v float64) uint8 {
	return uint8(math.RoundToEven(Clamp(v, 0, 255)))
}
