package float16

import "math"

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func (x Float16) Sqrt() Float16 {
	// math.Sqrt is correctly rounded in float64, which has more than
	// 2*11+2 significand bits, so the demotion gives the correctly
	// rounded binary16 square root.
	return FromFloat64(math.Sqrt(x.Float64()))
}
