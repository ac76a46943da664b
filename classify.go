package float16

import "math"

// IsNaN reports whether x is an IEEE 754 "not-a-number" value.
//
// NaN is the only value that is not equal to itself, and that definition
// is the authoritative one here: IsNaN goes through the same promoted
// comparison as Equal rather than testing the exponent and significand.
func (x Float16) IsNaN() bool {
	return !x.Equal(x)
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func (x Float16) IsInf(sign int) bool {
	return sign >= 0 && x == uvinf || sign <= 0 && x == uvneginf
}

// IsZero reports whether x is +0 or -0.
func (x Float16) IsZero() bool {
	return x&^signMask16 == 0
}

// IsFinite reports whether x is neither an infinity nor a NaN.
func (x Float16) IsFinite() bool {
	return (x>>shift16)&mask16 != mask16
}

// IsNormal reports whether x is a finite, nonzero number
// that is not subnormal.
func (x Float16) IsNormal() bool {
	exp := (x >> shift16) & mask16
	return exp != 0 && exp != mask16
}

// IsSubnormal reports whether x is a nonzero number with a zero exponent.
func (x Float16) IsSubnormal() bool {
	return (x>>shift16)&mask16 == 0 && x&fracMask16 != 0
}

// IsSignPositive reports whether the sign bit of x is clear.
// It looks only at the bit, so it is also true for +0 and positive NaNs.
func (x Float16) IsSignPositive() bool {
	return x&signMask16 == 0
}

// IsSignNegative reports whether the sign bit of x is set.
// It looks only at the bit, so it is also true for -0 and negative NaNs.
func (x Float16) IsSignNegative() bool {
	return x&signMask16 != 0
}

// Precision describes what is lost when a float32 is converted to Float16.
type Precision int

const (
	// PrecisionExact is for values that convert without loss,
	// including ±0, ±Inf and NaN (whose payload may still be shortened).
	PrecisionExact Precision = iota

	// PrecisionInexact is for values that round to a different nonzero
	// finite Float16.
	PrecisionInexact

	// PrecisionUnderflow is for nonzero values that round to ±0.
	PrecisionUnderflow

	// PrecisionOverflow is for finite values that round to ±Inf.
	PrecisionOverflow
)

func (p Precision) String() string {
	switch p {
	case PrecisionExact:
		return "exact"
	case PrecisionInexact:
		return "inexact"
	case PrecisionUnderflow:
		return "underflow"
	case PrecisionOverflow:
		return "overflow"
	}
	return "unknown"
}

// PrecisionFromFloat32 reports how FromFloat32(f) relates to f.
func PrecisionFromFloat32(f float32) Precision {
	if f == 0 || math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		// ±0, NaN and ±Inf
		return PrecisionExact
	}

	h := FromFloat32(f)
	switch {
	case h.IsZero():
		return PrecisionUnderflow
	case !h.IsFinite():
		return PrecisionOverflow
	case h.Float32() != f:
		return PrecisionInexact
	}
	return PrecisionExact
}
