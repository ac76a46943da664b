package float16

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Float16 is an IEEE 754 binary16 value stored in its 16-bit encoding.
//
//	bit  15     sign
//	bits 14-10  exponent, biased by 15
//	bits 9-0    significand
type Float16 uint16

const (
	signMask16 = 0x8000
	fracMask16 = 0x03ff
	shift16    = 10
	mask16     = 0x1f
	bias16     = 15

	uvinf    = 0x7c00
	uvneginf = 0xfc00
	uvnan    = 0x7e00 // quiet NaN

	fracMask32 = 0x007f_ffff
	shift32    = 23
	mask32     = 0xff
	bias32     = 127

	fracMask64 = 0x000f_ffff_ffff_ffff
	shift64    = 52
	mask64     = 0x7ff
	bias64     = 1023
)

// FromBits returns the Float16 whose encoding is b.
// FromBits(x.Bits()) == x.
func FromBits(b uint16) Float16 {
	return Float16(b)
}

// Bits returns the IEEE 754 binary16 encoding of x.
func (x Float16) Bits() uint16 {
	return uint16(x)
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Float16 {
	if sign >= 0 {
		return uvinf
	}
	return uvneginf
}

// NaN returns a quiet NaN.
func NaN() Float16 {
	return uvnan
}

func (x Float16) split() (sign Float16, exp int, frac uint16) {
	sign = x & signMask16
	exp = int(x>>shift16)&mask16 - bias16
	frac = uint16(x & fracMask16)
	if exp == -bias16 {
		// subnormal number
		exp++
	} else {
		frac |= 1 << shift16
	}
	return
}

// Float32 returns the float32 value of x. The conversion is exact.
// A NaN becomes a quiet float32 NaN with the same sign; the significand
// bits of x are kept as the high payload bits.
func (x Float16) Float32() float32 {
	sign := uint32(x&signMask16) << 16
	exp := uint32(x>>shift16) & mask16
	frac := uint32(x & fracMask16)

	switch exp {
	case 0:
		if frac == 0 {
			// ±0
			break
		}
		// subnormal number, normalize it
		l := bits.Len32(frac)
		frac = (frac << (shift16 - l + 1)) & fracMask16
		exp = bias32 - bias16 - shift16 + uint32(l)
	case mask16:
		exp = mask32
		if frac != 0 {
			frac |= 1 << (shift16 - 1) // quiet bit
		}
	default:
		exp += bias32 - bias16
	}
	return math.Float32frombits(sign | exp<<shift32 | frac<<(shift32-shift16))
}

// Float64 returns the float64 value of x. The conversion is exact.
func (x Float16) Float64() float64 {
	sign := uint64(x&signMask16) << 48
	exp := uint64(x>>shift16) & mask16
	frac := uint64(x & fracMask16)

	switch exp {
	case 0:
		if frac == 0 {
			break
		}
		l := bits.Len64(frac)
		frac = (frac << (shift16 - l + 1)) & fracMask16
		exp = bias64 - bias16 - shift16 + uint64(l)
	case mask16:
		exp = mask64
		if frac != 0 {
			frac |= 1 << (shift16 - 1)
		}
	default:
		exp += bias64 - bias16
	}
	return math.Float64frombits(sign | exp<<shift64 | frac<<(shift64-shift16))
}

// FromFloat32 returns the Float16 nearest to f, with ties rounded to even.
//
// Magnitudes that round above the largest finite Float16 (65504) become
// infinities, magnitudes that round below the smallest subnormal (2^-24)
// become zeros of the same sign. NaN becomes a quiet NaN with the same sign.
func FromFloat32(f float32) Float16 {
	b := math.Float32bits(f)
	sign := Float16(b>>16) & signMask16
	exp := int(b>>shift32) & mask32
	frac := b & fracMask32

	if exp == mask32 {
		if frac != 0 {
			// NaN
			return sign | uvnan | Float16(frac>>(shift32-shift16))
		}
		// ±Inf
		return sign | uvinf
	}
	if exp == 0 {
		// ±0 and float32 subnormals are all far below 2^-25
		return sign
	}

	exp -= bias32
	if exp > bias16 {
		// overflow
		return sign | uvinf
	}
	frac |= 1 << shift32

	if exp < 1-bias16 {
		// the result is subnormal, or zero after rounding
		shift := (shift32 - shift16) + (1 - bias16 - exp)
		if shift > shift32+1 {
			// underflow
			return sign
		}
		frac += (1<<(shift-1) - 1) + ((frac >> shift) & 1) // round to nearest even
		frac >>= shift
		// a carry out of the significand lands on the smallest normal number
		return sign | Float16(frac)
	}

	shift := shift32 - shift16
	frac += (1<<(shift-1) - 1) + ((frac >> shift) & 1) // round to nearest even
	frac >>= shift

	// frac carries the implicit bit, so a rounding carry moves into the exponent.
	h := uint32(exp+bias16-1)<<shift16 + frac
	if h >= uvinf {
		// overflow
		return sign | uvinf
	}
	return sign | Float16(h)
}

// FromFloat64 returns the Float16 nearest to f, with ties rounded to even.
// f is rounded once, so FromFloat64(f) may differ from
// FromFloat32(float32(f)).
func FromFloat64(f float64) Float16 {
	b := math.Float64bits(f)
	sign := Float16(b>>48) & signMask16
	exp := int(b>>shift64) & mask64
	frac := b & fracMask64

	if exp == mask64 {
		if frac != 0 {
			return sign | uvnan | Float16(frac>>(shift64-shift16))
		}
		return sign | uvinf
	}
	if exp == 0 {
		return sign
	}

	exp -= bias64
	if exp > bias16 {
		return sign | uvinf
	}
	frac |= 1 << shift64

	if exp < 1-bias16 {
		shift := (shift64 - shift16) + (1 - bias16 - exp)
		if shift > shift64+1 {
			return sign
		}
		frac += (1<<(shift-1) - 1) + ((frac >> shift) & 1) // round to nearest even
		frac >>= shift
		return sign | Float16(frac)
	}

	shift := shift64 - shift16
	frac += (1<<(shift-1) - 1) + ((frac >> shift) & 1) // round to nearest even
	frac >>= shift

	h := uint64(exp+bias16-1)<<shift16 + frac
	if h >= uvinf {
		return sign | uvinf
	}
	return sign | Float16(h)
}

// FromFloat returns the Float16 nearest to f, with ties rounded to even.
func FromFloat[F constraints.Float](f F) Float16 {
	// every float32 is exact in float64, so this rounds only once.
	return FromFloat64(float64(f))
}

// ToFloat returns the value of x as an F. The conversion is exact.
func ToFloat[F constraints.Float](x Float16) F {
	return F(x.Float64())
}
