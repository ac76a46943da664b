package float16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		x         Float16
		zero      bool
		finite    bool
		inf       bool
		normal    bool
		subnormal bool
		nan       bool
		negative  bool
	}{
		{"+0", 0x0000, true, true, false, false, false, false, false},
		{"-0", 0x8000, true, true, false, false, false, false, true},
		{"smallest subnormal", 0x0001, false, true, false, false, true, false, false},
		{"largest subnormal", 0x03ff, false, true, false, false, true, false, false},
		{"negative subnormal", 0x8001, false, true, false, false, true, false, true},
		{"smallest normal", 0x0400, false, true, false, true, false, false, false},
		{"one", 0x3c00, false, true, false, true, false, false, false},
		{"largest normal", 0x7bff, false, true, false, true, false, false, false},
		{"-2", 0xc000, false, true, false, true, false, false, true},
		{"+Inf", 0x7c00, false, false, true, false, false, false, false},
		{"-Inf", 0xfc00, false, false, true, false, false, false, true},
		{"quiet NaN", 0x7e00, false, false, false, false, false, true, false},
		{"signaling NaN", 0x7c01, false, false, false, false, false, true, false},
		{"negative NaN", 0xfe00, false, false, false, false, false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := assert.New(t)
			a.Equal(tt.zero, tt.x.IsZero(), "IsZero")
			a.Equal(tt.finite, tt.x.IsFinite(), "IsFinite")
			a.Equal(tt.inf, tt.x.IsInf(0), "IsInf")
			a.Equal(tt.normal, tt.x.IsNormal(), "IsNormal")
			a.Equal(tt.subnormal, tt.x.IsSubnormal(), "IsSubnormal")
			a.Equal(tt.nan, tt.x.IsNaN(), "IsNaN")
			a.Equal(tt.negative, tt.x.IsSignNegative(), "IsSignNegative")
			a.Equal(!tt.negative, tt.x.IsSignPositive(), "IsSignPositive")
		})
	}
}

func TestIsInf(t *testing.T) {
	tests := []struct {
		f    Float16
		sign int
		inf  bool
	}{
		{Inf(1), 1, true},
		{Inf(-1), 1, false},
		{Inf(1), -1, false},
		{Inf(-1), -1, true},
		{Inf(1), 0, true},
		{Inf(-1), 0, true},
		{NaN(), 0, false},
		{0x7c01, 0, false},
		{0x7bff, 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.inf, tt.f.IsInf(tt.sign), "%04x IsInf(%d)", uint16(tt.f), tt.sign)
	}
}

func TestClassify_Literals(t *testing.T) {
	a := assert.New(t)

	smallest := FromBits(1)
	a.True(smallest.IsSubnormal())
	a.False(smallest.IsNormal())

	nan := FromFloat32(float32(math.NaN())).Quo(FromFloat32(1))
	a.True(nan.IsNaN())

	inf := FromFloat32(float32(math.Inf(1)))
	a.True(inf.IsInf(0))
	a.True(inf.IsSignPositive())

	neginf := FromFloat32(float32(math.Inf(-1)))
	a.True(neginf.IsInf(0))
	a.True(neginf.IsSignNegative())
}

// IsNaN is defined through comparison; it must still agree with the
// encoding for every bit pattern.
func TestIsNaN_All(t *testing.T) {
	for bits := 0; bits < 1<<16; bits++ {
		x := FromBits(uint16(bits))
		byBits := (x>>shift16)&mask16 == mask16 && x&fracMask16 != 0
		if x.IsNaN() != byBits {
			t.Errorf("%04x: IsNaN() = %v, encoding says %v", bits, x.IsNaN(), byBits)
		}
		if x.IsNaN() && x.Equal(x) {
			t.Errorf("%04x: NaN equals itself", bits)
		}
	}
}

func TestClassify_Partition(t *testing.T) {
	for bits := 0; bits < 1<<16; bits++ {
		x := FromBits(uint16(bits))
		n := 0
		for _, ok := range []bool{x.IsZero(), x.IsSubnormal(), x.IsNormal(), x.IsInf(0), x.IsNaN()} {
			if ok {
				n++
			}
		}
		if n != 1 {
			t.Errorf("%04x: belongs to %d classes", bits, n)
		}
		if x.IsFinite() != (x.IsZero() || x.IsSubnormal() || x.IsNormal()) {
			t.Errorf("%04x: IsFinite() = %v", bits, x.IsFinite())
		}
	}
}

func TestPrecisionFromFloat32(t *testing.T) {
	tests := []struct {
		f    float32
		want Precision
	}{
		{0, PrecisionExact},
		{float32(negZero), PrecisionExact},
		{1, PrecisionExact},
		{65504, PrecisionExact},
		{0x1p-24, PrecisionExact},
		{0x1.ff8p-15, PrecisionExact},
		{float32(math.Inf(1)), PrecisionExact},
		{float32(math.NaN()), PrecisionExact},

		{0x1.002p+00, PrecisionInexact},
		{0x1.8p-24, PrecisionInexact},
		{65519, PrecisionInexact},
		{math.Nextafter32(0x1p-25, 1), PrecisionInexact},

		{0x1p-25, PrecisionUnderflow},
		{-0x1p-30, PrecisionUnderflow},
		{math.SmallestNonzeroFloat32, PrecisionUnderflow},

		{65520, PrecisionOverflow},
		{-0x1p+16, PrecisionOverflow},
		{math.MaxFloat32, PrecisionOverflow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrecisionFromFloat32(tt.f), "%x", tt.f)
	}
}

func TestPrecision_String(t *testing.T) {
	assert.Equal(t, "exact", PrecisionExact.String())
	assert.Equal(t, "inexact", PrecisionInexact.String())
	assert.Equal(t, "underflow", PrecisionUnderflow.String())
	assert.Equal(t, "overflow", PrecisionOverflow.String())
	assert.Equal(t, "unknown", Precision(42).String())
}
