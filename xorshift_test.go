package float16

import "math"

// xorshift32 is a small deterministic generator for tests and benchmarks.
type xorshift32 struct {
	x uint32
}

func newXorshift32() *xorshift32 {
	return &xorshift32{x: 2463534242}
}

func (r *xorshift32) Uint32() uint32 {
	x := r.x
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.x = x
	return x
}

// Float32 returns a float32 with uniformly random bits,
// so every class of value shows up.
func (r *xorshift32) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

// Float16Pair returns two Float16 values with uniformly random bits.
func (r *xorshift32) Float16Pair() (Float16, Float16) {
	u := r.Uint32()
	return Float16(u), Float16(u >> 16)
}

type xorshift64 struct {
	x uint64
}

func newXorshift64() *xorshift64 {
	return &xorshift64{x: 88172645463325252}
}

func (r *xorshift64) Uint64() uint64 {
	x := r.x
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.x = x
	return x
}

func (r *xorshift64) Float64() float64 {
	return math.Float64frombits(r.Uint64())
}
