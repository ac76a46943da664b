// Package float16 implements IEEE 754 half-precision (binary16) floating
// point numbers.
//
// A [Float16] is its 16-bit encoding. Conversions from float32 and float64
// round to nearest, ties to even; conversions to them are exact.
// Comparison and arithmetic promote to float32, operate there, and round
// the result back, so arithmetic results are rounded twice.
package float16
