package float16

// Arithmetic promotes both operands to float32, operates there, and
// rounds the float32 result back with FromFloat32. Each result is rounded
// twice, once by the float32 operation and once by the demotion; this is
// promoted arithmetic, not a model of a native binary16 unit. NaN,
// infinities and division by zero follow float32 semantics before the
// final demotion.

// Add returns the sum of a and b.
func (a Float16) Add(b Float16) Float16 {
	return FromFloat32(a.Float32() + b.Float32())
}

// Sub returns the difference of a and b.
func (a Float16) Sub(b Float16) Float16 {
	return FromFloat32(a.Float32() - b.Float32())
}

// Mul returns the product of a and b.
func (a Float16) Mul(b Float16) Float16 {
	return FromFloat32(a.Float32() * b.Float32())
}

// Quo returns the quotient of a and b.
//
//	±x / ±0 = ±Inf (x != 0)
//	±0 / ±0 = NaN
func (a Float16) Quo(b Float16) Float16 {
	return FromFloat32(a.Float32() / b.Float32())
}

// Neg returns -x. Only the sign bit changes, NaN payloads are kept.
func (x Float16) Neg() Float16 {
	return x ^ signMask16
}

// Abs returns |x|. Only the sign bit changes, NaN payloads are kept.
func (x Float16) Abs() Float16 {
	return x &^ signMask16
}
