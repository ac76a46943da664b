package float16

import "cmp"

// Equality and ordering promote both operands to float32 and use the
// native comparison, so they follow IEEE 754: NaN is unordered and unequal
// to everything including itself, and -0 == +0.

// Equal reports whether a == b.
func (a Float16) Equal(b Float16) bool {
	return a.Float32() == b.Float32()
}

// Less reports whether a < b.
func (a Float16) Less(b Float16) bool {
	return a.Float32() < b.Float32()
}

// LessEqual reports whether a <= b.
func (a Float16) LessEqual(b Float16) bool {
	return a.Float32() <= b.Float32()
}

// Greater reports whether a > b.
func (a Float16) Greater(b Float16) bool {
	return a.Float32() > b.Float32()
}

// GreaterEqual reports whether a >= b.
func (a Float16) GreaterEqual(b Float16) bool {
	return a.Float32() >= b.Float32()
}

// PartialCompare compares a and b and returns:
//
//	-1, true  if a <  b
//	 0, true  if a == b (incl. -0 == 0)
//	+1, true  if a >  b
//	 0, false if a or b is NaN
func (a Float16) PartialCompare(b Float16) (int, bool) {
	fa, fb := a.Float32(), b.Float32()
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	case fa == fb:
		return 0, true
	}
	return 0, false
}

// Compare compares a and b and returns:
//
//	-1 if a <  b
//	 0 if a == b (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if a >  b
//
// a NaN is considered less than any non-NaN, and two NaNs are equal.
func (a Float16) Compare(b Float16) int {
	return cmp.Compare(a.Float32(), b.Float32())
}

// Max returns the largest of its arguments.
// NaN arguments are skipped unless every argument is NaN.
func Max(first Float16, rest ...Float16) Float16 {
	answer := first
	for _, x := range rest {
		if x.Greater(answer) || answer.IsNaN() {
			answer = x
		}
	}
	return answer
}

// Min returns the smallest of its arguments.
// NaN arguments are skipped unless every argument is NaN.
func Min(first Float16, rest ...Float16) Float16 {
	answer := first
	for _, x := range rest {
		if x.Less(answer) || answer.IsNaN() {
			answer = x
		}
	}
	return answer
}
