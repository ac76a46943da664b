package float16

import (
	"fmt"
	"strconv"
)

var _ fmt.Formatter = Float16(0)
var _ fmt.Stringer = Float16(0)

// String returns the shortest decimal form that converts back to the
// same float32 value as x.
func (x Float16) String() string {
	return strconv.FormatFloat(float64(x.Float32()), 'g', -1, 32)
}

// Format implements [fmt.Formatter].
//
// %b, %x and %X are produced from the bits of x and show its binary16
// layout. The decimal verbs %e, %E, %f, %F, %g, %G and %v format the
// promoted float32 value.
func (x Float16) Format(s fmt.State, verb rune) {
	if x.IsNaN() {
		s.Write([]byte("NaN"))
		return
	}

	var prefix []byte
	var data []byte

	// sign
	if x&signMask16 != 0 {
		prefix = append(prefix, '-')
		x &^= signMask16
	} else {
		if s.Flag('+') || x == uvinf {
			prefix = append(prefix, '+')
		} else if s.Flag(' ') {
			prefix = append(prefix, ' ')
		}
	}

	prec, ok := s.Precision()
	if !ok {
		prec = -1
	}

	switch {
	case x == uvinf:
		data = append(data, "Inf"...)
	case verb == 'b':
		data = x.appendBin(data)
	case verb == 'x' || verb == 'X':
		data = x.appendHex(data, byte(verb), prec)
	case verb == 'e' || verb == 'E' || verb == 'f' || verb == 'F' || verb == 'g' || verb == 'G':
		data = strconv.AppendFloat(data, float64(x.Float32()), byte(verb), prec, 32)
	case verb == 'v':
		data = strconv.AppendFloat(data, float64(x.Float32()), 'g', -1, 32)
	default:
		fmt.Fprintf(s, "%%!%c(float16.Float16=%s)", verb, x.String())
		return
	}

	if w, ok := s.Width(); ok {
		var buf [1]byte
		buf[0] = ' '
		pad := w - len(prefix) - len(data)
		if s.Flag('-') {
			s.Write(prefix)
			s.Write(data)
			for i := 0; i < pad; i++ {
				s.Write(buf[:1])
			}
		} else {
			for i := 0; i < pad; i++ {
				s.Write(buf[:1])
			}
			s.Write(prefix)
			s.Write(data)
		}
		return
	}

	if len(prefix) > 0 {
		s.Write(prefix)
	}
	s.Write(data)
}

// appendBin appends the decimal significand and binary exponent of x,
// in the form of strconv's 'b' format, e.g. 1024p-10 for 1.
func (x Float16) appendBin(buf []byte) []byte {
	sign, exp, frac := x.split()
	if sign != 0 {
		buf = append(buf, '-')
	}
	exp -= shift16

	switch {
	case frac >= 1000:
		buf = append(buf, byte((frac/1000)%10)+'0')
		fallthrough
	case frac >= 100:
		buf = append(buf, byte((frac/100)%10)+'0')
		fallthrough
	case frac >= 10:
		buf = append(buf, byte((frac/10)%10)+'0')
		fallthrough
	default:
		buf = append(buf, byte(frac%10)+'0')
	}

	buf = append(buf, 'p')
	if exp >= 0 {
		buf = append(buf, '+')
	} else {
		buf = append(buf, '-')
		exp = -exp
	}

	switch {
	case exp >= 10:
		buf = append(buf, byte(exp/10)+'0')
		fallthrough
	default:
		buf = append(buf, byte(exp%10)+'0')
	}
	return buf
}

// appendHex appends x as a hexadecimal float, 0x1.8p+00 for 1.5.
// prec is the number of hex digits after the point, -1 for as few as needed.
func (x Float16) appendHex(buf []byte, fmt byte, prec int) []byte {
	if prec < -1 {
		panic("invalid precision")
	}
	sign, exp, frac := x.split()
	if sign != 0 {
		buf = append(buf, '-')
	}
	buf = append(buf, '0', fmt) // 0x or 0X

	lead := byte('1')
	if frac == 0 {
		lead = '0'
		exp = 0
	} else {
		// normalize subnormal numbers
		for frac&(1<<shift16) == 0 {
			frac <<= 1
			exp--
		}
	}

	if prec >= 0 && prec < 3 {
		// round to nearest even
		drop := shift16 - 4*prec
		frac += (1<<(drop-1) - 1) + ((frac >> drop) & 1)
		frac &^= 1<<drop - 1
		if frac >= 1<<(shift16+1) {
			exp++
			frac >>= 1
		}
	}

	// 10 significand bits, left-justified into three nibbles
	digits := [3]byte{
		nibble(fmt, frac>>6),
		nibble(fmt, frac>>2),
		nibble(fmt, frac<<2),
	}
	n := prec
	if n < 0 {
		n = len(digits)
		for n > 0 && digits[n-1] == '0' {
			n--
		}
	}

	buf = append(buf, lead)
	if n > 0 {
		buf = append(buf, '.')
		for i := 0; i < n; i++ {
			if i < len(digits) {
				buf = append(buf, digits[i])
			} else {
				buf = append(buf, '0')
			}
		}
	}

	buf = append(buf, fmt-('x'-'p'))
	if exp >= 0 {
		buf = append(buf, '+')
	} else {
		buf = append(buf, '-')
		exp = -exp
	}
	buf = append(buf, byte(exp/10)+'0', byte(exp%10)+'0')
	return buf
}

func nibble(fmt byte, x uint16) byte {
	x &= 0xf
	if x < 10 {
		return '0' + byte(x)
	}
	return ('A' + byte(x-10)) | (fmt & ('a' - 'A'))
}
