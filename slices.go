package float16

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrOddLength is returned when a byte slice does not hold a whole
	// number of 2-byte values.
	ErrOddLength = errors.New("odd length")

	// ErrShortBuffer is returned when the destination cannot hold every
	// decoded value.
	ErrShortBuffer = errors.New("short buffer")

	// ErrInvalidLength is returned by UnmarshalBinary for any input
	// that is not exactly 2 bytes long.
	ErrInvalidLength = errors.New("invalid length")
)

// Encode converts src into dst and returns the number of values
// converted, which is the minimum of len(dst) and len(src).
func Encode(dst []Float16, src []float32) int {
	n := min(len(dst), len(src))
	for i, f := range src[:n] {
		dst[i] = FromFloat32(f)
	}
	return n
}

// Decode converts src into dst and returns the number of values
// converted, which is the minimum of len(dst) and len(src).
func Decode(dst []float32, src []Float16) int {
	n := min(len(dst), len(src))
	for i, x := range src[:n] {
		dst[i] = x.Float32()
	}
	return n
}

// AppendBinary appends the 2-byte encodings of xs to buf in the given
// byte order and returns the extended buffer.
func AppendBinary(buf []byte, order binary.AppendByteOrder, xs ...Float16) []byte {
	for _, x := range xs {
		buf = order.AppendUint16(buf, uint16(x))
	}
	return buf
}

// ReadBinary decodes the 2-byte values in data into dst and returns the
// number of values read. Bit patterns are copied as is, NaN payloads included.
func ReadBinary(dst []Float16, order binary.ByteOrder, data []byte) (int, error) {
	if len(data)%2 != 0 {
		return 0, fmt.Errorf("float16: ReadBinary: %d bytes: %w", len(data), ErrOddLength)
	}
	n := len(data) / 2
	if len(dst) < n {
		return 0, fmt.Errorf("float16: ReadBinary: need %d values, have room for %d: %w", n, len(dst), ErrShortBuffer)
	}
	for i := range dst[:n] {
		dst[i] = Float16(order.Uint16(data[2*i:]))
	}
	return n, nil
}

// MarshalBinary implements [encoding.BinaryMarshaler].
// The encoding is the 2-byte little-endian bit pattern.
func (x Float16) MarshalBinary() ([]byte, error) {
	return binary.LittleEndian.AppendUint16(make([]byte, 0, 2), uint16(x)), nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (x *Float16) UnmarshalBinary(data []byte) error {
	if len(data) != 2 {
		return fmt.Errorf("float16: UnmarshalBinary: %d bytes: %w", len(data), ErrInvalidLength)
	}
	*x = Float16(binary.LittleEndian.Uint16(data))
	return nil
}
