// Package wire implements the primitive read/write operations shared by
// every column and block codec: fixed-width little-endian integers and
// floats, LEB128 varints, and length-prefixed byte strings.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MaxVarintBytes is the widest a 64-bit LEB128 varint can ever be.
const MaxVarintBytes = 10

// ReadFixed reads sizeof(T) little-endian bytes from r and decodes them as T.
func ReadFixed[T Fixed](r io.Reader) (T, error) {
	var buf [8]byte
	var zero T
	n := sizeOf(zero)
	if _, err := io.ReadFull(r, buf[:n]); err != nil {
		return zero, fmt.Errorf("wire: read fixed(%d): %w", n, err)
	}
	return decodeFixed(zero, buf[:n]), nil
}

// WriteFixed encodes v as sizeof(T) little-endian bytes and writes them to w.
func WriteFixed[T Fixed](w io.Writer, v T) error {
	var buf [8]byte
	n := sizeOf(v)
	encodeFixed(buf[:n], v)
	if _, err := w.Write(buf[:n]); err != nil {
		return fmt.Errorf("wire: write fixed(%d): %w", n, err)
	}
	return nil
}

// Fixed is the closed set of primitive types ReadFixed/WriteFixed support.
type Fixed interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

func sizeOf(v any) int {
	switch v.(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64:
		return 8
	default:
		panic(fmt.Sprintf("wire: unsupported fixed type %T", v))
	}
}

func encodeFixed(dst []byte, v any) {
	switch x := v.(type) {
	case int8:
		dst[0] = uint8(x)
	case uint8:
		dst[0] = x
	case int16:
		binary.LittleEndian.PutUint16(dst, uint16(x))
	case uint16:
		binary.LittleEndian.PutUint16(dst, x)
	case int32:
		binary.LittleEndian.PutUint32(dst, uint32(x))
	case uint32:
		binary.LittleEndian.PutUint32(dst, x)
	case float32:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(x))
	case int64:
		binary.LittleEndian.PutUint64(dst, uint64(x))
	case uint64:
		binary.LittleEndian.PutUint64(dst, x)
	case float64:
		binary.LittleEndian.PutUint64(dst, math.Float64bits(x))
	default:
		panic(fmt.Sprintf("wire: unsupported fixed type %T", v))
	}
}

func decodeFixed[T Fixed](zero T, src []byte) T {
	switch any(zero).(type) {
	case int8:
		return T(int8(src[0]))
	case uint8:
		return T(src[0])
	case int16:
		return T(int16(binary.LittleEndian.Uint16(src)))
	case uint16:
		return T(binary.LittleEndian.Uint16(src))
	case int32:
		return T(int32(binary.LittleEndian.Uint32(src)))
	case uint32:
		return T(binary.LittleEndian.Uint32(src))
	case float32:
		bits := binary.LittleEndian.Uint32(src)
		return T(math.Float32frombits(bits))
	case int64:
		return T(int64(binary.LittleEndian.Uint64(src)))
	case uint64:
		return T(binary.LittleEndian.Uint64(src))
	case float64:
		bits := binary.LittleEndian.Uint64(src)
		return T(math.Float64frombits(bits))
	default:
		panic(fmt.Sprintf("wire: unsupported fixed type %T", zero))
	}
}

// ElemSize returns sizeof(T) for one of the Fixed primitive types.
func ElemSize[T Fixed]() int {
	var zero T
	return sizeOf(zero)
}

// DecodeFixedSlice decodes rows little-endian T values packed back to back
// in buf (len(buf) must be rows*ElemSize[T]()).
func DecodeFixedSlice[T Fixed](buf []byte, rows int) []T {
	var zero T
	size := sizeOf(zero)
	out := make([]T, rows)
	for i := 0; i < rows; i++ {
		out[i] = decodeFixed(zero, buf[i*size:(i+1)*size])
	}
	return out
}

// EncodeFixedSlice packs vals as back-to-back little-endian bytes.
func EncodeFixedSlice[T Fixed](vals []T) []byte {
	if len(vals) == 0 {
		return nil
	}
	size := sizeOf(vals[0])
	buf := make([]byte, len(vals)*size)
	for i, v := range vals {
		encodeFixed(buf[i*size:(i+1)*size], v)
	}
	return buf
}

// ReadVarint reads an unsigned LEB128 varint (7 bits per byte, lowest
// group first, continuation bit 0x80), in the style of
// encoding/binary's Uvarint helpers.
func ReadVarint(r io.Reader) (uint64, error) {
	var result uint64
	var shift uint
	var b [1]byte
	for i := 0; i < MaxVarintBytes; i++ {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, fmt.Errorf("wire: read varint: %w", err)
		}
		result |= uint64(b[0]&0x7f) << shift
		if b[0]&0x80 == 0 {
			return result, nil
		}
		shift += 7
	}
	return 0, fmt.Errorf("wire: read varint: exceeds %d bytes", MaxVarintBytes)
}

// WriteVarint writes v as an unsigned LEB128 varint.
func WriteVarint(w io.Writer, v uint64) error {
	var buf [MaxVarintBytes]byte
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		buf[n] = b
		n++
		if v == 0 {
			break
		}
	}
	if _, err := w.Write(buf[:n]); err != nil {
		return fmt.Errorf("wire: write varint: %w", err)
	}
	return nil
}

// ReadString reads a varint length prefix followed by that many raw bytes.
func ReadString(r io.Reader) (string, error) {
	n, err := ReadVarint(r)
	if err != nil {
		return "", fmt.Errorf("wire: read string length: %w", err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("wire: read string body: %w", err)
	}
	return string(buf), nil
}

// WriteString writes a varint length prefix followed by the string's bytes.
func WriteString(w io.Writer, s string) error {
	if err := WriteVarint(w, uint64(len(s))); err != nil {
		return fmt.Errorf("wire: write string length: %w", err)
	}
	if _, err := w.Write([]byte(s)); err != nil {
		return fmt.Errorf("wire: write string body: %w", err)
	}
	return nil
}

// ReadBytes reads exactly n raw bytes from r.
func ReadBytes(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("wire: read bytes(%d): %w", n, err)
	}
	return buf, nil
}

// WriteBytes writes buf verbatim.
func WriteBytes(w io.Writer, buf []byte) error {
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("wire: write bytes(%d): %w", len(buf), err)
	}
	return nil
}
