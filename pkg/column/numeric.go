package column

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/tomywire/tomywire/pkg/coltype"
	"github.com/tomywire/tomywire/pkg/tomyerr"
	"github.com/tomywire/tomywire/pkg/wire"
)

// Number is the closed set of primitive widths a scalar column can
// store, mirroring clickhouse-cpp's ColumnVector<T> template
// instantiations (numeric.h). Go's type parameters let one
// implementation serve every width instead of one struct per width.
type Number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Numeric is a growable, contiguous column of one primitive width.
type Numeric[T Number] struct {
	typ    *coltype.Type
	values []T
}

// NewNumeric constructs an empty Numeric column carrying the scalar Type
// for code.
func NewNumeric[T Number](code coltype.Code) *Numeric[T] {
	return &Numeric[T]{typ: coltype.CreateScalar(code)}
}

// Concrete aliases for every scalar code in the closed primitive set.
type (
	Int8    = Numeric[int8]
	Int16   = Numeric[int16]
	Int32   = Numeric[int32]
	Int64   = Numeric[int64]
	UInt8   = Numeric[uint8]
	UInt16  = Numeric[uint16]
	UInt32  = Numeric[uint32]
	UInt64  = Numeric[uint64]
	Float32 = Numeric[float32]
	Float64 = Numeric[float64]
)

func NewInt8() *Int8       { return NewNumeric[int8](coltype.Int8) }
func NewInt16() *Int16     { return NewNumeric[int16](coltype.Int16) }
func NewInt32() *Int32     { return NewNumeric[int32](coltype.Int32) }
func NewInt64() *Int64     { return NewNumeric[int64](coltype.Int64) }
func NewUInt8() *UInt8     { return NewNumeric[uint8](coltype.UInt8) }
func NewUInt16() *UInt16   { return NewNumeric[uint16](coltype.UInt16) }
func NewUInt32() *UInt32   { return NewNumeric[uint32](coltype.UInt32) }
func NewUInt64() *UInt64   { return NewNumeric[uint64](coltype.UInt64) }
func NewFloat32() *Float32 { return NewNumeric[float32](coltype.Float32) }
func NewFloat64() *Float64 { return NewNumeric[float64](coltype.Float64) }

func (c *Numeric[T]) Type() *coltype.Type { return c.typ }
func (c *Numeric[T]) Size() int           { return len(c.values) }

// Values exposes the backing slice directly; callers must not retain a
// mutable alias across a later Append/Clear that could reallocate it.
func (c *Numeric[T]) Values() []T { return c.values }

// At returns the value at row n.
func (c *Numeric[T]) At(n int) T {
	if n < 0 || n >= len(c.values) {
		panic(tomyerr.New(tomyerr.OutOfRange, fmt.Sprintf("Numeric.At(%d) size=%d", n, len(c.values))))
	}
	return c.values[n]
}

// AppendValue appends one element.
func (c *Numeric[T]) AppendValue(v T) { c.values = append(c.values, v) }

// AppendSlice appends a batch of elements at once.
func (c *Numeric[T]) AppendSlice(vs []T) { c.values = append(c.values, vs...) }

func (c *Numeric[T]) Append(other Column) {
	o, ok := other.(*Numeric[T])
	if !ok || !o.typ.Equal(c.typ) {
		return // silent no-op on type mismatch, matching ColumnVector::Append
	}
	c.values = append(c.values, o.values...)
}

func (c *Numeric[T]) Load(r io.Reader, rows int) error {
	if rows == 0 {
		return nil
	}
	elemSize := wire.ElemSize[T]()
	buf, err := wire.ReadBytes(r, rows*elemSize)
	if err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Numeric.Load", err)
	}
	c.values = append(c.values, wire.DecodeFixedSlice[T](buf, rows)...)
	return nil
}

func (c *Numeric[T]) Save(w io.Writer) error {
	if err := wire.WriteBytes(w, wire.EncodeFixedSlice(c.values)); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Numeric.Save", err)
	}
	return nil
}

func (c *Numeric[T]) Slice(begin, length int) Column {
	out := NewNumeric[T](c.typ.Code())
	if begin < 0 || begin >= len(c.values) || length <= 0 {
		return out
	}
	end := begin + length
	if end > len(c.values) {
		end = len(c.values)
	}
	out.values = append(out.values, c.values[begin:end]...)
	return out
}

func (c *Numeric[T]) Clear() { c.values = c.values[:0] }

func (c *Numeric[T]) Reserve(rows int) {
	if rows > cap(c.values) {
		grown := make([]T, len(c.values), rows)
		copy(grown, c.values)
		c.values = grown
	}
}

// Data returns the address of row n's primitive value; n may equal
// Size() to obtain a past-the-end address (used by Array/Nullable
// delegation when a row has zero elements).
func (c *Numeric[T]) Data(n int) unsafe.Pointer {
	base := unsafe.Pointer(unsafe.SliceData(c.values))
	var zero T
	return unsafe.Add(base, n*int(unsafe.Sizeof(zero)))
}
