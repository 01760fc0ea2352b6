package column

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/tomywire/tomywire/pkg/coltype"
	"github.com/tomywire/tomywire/pkg/tomyerr"
)

// Array owns an inner column of T and a UInt64 offsets column, where
// offsets[i] is the prefix-summed count of all inner elements through
// row i inclusive, mirroring clickhouse-cpp's ColumnArray (array.h/.cpp).
type Array struct {
	typ     *coltype.Type
	inner   Column
	offsets *UInt64
}

// NewArray constructs an empty Array(inner.Type()) column owning inner
// exclusively — callers must not alias inner once passed here.
func NewArray(inner Column) *Array {
	return &Array{
		typ:     coltype.CreateArray(inner.Type()),
		inner:   inner,
		offsets: NewUInt64(),
	}
}

func (c *Array) Type() *coltype.Type { return c.typ }
func (c *Array) Size() int           { return c.offsets.Size() }

// Inner returns the wrapped element column.
func (c *Array) Inner() Column { return c.inner }

// OffsetOf returns the count of inner elements strictly before row n.
func (c *Array) OffsetOf(n int) uint64 {
	if n == 0 {
		return 0
	}
	return c.offsets.At(n - 1)
}

// SizeOf returns row n's element count.
func (c *Array) SizeOf(n int) uint64 {
	if n == 0 {
		return c.offsets.At(0)
	}
	return c.offsets.At(n) - c.offsets.At(n-1)
}

// GetAsColumn returns row n's elements as an independent column slice.
func (c *Array) GetAsColumn(n int) Column {
	return c.inner.Slice(int(c.OffsetOf(n)), int(c.SizeOf(n)))
}

// Data returns the address of the first inner element of row n; use
// SizeOf(n) to learn how many elements follow contiguously.
func (c *Array) Data(n int) unsafe.Pointer {
	a, ok := c.inner.(Addressable)
	if !ok {
		panic(tomyerr.New(tomyerr.OutOfRange, "Array.Data: inner column is not addressable"))
	}
	return a.Data(int(c.OffsetOf(n)))
}

// AppendRow appends a whole sub-column as one new row. It fails loudly
// on a type mismatch, unlike the silent no-op every other variant's
// Append uses, grounded in array.cpp's AppendAsColumn throwing on type
// mismatch.
func (c *Array) AppendRow(a Column) error {
	if !a.Type().Equal(c.inner.Type()) {
		return tomyerr.New(tomyerr.TypeMismatch, fmt.Sprintf(
			"can't append column of type %s to array of %s", a.Type().Name(), c.inner.Type().Name()))
	}
	var newOffset uint64
	if c.offsets.Size() == 0 {
		newOffset = uint64(a.Size())
	} else {
		newOffset = c.offsets.At(c.offsets.Size()-1) + uint64(a.Size())
	}
	c.offsets.AppendValue(newOffset)
	c.inner.Append(a)
	return nil
}

// Append appends each row of other (an *Array of the same element type)
// as its own AppendRow call, matching array.cpp's Append.
func (c *Array) Append(other Column) {
	o, ok := other.(*Array)
	if !ok || !o.inner.Type().Equal(c.inner.Type()) {
		return
	}
	for i := 0; i < o.Size(); i++ {
		_ = c.AppendRow(o.GetAsColumn(i))
	}
}

// Load reads rows offsets (relative to this batch, zero-based), then
// reads that many inner elements, then rebases the newly read offsets
// by the last previously loaded offset so that GetAsColumn keeps
// working across repeated loads into one reused column, matching
// array.cpp's Load.
func (c *Array) Load(r io.Reader, rows int) error {
	oldRows := c.offsets.Size()
	if err := c.offsets.Load(r, rows); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Array.Load offsets", err)
	}
	newRows := c.offsets.Size()
	if newRows == oldRows {
		return nil // rows == 0
	}
	loadCount := c.offsets.At(newRows - 1)
	if err := c.inner.Load(r, int(loadCount)); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Array.Load inner", err)
	}
	if oldRows > 0 {
		adjust := c.offsets.At(oldRows - 1)
		for i := oldRows; i < newRows; i++ {
			c.offsets.values[i] += adjust
		}
	}
	return nil
}

func (c *Array) Save(w io.Writer) error {
	if err := c.offsets.Save(w); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Array.Save offsets", err)
	}
	if err := c.inner.Save(w); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Array.Save inner", err)
	}
	return nil
}

// Slice intentionally returns an empty Array of the same type: the
// source (array.h) never implements a functional slice either
// ("Slice(size_t, size_t) override { return ColumnRef(); }"); consumers
// slice rows through GetAsColumn instead.
func (c *Array) Slice(begin, length int) Column {
	return NewArray(c.inner.Slice(0, 0))
}

func (c *Array) Clear() {
	c.offsets.Clear()
	c.inner.Clear()
}

func (c *Array) Reserve(rows int) {
	const assumedElementsPerRow = 2
	c.offsets.Reserve(rows)
	c.inner.Reserve(rows * assumedElementsPerRow)
}
