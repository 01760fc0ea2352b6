package column

import (
	"io"
	"unsafe"

	"github.com/tomywire/tomywire/pkg/coltype"
	"github.com/tomywire/tomywire/pkg/tomyerr"
)

// Nullable pairs a nested column of T with a UInt8 null-flag column,
// mirroring clickhouse-cpp's ColumnNullable (nullable.h). Invariant:
// nested.Size() == nulls.Size() at all times.
type Nullable struct {
	typ    *coltype.Type
	nested Column
	nulls  *UInt8
}

// NewNullable constructs an empty Nullable(nested.Type()) column owning
// nested exclusively — callers must not alias nested once passed here.
func NewNullable(nested Column) *Nullable {
	return &Nullable{
		typ:    coltype.CreateNullable(nested.Type()),
		nested: nested,
		nulls:  NewUInt8(),
	}
}

func (c *Nullable) Type() *coltype.Type { return c.typ }
func (c *Nullable) Size() int           { return c.nulls.Size() }

// Nested returns the wrapped column.
func (c *Nullable) Nested() Column { return c.nested }

// IsNull reports whether row n is null.
func (c *Nullable) IsNull(n int) bool { return c.nulls.At(n) != 0 }

// SetNull marks row n null or not, in place. This is the core-level
// escape hatch the original never exposed (nullable.h's AppendAddr
// leaves "insert null" as a TODO) — Go has no implicit
// default-constructed nested value the way C++ does, so callers that
// want a null row append a placeholder to nested and flip the flag here.
func (c *Nullable) SetNull(n int, isNull bool) {
	v := uint8(0)
	if isNull {
		v = 1
	}
	c.nulls.values[n] = v
}

// AppendNonNull records that the row just appended to Nested() (via its
// own typed AppendValue) is not null. Callers must append to Nested()
// first, then call AppendNonNull, to keep nested.Size() == nulls.Size().
// There is no AppendNull: the core has no typed default value to hand
// Nested() for the row, matching nullable.h's own unresolved TODO; a
// caller that wants a null row appends its own placeholder value to
// Nested() and then calls SetNull(n, true) afterward.
func (c *Nullable) AppendNonNull() { c.nulls.AppendValue(0) }

func (c *Nullable) Append(other Column) {
	o, ok := other.(*Nullable)
	if !ok || !o.typ.Equal(c.typ) {
		return
	}
	c.nested.Append(o.nested)
	c.nulls.Append(o.nulls)
}

// Load reads nulls first (rows bytes), then the nested column's payload.
func (c *Nullable) Load(r io.Reader, rows int) error {
	if err := c.nulls.Load(r, rows); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Nullable.Load nulls", err)
	}
	if err := c.nested.Load(r, rows); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Nullable.Load nested", err)
	}
	return nil
}

func (c *Nullable) Save(w io.Writer) error {
	if err := c.nulls.Save(w); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Nullable.Save nulls", err)
	}
	if err := c.nested.Save(w); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "Nullable.Save nested", err)
	}
	return nil
}

func (c *Nullable) Slice(begin, length int) Column {
	return &Nullable{
		typ:    c.typ,
		nested: c.nested.Slice(begin, length),
		nulls:  c.nulls.Slice(begin, length).(*UInt8),
	}
}

func (c *Nullable) Clear() {
	c.nested.Clear()
	c.nulls.Clear()
}

func (c *Nullable) Reserve(rows int) {
	c.nested.Reserve(rows)
	c.nulls.Reserve(rows)
}

// Data forwards to the nested column; the null flag is read via IsNull,
// not through Data.
func (c *Nullable) Data(n int) unsafe.Pointer {
	a, ok := c.nested.(Addressable)
	if !ok {
		panic(tomyerr.New(tomyerr.OutOfRange, "Nullable.Data: nested column is not addressable"))
	}
	return a.Data(n)
}
