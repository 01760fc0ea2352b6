package column

import (
	"io"
	"unsafe"

	"github.com/tomywire/tomywire/pkg/coltype"
	"github.com/tomywire/tomywire/pkg/tomyerr"
	"github.com/tomywire/tomywire/pkg/wire"
)

// String is a logical sequence of variable-length owned byte strings,
// mirroring clickhouse-cpp's ColumnString.
type String struct {
	typ  *coltype.Type
	rows [][]byte
}

// NewString constructs an empty String column.
func NewString() *String {
	return &String{typ: coltype.CreateScalar(coltype.String)}
}

func (c *String) Type() *coltype.Type { return c.typ }
func (c *String) Size() int           { return len(c.rows) }

// AppendValue appends one owned copy of s.
func (c *String) AppendValue(s string) {
	c.rows = append(c.rows, []byte(s))
}

// At returns row n as a string.
func (c *String) At(n int) string {
	if n < 0 || n >= len(c.rows) {
		panic(tomyerr.New(tomyerr.OutOfRange, "String.At out of range"))
	}
	return string(c.rows[n])
}

func (c *String) Append(other Column) {
	o, ok := other.(*String)
	if !ok {
		return
	}
	for _, r := range o.rows {
		c.rows = append(c.rows, append([]byte(nil), r...))
	}
}

func (c *String) Load(r io.Reader, rows int) error {
	for i := 0; i < rows; i++ {
		s, err := wire.ReadString(r)
		if err != nil {
			return tomyerr.Wrap(tomyerr.IoFailure, "String.Load", err)
		}
		c.rows = append(c.rows, []byte(s))
	}
	return nil
}

func (c *String) Save(w io.Writer) error {
	for _, row := range c.rows {
		if err := wire.WriteString(w, string(row)); err != nil {
			return tomyerr.Wrap(tomyerr.IoFailure, "String.Save", err)
		}
	}
	return nil
}

func (c *String) Slice(begin, length int) Column {
	out := NewString()
	if begin < 0 || begin >= len(c.rows) || length <= 0 {
		return out
	}
	end := begin + length
	if end > len(c.rows) {
		end = len(c.rows)
	}
	for _, r := range c.rows[begin:end] {
		out.rows = append(out.rows, append([]byte(nil), r...))
	}
	return out
}

// Clear resets the logical length to 0 but keeps the backing slice's
// capacity.
func (c *String) Clear() { c.rows = c.rows[:0] }

func (c *String) Reserve(rows int) {
	if rows > cap(c.rows) {
		grown := make([][]byte, len(c.rows), rows)
		copy(grown, c.rows)
		c.rows = grown
	}
}

// Data returns the address of row n's owned byte slice (its logical
// element type), not a primitive — String has no contiguous primitive
// layout, so zero-copy consumers must special-case coltype.String.
func (c *String) Data(n int) unsafe.Pointer {
	return unsafe.Pointer(&c.rows[n])
}
