package column

import (
	"io"
	"unsafe"

	"github.com/tomywire/tomywire/pkg/coltype"
	"github.com/tomywire/tomywire/pkg/tomyerr"
	"github.com/tomywire/tomywire/pkg/wire"
)

// FixedString stores size()*N bytes in one flat buffer, N bytes per row.
// Short appended values are zero-padded to N; longer ones are truncated.
// This mirrors clickhouse-cpp's ColumnFixedString, generalized from the
// teacher's one-struct-per-type layout.
type FixedString struct {
	typ  *coltype.Type
	n    int
	buf  []byte
	rows int
}

// NewFixedString constructs an empty FixedString(n) column. n must be positive.
func NewFixedString(n int) *FixedString {
	return &FixedString{typ: coltype.CreateFixedString(n), n: n}
}

func (c *FixedString) Type() *coltype.Type { return c.typ }
func (c *FixedString) Size() int           { return c.rows }

// AppendValue copies at most n bytes of s and zero-pads the remainder.
func (c *FixedString) AppendValue(s string) {
	row := make([]byte, c.n)
	copy(row, s) // copy truncates automatically at min(len(s), c.n)
	c.buf = append(c.buf, row...)
	c.rows++
}

// At returns the raw N-byte slice for row n, with no trailing-NUL trimming.
func (c *FixedString) At(n int) []byte {
	if n < 0 || n >= c.rows {
		panic(tomyerr.New(tomyerr.OutOfRange, "FixedString.At out of range"))
	}
	return c.buf[n*c.n : (n+1)*c.n]
}

func (c *FixedString) Append(other Column) {
	o, ok := other.(*FixedString)
	if !ok || o.n != c.n {
		return
	}
	c.buf = append(c.buf, o.buf...)
	c.rows += o.rows
}

func (c *FixedString) Load(r io.Reader, rows int) error {
	buf, err := wire.ReadBytes(r, rows*c.n)
	if err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "FixedString.Load", err)
	}
	c.buf = append(c.buf, buf...)
	c.rows += rows
	return nil
}

func (c *FixedString) Save(w io.Writer) error {
	if err := wire.WriteBytes(w, c.buf); err != nil {
		return tomyerr.Wrap(tomyerr.IoFailure, "FixedString.Save", err)
	}
	return nil
}

func (c *FixedString) Slice(begin, length int) Column {
	out := NewFixedString(c.n)
	if begin < 0 || begin >= c.rows || length <= 0 {
		return out
	}
	end := begin + length
	if end > c.rows {
		end = c.rows
	}
	out.buf = append(out.buf, c.buf[begin*c.n:end*c.n]...)
	out.rows = end - begin
	return out
}

func (c *FixedString) Clear() {
	c.buf = c.buf[:0]
	c.rows = 0
}

func (c *FixedString) Reserve(rows int) {
	if rows*c.n > cap(c.buf) {
		grown := make([]byte, len(c.buf), rows*c.n)
		copy(grown, c.buf)
		c.buf = grown
	}
}

// Data returns the address of row n's first byte; the zero-copy consumer
// must reinterpret it as an N-byte slice, not a single scalar.
func (c *FixedString) Data(n int) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(c.buf)), n*c.n)
}
