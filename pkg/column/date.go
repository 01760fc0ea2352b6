package column

import (
	"io"
	"unsafe"

	"github.com/tomywire/tomywire/pkg/coltype"
	"github.com/tomywire/tomywire/pkg/tomyerr"
)

// Date delegates to a UInt16 column storing epoch_day = epoch_seconds/86400.
type Date struct {
	typ  *coltype.Type
	data *UInt16
}

// NewDate constructs an empty Date column.
func NewDate() *Date {
	return &Date{typ: coltype.CreateDate(), data: NewUInt16()}
}

func (c *Date) Type() *coltype.Type { return c.typ }
func (c *Date) Size() int           { return c.data.Size() }

// AppendValue appends one value given as epoch seconds; it is stored as
// epoch_day = seconds/86400 and reconstituted at seconds granularity on read.
func (c *Date) AppendValue(seconds int64) {
	c.data.AppendValue(uint16(seconds / 86400))
}

// At returns row n reconstituted as epoch seconds (day granularity).
func (c *Date) At(n int) int64 {
	if n < 0 || n >= c.data.Size() {
		panic(tomyerr.New(tomyerr.OutOfRange, "Date.At out of range"))
	}
	return int64(c.data.At(n)) * 86400
}

func (c *Date) Append(other Column) {
	o, ok := other.(*Date)
	if !ok {
		return
	}
	c.data.Append(o.data)
}

func (c *Date) Load(r io.Reader, rows int) error { return c.data.Load(r, rows) }
func (c *Date) Save(w io.Writer) error           { return c.data.Save(w) }

func (c *Date) Slice(begin, length int) Column {
	sliced := c.data.Slice(begin, length).(*UInt16)
	return &Date{typ: c.typ, data: sliced}
}

func (c *Date) Clear()          { c.data.Clear() }
func (c *Date) Reserve(rows int) { c.data.Reserve(rows) }

// Data exposes the underlying UInt16 storage, not an array of seconds:
// the zero-copy consumer must reinterpret it as uint16.
func (c *Date) Data(n int) unsafe.Pointer { return c.data.Data(n) }

// DateTime delegates to a UInt32 column storing epoch seconds directly.
type DateTime struct {
	typ  *coltype.Type
	data *UInt32
}

// NewDateTime constructs an empty DateTime column.
func NewDateTime() *DateTime {
	return &DateTime{typ: coltype.CreateDateTime(), data: NewUInt32()}
}

func (c *DateTime) Type() *coltype.Type { return c.typ }
func (c *DateTime) Size() int           { return c.data.Size() }

// AppendValue appends one value given as epoch seconds.
func (c *DateTime) AppendValue(seconds int64) {
	c.data.AppendValue(uint32(seconds))
}

// At returns row n as epoch seconds.
func (c *DateTime) At(n int) int64 {
	if n < 0 || n >= c.data.Size() {
		panic(tomyerr.New(tomyerr.OutOfRange, "DateTime.At out of range"))
	}
	return int64(c.data.At(n))
}

func (c *DateTime) Append(other Column) {
	o, ok := other.(*DateTime)
	if !ok {
		return
	}
	c.data.Append(o.data)
}

func (c *DateTime) Load(r io.Reader, rows int) error { return c.data.Load(r, rows) }
func (c *DateTime) Save(w io.Writer) error           { return c.data.Save(w) }

func (c *DateTime) Slice(begin, length int) Column {
	sliced := c.data.Slice(begin, length).(*UInt32)
	return &DateTime{typ: c.typ, data: sliced}
}

func (c *DateTime) Clear()          { c.data.Clear() }
func (c *DateTime) Reserve(rows int) { c.data.Reserve(rows) }

// Data exposes the underlying UInt32 storage, not an array of seconds:
// the zero-copy consumer must reinterpret it as uint32.
func (c *DateTime) Data(n int) unsafe.Pointer { return c.data.Data(n) }
