package column

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/tomywire/tomywire/pkg/coltype"
	"github.com/tomywire/tomywire/pkg/tomyerr"
)

// Enum8 delegates to an Int8 column; Type carries the name<->value map.
type Enum8 struct {
	typ  *coltype.Type
	data *Int8
}

// NewEnum8 constructs an empty Enum8 column for the given enum Type
// (Type.Code() must be coltype.Enum8).
func NewEnum8(typ *coltype.Type) *Enum8 {
	return &Enum8{typ: typ, data: NewInt8()}
}

func (c *Enum8) Type() *coltype.Type { return c.typ }
func (c *Enum8) Size() int           { return c.data.Size() }

// AppendValue appends v, optionally verifying it is a declared value.
func (c *Enum8) AppendValue(v int8, check bool) error {
	if check {
		if _, ok := c.typ.NameByValue(int64(v)); !ok {
			return tomyerr.New(tomyerr.UnknownEnumValue, fmt.Sprintf("Enum8 value %d not declared", v))
		}
	}
	c.data.AppendValue(v)
	return nil
}

// AppendName looks up value by declared name and appends it.
func (c *Enum8) AppendName(name string) error {
	v, ok := c.typ.ValueByName(name)
	if !ok {
		return tomyerr.New(tomyerr.UnknownEnumName, fmt.Sprintf("Enum8 name %q not declared", name))
	}
	c.data.AppendValue(int8(v))
	return nil
}

// NameAt reverse-looks-up the declared name for row n's stored value.
func (c *Enum8) NameAt(n int) (string, error) {
	v := c.data.At(n)
	name, ok := c.typ.NameByValue(int64(v))
	if !ok {
		return "", tomyerr.New(tomyerr.UnknownEnumValue, fmt.Sprintf("Enum8 value %d not declared", v))
	}
	return name, nil
}

// At returns the raw stored integer at row n.
func (c *Enum8) At(n int) int8 { return c.data.At(n) }

func (c *Enum8) Append(other Column) {
	o, ok := other.(*Enum8)
	if !ok || !o.typ.Equal(c.typ) {
		return
	}
	c.data.Append(o.data)
}

func (c *Enum8) Load(r io.Reader, rows int) error { return c.data.Load(r, rows) }
func (c *Enum8) Save(w io.Writer) error           { return c.data.Save(w) }

func (c *Enum8) Slice(begin, length int) Column {
	sliced := c.data.Slice(begin, length).(*Int8)
	return &Enum8{typ: c.typ, data: sliced}
}

func (c *Enum8) Clear()          { c.data.Clear() }
func (c *Enum8) Reserve(rows int) { c.data.Reserve(rows) }
func (c *Enum8) Data(n int) unsafe.Pointer { return c.data.Data(n) }

// Enum16 delegates to an Int16 column; Type carries the name<->value map.
type Enum16 struct {
	typ  *coltype.Type
	data *Int16
}

// NewEnum16 constructs an empty Enum16 column for the given enum Type
// (Type.Code() must be coltype.Enum16).
func NewEnum16(typ *coltype.Type) *Enum16 {
	return &Enum16{typ: typ, data: NewInt16()}
}

func (c *Enum16) Type() *coltype.Type { return c.typ }
func (c *Enum16) Size() int           { return c.data.Size() }

func (c *Enum16) AppendValue(v int16, check bool) error {
	if check {
		if _, ok := c.typ.NameByValue(int64(v)); !ok {
			return tomyerr.New(tomyerr.UnknownEnumValue, fmt.Sprintf("Enum16 value %d not declared", v))
		}
	}
	c.data.AppendValue(v)
	return nil
}

func (c *Enum16) AppendName(name string) error {
	v, ok := c.typ.ValueByName(name)
	if !ok {
		return tomyerr.New(tomyerr.UnknownEnumName, fmt.Sprintf("Enum16 name %q not declared", name))
	}
	c.data.AppendValue(int16(v))
	return nil
}

func (c *Enum16) NameAt(n int) (string, error) {
	v := c.data.At(n)
	name, ok := c.typ.NameByValue(int64(v))
	if !ok {
		return "", tomyerr.New(tomyerr.UnknownEnumValue, fmt.Sprintf("Enum16 value %d not declared", v))
	}
	return name, nil
}

func (c *Enum16) At(n int) int16 { return c.data.At(n) }

func (c *Enum16) Append(other Column) {
	o, ok := other.(*Enum16)
	if !ok || !o.typ.Equal(c.typ) {
		return
	}
	c.data.Append(o.data)
}

func (c *Enum16) Load(r io.Reader, rows int) error { return c.data.Load(r, rows) }
func (c *Enum16) Save(w io.Writer) error           { return c.data.Save(w) }

func (c *Enum16) Slice(begin, length int) Column {
	sliced := c.data.Slice(begin, length).(*Int16)
	return &Enum16{typ: c.typ, data: sliced}
}

func (c *Enum16) Clear()          { c.data.Clear() }
func (c *Enum16) Reserve(rows int) { c.data.Reserve(rows) }
func (c *Enum16) Data(n int) unsafe.Pointer { return c.data.Data(n) }
