// Package column implements the polymorphic column family: one
// concrete type per element shape, sharing a common contract (Type,
// Size, Append, Load, Save, Slice, Clear, Reserve). It generalizes two
// interface shapes from the same author's earlier project stages — a
// SerializeData-to-stream shape and a typed-variant-switch shape — into
// one.
package column

import (
	"io"
	"unsafe"

	"github.com/tomywire/tomywire/pkg/coltype"
)

// Column is the capability set every concrete variant implements. A
// downcast to a concrete type (e.g. *Numeric[uint64]) replaces the
// source's dynamic_pointer_cast<T>.
type Column interface {
	// Type returns the column's immutable element-shape descriptor.
	Type() *coltype.Type
	// Size returns the row count.
	Size() int
	// Append appends all rows of other to the end of self. other must
	// share self's Type; a mismatched append is a documented no-op for
	// every variant. Array's single-row Array.AppendRow is the one
	// append that fails loudly on a type mismatch instead.
	Append(other Column)
	// Load reads exactly rows rows from r, appending to existing
	// content. Partial progress on I/O failure is allowed; Size
	// reflects what was actually read.
	Load(r io.Reader, rows int) error
	// Save writes all current rows to w.
	Save(w io.Writer) error
	// Slice returns a new, independent column of the same Type covering
	// rows [begin, min(begin+length, Size())). Out-of-range yields an
	// empty column of the same Type.
	Slice(begin, length int) Column
	// Clear resets Size to 0 without necessarily releasing capacity.
	Clear()
	// Reserve is a capacity hint only.
	Reserve(rows int)
}

// Addressable is implemented by variants that expose row addresses for
// zero-copy consumers: scalar, FixedString, Date, DateTime, Enum8/Enum16,
// String, and (by delegation) Nullable and Array. Tuple does not
// implement it. Data(n) returns the address of row n's first byte; for
// FixedString, String and Array this is something other than a single
// primitive (see each variant's docs).
type Addressable interface {
	Data(n int) unsafe.Pointer
}

// RawView is the tag-plus-pointer pair an external zero-copy consumer
// uses to reinterpret a column's contiguous storage by primitive type.
type RawView struct {
	Code coltype.Code
	Ptr  unsafe.Pointer
}

// ViewAt returns the RawView for row n of col, or ok=false if col does
// not implement Addressable. A String column yields ok=true with a
// pointer to the row's owned byte slice, not to primitive storage.
func ViewAt(col Column, n int) (RawView, bool) {
	a, ok := col.(Addressable)
	if !ok {
		return RawView{}, false
	}
	return RawView{Code: rawCode(col.Type()), Ptr: a.Data(n)}, true
}

// rawCode picks the primitive reinterpretation code: Date/DateTime
// report their delegate's underlying integer width, and Enum8/Enum16
// report their delegate's signed integer width.
func rawCode(t *coltype.Type) coltype.Code {
	switch t.Code() {
	case coltype.Date:
		return coltype.UInt16
	case coltype.DateTime:
		return coltype.UInt32
	case coltype.Enum8:
		return coltype.Int8
	case coltype.Enum16:
		return coltype.Int16
	default:
		return t.Code()
	}
}
