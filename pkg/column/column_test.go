package column

import (
	"testing"

	"github.com/tomywire/tomywire/pkg/coltype"
)

func TestViewAtScalar(t *testing.T) {
	c := NewInt32()
	c.AppendSlice([]int32{10, 20, 30})
	view, ok := ViewAt(c, 1)
	if !ok {
		t.Fatal("ViewAt: expected ok=true for a Numeric column")
	}
	if view.Code != coltype.Int32 {
		t.Fatalf("view.Code = %v, want Int32", view.Code)
	}
	if got := *(*int32)(view.Ptr); got != 20 {
		t.Fatalf("dereferenced view = %d, want 20", got)
	}
}

func TestViewAtDateReportsUnderlyingWidth(t *testing.T) {
	c := NewDate()
	c.AppendValue(86400)
	view, ok := ViewAt(c, 0)
	if !ok {
		t.Fatal("ViewAt: expected ok=true for Date")
	}
	if view.Code != coltype.UInt16 {
		t.Fatalf("view.Code = %v, want UInt16", view.Code)
	}
	if got := *(*uint16)(view.Ptr); got != 1 {
		t.Fatalf("dereferenced view = %d, want 1 (epoch day)", got)
	}
}

func TestViewAtFalseForNonAddressable(t *testing.T) {
	c := NewTuple(NewInt8())
	_, ok := ViewAt(c, 0)
	if ok {
		t.Fatal("ViewAt: expected ok=false for Tuple, which is not Addressable")
	}
}

func TestAddressableArrayDelegatesToInner(t *testing.T) {
	arr := NewArray(NewUInt32())
	elem := NewUInt32()
	elem.AppendSlice([]uint32{5, 6, 7})
	if err := arr.AppendRow(elem); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
	ptr := arr.Data(0)
	if ptr == nil {
		t.Fatal("Array.Data returned a nil pointer")
	}
	if got := *(*uint32)(ptr); got != 5 {
		t.Fatalf("dereferenced Array.Data(0) = %d, want 5", got)
	}
}
