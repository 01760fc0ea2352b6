package column

import (
	"bytes"
	"testing"
)

func TestTupleSaveLoadRoundTrip(t *testing.T) {
	tup := NewTuple(NewInt32(), NewString())
	tup.Member(0).(*Int32).AppendValue(7)
	tup.Member(1).(*String).AppendValue("seven")
	tup.Member(0).(*Int32).AppendValue(9)
	tup.Member(1).(*String).AppendValue("nine")

	var buf bytes.Buffer
	if err := tup.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out := NewTuple(NewInt32(), NewString())
	if err := out.Load(&buf, 2); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", out.Size())
	}
	if out.Member(0).(*Int32).At(1) != 9 {
		t.Fatalf("member 0 at 1 = %d, want 9", out.Member(0).(*Int32).At(1))
	}
	if out.Member(1).(*String).At(0) != "seven" {
		t.Fatalf("member 1 at 0 = %q, want seven", out.Member(1).(*String).At(0))
	}
}

func TestTupleTypeNameListsMembersInOrder(t *testing.T) {
	tup := NewTuple(NewInt8(), NewFloat64())
	if got := tup.Type().Name(); got != "Tuple(Int8, Float64)" {
		t.Fatalf("Type().Name() = %q, want Tuple(Int8, Float64)", got)
	}
}

func TestTupleSliceReturnsEmpty(t *testing.T) {
	tup := NewTuple(NewInt8())
	tup.Member(0).(*Int8).AppendValue(1)
	s := tup.Slice(0, 1).(*Tuple)
	if s.Size() != 0 {
		t.Fatalf("Tuple.Slice must return an empty column, got size %d", s.Size())
	}
}
