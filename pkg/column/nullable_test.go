package column

import (
	"bytes"
	"testing"
)

// TestNullableMixedFlags covers Nullable(UInt64) with mixed null flags,
// verified across a save/load round trip.
func TestNullableMixedFlags(t *testing.T) {
	c := NewNullable(NewUInt64())
	pairs := []struct {
		value  uint64
		isNull bool
	}{
		{1, false},
		{2, false},
		{3, true},
		{4, true},
	}
	for i, p := range pairs {
		c.Nested().(*UInt64).AppendValue(p.value)
		c.AppendNonNull()
		c.SetNull(i, p.isNull)
	}

	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := NewNullable(NewUInt64())
	if err := out.Load(&buf, len(pairs)); err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantNull := []bool{false, false, true, true}
	for i, want := range wantNull {
		if out.IsNull(i) != want {
			t.Fatalf("IsNull(%d) = %v, want %v", i, out.IsNull(i), want)
		}
	}
	nested := out.Nested().(*UInt64)
	if nested.At(0) != 1 || nested.At(1) != 2 {
		t.Fatalf("nested values = %d, %d, want 1, 2", nested.At(0), nested.At(1))
	}
}

func TestNullableSizeInvariant(t *testing.T) {
	c := NewNullable(NewInt32())
	c.Nested().(*Int32).AppendValue(7)
	c.AppendNonNull()
	if c.Size() != c.Nested().Size() {
		t.Fatalf("Nullable.Size() = %d, nested.Size() = %d, must match", c.Size(), c.Nested().Size())
	}
}

func TestNullableSliceKeepsNestedAndNullsInSync(t *testing.T) {
	c := NewNullable(NewUInt8())
	for i := 0; i < 4; i++ {
		c.Nested().(*UInt8).AppendValue(uint8(i))
		c.AppendNonNull()
	}
	c.SetNull(2, true)
	s := c.Slice(1, 2).(*Nullable)
	if s.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", s.Size())
	}
	if s.IsNull(0) || !s.IsNull(1) {
		t.Fatalf("IsNull pattern = %v, %v, want false, true", s.IsNull(0), s.IsNull(1))
	}
	nested := s.Nested().(*UInt8)
	if nested.Size() != 2 || nested.At(0) != 1 || nested.At(1) != 2 {
		t.Fatalf("nested slice = size %d, want size 2 holding 1, 2", nested.Size())
	}
}
