package column

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/tomywire/tomywire/pkg/coltype"
	"github.com/tomywire/tomywire/pkg/wire"
)

// TestUInt64LargeRoundTripByteExact builds a 100000-row UInt64 column,
// round-trips it, and checks the exact little-endian wire bytes.
func TestUInt64LargeRoundTripByteExact(t *testing.T) {
	const n = 100000
	c := NewUInt64()
	vals := make([]uint64, n)
	for i := range vals {
		vals[i] = uint64(i)
	}
	c.AppendSlice(vals)

	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if buf.Len() != n*8 {
		t.Fatalf("wire length = %d, want %d", buf.Len(), n*8)
	}
	raw := buf.Bytes()
	for i := 0; i < n; i++ {
		if got := binary.LittleEndian.Uint64(raw[i*8:]); got != uint64(i) {
			t.Fatalf("wire bytes of row %d decode to %d, want %d", i, got, i)
		}
	}

	out := NewUInt64()
	if err := out.Load(&buf, n); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Size() != n {
		t.Fatalf("Size() = %d, want %d", out.Size(), n)
	}
	for i := 0; i < n; i++ {
		if out.At(i) != uint64(i) {
			t.Fatalf("At(%d) = %d, want %d", i, out.At(i), i)
		}
	}
}

func TestFixedStringPadAndTruncateWorkedExample(t *testing.T) {
	c := NewFixedString(4)
	for _, s := range []string{"id", "foo", "bar", "name", "name___"} {
		c.AppendValue(s)
	}
	cases := []struct {
		idx  int
		want string
	}{
		{0, "id\x00\x00"},
		{3, "name"},
		{4, "name"},
	}
	for _, tc := range cases {
		got := string(c.At(tc.idx))
		if got != tc.want {
			t.Fatalf("At(%d) = %q, want %q", tc.idx, got, tc.want)
		}
	}
}

func TestEnum8MixedByNameAndByValueAppends(t *testing.T) {
	typ := coltype.CreateEnum8([]coltype.EnumItem{
		{Name: "One", Value: 1},
		{Name: "Two", Value: 2},
	})
	c := NewEnum8(typ)
	if err := c.AppendValue(1, true); err != nil {
		t.Fatalf("AppendValue: %v", err)
	}
	if err := c.AppendName("Two"); err != nil {
		t.Fatalf("AppendName: %v", err)
	}
	if err := c.AppendValue(2, true); err != nil {
		t.Fatalf("AppendValue: %v", err)
	}
	if err := c.AppendName("One"); err != nil {
		t.Fatalf("AppendName: %v", err)
	}

	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := NewEnum8(typ)
	if err := out.Load(&buf, 4); err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantNames := []string{"One", "Two", "Two", "One"}
	wantValues := []int8{1, 2, 2, 1}
	for i, want := range wantNames {
		name, err := out.NameAt(i)
		if err != nil {
			t.Fatalf("NameAt(%d): %v", i, err)
		}
		if name != want {
			t.Fatalf("NameAt(%d) = %q, want %q", i, name, want)
		}
		if out.At(i) != wantValues[i] {
			t.Fatalf("At(%d) = %d, want %d", i, out.At(i), wantValues[i])
		}
	}
}

// TestTypeNameParseRoundTripsThroughWireString confirms the codec's
// practice of writing a column's type name with wire.WriteString and
// reading it back with coltype.Parse reproduces the same Type.
func TestTypeNameParseRoundTripsThroughWireString(t *testing.T) {
	typ := coltype.CreateArray(coltype.CreateNullable(coltype.CreateFixedString(8)))
	var buf bytes.Buffer
	if err := wire.WriteString(&buf, typ.Name()); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	name, err := wire.ReadString(&buf)
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	parsed, err := coltype.Parse(name)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !parsed.Equal(typ) {
		t.Fatalf("parsed type %q != original %q", parsed.Name(), typ.Name())
	}
}
