package column

import (
	"bytes"
	"testing"
)

func TestFixedStringPadsAndTruncates(t *testing.T) {
	c := NewFixedString(4)
	c.AppendValue("ab")
	c.AppendValue("abcdef")
	if got := c.At(0); !bytes.Equal(got, []byte{'a', 'b', 0, 0}) {
		t.Fatalf("At(0) = %v, want zero-padded", got)
	}
	if got := c.At(1); !bytes.Equal(got, []byte("abcd")) {
		t.Fatalf("At(1) = %v, want truncated to 4 bytes", got)
	}
}

func TestFixedStringSaveLoadRoundTrip(t *testing.T) {
	c := NewFixedString(3)
	c.AppendValue("xy")
	c.AppendValue("abc")
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := NewFixedString(3)
	if err := out.Load(&buf, 2); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(out.At(0), c.At(0)) || !bytes.Equal(out.At(1), c.At(1)) {
		t.Fatalf("round trip mismatch")
	}
}

func TestFixedStringTypeNameCarriesSize(t *testing.T) {
	c := NewFixedString(16)
	if c.Type().Name() != "FixedString(16)" {
		t.Fatalf("Type().Name() = %q, want FixedString(16)", c.Type().Name())
	}
}

func TestFixedStringAppendRejectsDifferentWidth(t *testing.T) {
	dst := NewFixedString(4)
	dst.AppendValue("abcd")
	src := NewFixedString(8)
	src.AppendValue("longerone")

	dst.Append(src)
	if dst.Size() != 1 {
		t.Fatalf("Size() = %d, want 1 (width mismatch must be a no-op)", dst.Size())
	}
}
