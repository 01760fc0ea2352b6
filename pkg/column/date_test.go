package column

import (
	"bytes"
	"testing"
)

func TestDateTruncatesToDayGranularity(t *testing.T) {
	c := NewDate()
	const oneDay = 86400
	c.AppendValue(3*oneDay + 12345) // not an exact day boundary
	if got := c.At(0); got != 3*oneDay {
		t.Fatalf("At(0) = %d, want %d", got, 3*oneDay)
	}
}

func TestDateTimePreservesExactSeconds(t *testing.T) {
	c := NewDateTime()
	c.AppendValue(1_700_000_123)
	if got := c.At(0); got != 1_700_000_123 {
		t.Fatalf("At(0) = %d, want 1700000123", got)
	}
}

func TestDateSaveLoadRoundTrip(t *testing.T) {
	c := NewDate()
	c.AppendValue(5 * 86400)
	c.AppendValue(9 * 86400)
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := NewDate()
	if err := out.Load(&buf, 2); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.At(0) != 5*86400 || out.At(1) != 9*86400 {
		t.Fatalf("round trip mismatch: %d, %d", out.At(0), out.At(1))
	}
}

func TestDateTimeSaveLoadRoundTrip(t *testing.T) {
	c := NewDateTime()
	c.AppendValue(42)
	c.AppendValue(99999)
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := NewDateTime()
	if err := out.Load(&buf, 2); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.At(0) != 42 || out.At(1) != 99999 {
		t.Fatalf("round trip mismatch: %d, %d", out.At(0), out.At(1))
	}
}
