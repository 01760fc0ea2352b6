package coltype

import "testing"

func TestScalarNameRoundTrip(t *testing.T) {
	for code := range scalarNames {
		ty := CreateScalar(code)
		parsed, err := Parse(ty.Name())
		if err != nil {
			t.Fatalf("Parse(%q): %v", ty.Name(), err)
		}
		if !parsed.Equal(ty) {
			t.Errorf("round trip mismatch: %q parsed as %q", ty.Name(), parsed.Name())
		}
	}
}

func TestCompositeNameRoundTrip(t *testing.T) {
	tests := []*Type{
		CreateFixedString(4),
		CreateArray(CreateScalar(UInt64)),
		CreateArray(CreateNullable(CreateScalar(UInt64))),
		CreateNullable(CreateArray(CreateScalar(Int32))),
		CreateTuple(CreateScalar(UInt64), CreateScalar(String), CreateScalar(Float64)),
		CreateEnum8([]EnumItem{{"One", 1}, {"Two", 2}}),
		CreateEnum16([]EnumItem{{"A", -100}, {"B", 0}, {"C", 32767}}),
	}
	for _, ty := range tests {
		parsed, err := Parse(ty.Name())
		if err != nil {
			t.Fatalf("Parse(%q): %v", ty.Name(), err)
		}
		if !parsed.Equal(ty) {
			t.Errorf("round trip mismatch: %q parsed as %q", ty.Name(), parsed.Name())
		}
	}
}

func TestArrayName(t *testing.T) {
	ty := CreateArray(CreateNullable(CreateScalar(UInt64)))
	if got, want := ty.Name(), "Array(Nullable(UInt64))"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestFixedStringName(t *testing.T) {
	if got, want := CreateFixedString(4).Name(), "FixedString(4)"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestEnumNameOrderPreserved(t *testing.T) {
	ty := CreateEnum8([]EnumItem{{"Two", 2}, {"One", 1}})
	if got, want := ty.Name(), "Enum8('Two'=2,'One'=1)"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestEnumNameEscaping(t *testing.T) {
	ty := CreateEnum8([]EnumItem{{`a'b\c`, 1}})
	name := ty.Name()
	if want := `Enum8('a\'b\\c'=1)`; name != want {
		t.Fatalf("Name() = %q, want %q", name, want)
	}
	parsed, err := Parse(name)
	if err != nil {
		t.Fatalf("Parse(%q): %v", name, err)
	}
	if !parsed.Equal(ty) {
		t.Errorf("round trip mismatch: %q parsed as %q", name, parsed.Name())
	}
}

func TestEqualityStructural(t *testing.T) {
	a := CreateArray(CreateScalar(UInt64))
	b := CreateArray(CreateScalar(UInt64))
	if a == b {
		t.Fatal("expected distinct pointers")
	}
	if !a.Equal(b) {
		t.Error("expected structural equality")
	}
	c := CreateArray(CreateScalar(Int64))
	if a.Equal(c) {
		t.Error("expected inequality for differing item type")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("NotAType"); err == nil {
		t.Error("expected error for unknown type name")
	}
	if _, err := Parse("Array(UInt64"); err == nil {
		t.Error("expected error for unterminated Array(")
	}
}

func TestEnumLookup(t *testing.T) {
	ty := CreateEnum8([]EnumItem{{"One", 1}, {"Two", 2}})
	if v, ok := ty.ValueByName("Two"); !ok || v != 2 {
		t.Errorf("ValueByName(Two) = %d, %v", v, ok)
	}
	if n, ok := ty.NameByValue(1); !ok || n != "One" {
		t.Errorf("NameByValue(1) = %q, %v", n, ok)
	}
	if _, ok := ty.ValueByName("Three"); ok {
		t.Error("expected lookup miss for undeclared name")
	}
}

func TestEnumValueRangeValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range Enum8 value")
		}
	}()
	CreateEnum8([]EnumItem{{"Big", 200}})
}
