// Package coltype implements the immutable column-type descriptors
// (coltype.Type) that describe a column's element shape and its
// canonical server-syntax spelling, generalizing a single-byte
// ColumnType tag from an earlier project stage into the recursively
// composable type system the codec needs.
package coltype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomywire/tomywire/pkg/tomyerr"
)

// Code is the closed tag set a Type can carry.
type Code int

const (
	Int8 Code = iota
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
	String
	FixedString
	Date
	DateTime
	Array
	Nullable
	Enum8
	Enum16
	Tuple // supplemented: original_source/clickhouse/columns/tuple.h
)

var scalarNames = map[Code]string{
	Int8:     "Int8",
	Int16:    "Int16",
	Int32:    "Int32",
	Int64:    "Int64",
	UInt8:    "UInt8",
	UInt16:   "UInt16",
	UInt32:   "UInt32",
	UInt64:   "UInt64",
	Float32:  "Float32",
	Float64:  "Float64",
	String:   "String",
	Date:     "Date",
	DateTime: "DateTime",
}

// EnumItem is one (name, value) pair of an Enum8/Enum16 declaration.
type EnumItem struct {
	Name  string
	Value int64
}

// Type is an immutable descriptor of a column's element shape. Two Types
// are equal exactly when their canonical Name()s match.
type Type struct {
	code       Code
	stringSize int        // FixedString
	item       *Type      // Array, Nullable
	enumItems  []EnumItem // Enum8, Enum16, declaration order preserved
	tupleItems []*Type    // Tuple
}

// Code returns the type's tag.
func (t *Type) Code() Code { return t.code }

// StringSize returns the fixed byte width of a FixedString type.
func (t *Type) StringSize() int { return t.stringSize }

// Item returns the element type of an Array or Nullable type.
func (t *Type) Item() *Type { return t.item }

// EnumItems returns the declared (name, value) pairs of an Enum8/Enum16 type.
func (t *Type) EnumItems() []EnumItem { return t.enumItems }

// TupleItems returns the member types of a Tuple type, in order.
func (t *Type) TupleItems() []*Type { return t.tupleItems }

// CreateScalar constructs a Type for one of the simple scalar codes.
func CreateScalar(code Code) *Type {
	if _, ok := scalarNames[code]; !ok {
		panic(fmt.Sprintf("coltype: %v is not a scalar code", code))
	}
	return &Type{code: code}
}

// CreateFixedString constructs a FixedString(n) type. n must be positive.
func CreateFixedString(n int) *Type {
	if n < 1 {
		panic("coltype: FixedString size must be positive")
	}
	return &Type{code: FixedString, stringSize: n}
}

// CreateDate constructs the Date type.
func CreateDate() *Type { return &Type{code: Date} }

// CreateDateTime constructs the DateTime type.
func CreateDateTime() *Type { return &Type{code: DateTime} }

// CreateArray constructs an Array(item) type.
func CreateArray(item *Type) *Type { return &Type{code: Array, item: item} }

// CreateNullable constructs a Nullable(item) type.
func CreateNullable(item *Type) *Type { return &Type{code: Nullable, item: item} }

// CreateTuple constructs a Tuple(items...) type. items must be non-empty.
func CreateTuple(items ...*Type) *Type {
	if len(items) == 0 {
		panic("coltype: Tuple requires at least one member type")
	}
	return &Type{code: Tuple, tupleItems: items}
}

// CreateEnum8 constructs an Enum8 type from a non-empty, name-unique list
// of (name, value) pairs whose values fit int8.
func CreateEnum8(items []EnumItem) *Type {
	mustValidEnum(items, -128, 127)
	return &Type{code: Enum8, enumItems: append([]EnumItem(nil), items...)}
}

// CreateEnum16 constructs an Enum16 type from a non-empty, name-unique list
// of (name, value) pairs whose values fit int16.
func CreateEnum16(items []EnumItem) *Type {
	mustValidEnum(items, -32768, 32767)
	return &Type{code: Enum16, enumItems: append([]EnumItem(nil), items...)}
}

func mustValidEnum(items []EnumItem, lo, hi int64) {
	if len(items) == 0 {
		panic("coltype: enum requires at least one item")
	}
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.Name]; dup {
			panic(fmt.Sprintf("coltype: duplicate enum name %q", it.Name))
		}
		seen[it.Name] = struct{}{}
		if it.Value < lo || it.Value > hi {
			panic(fmt.Sprintf("coltype: enum value %d out of range [%d,%d]", it.Value, lo, hi))
		}
	}
}

// ValueByName resolves an enum item's value from its declared name.
func (t *Type) ValueByName(name string) (int64, bool) {
	for _, it := range t.enumItems {
		if it.Name == name {
			return it.Value, true
		}
	}
	return 0, false
}

// NameByValue resolves an enum item's name from its declared value.
func (t *Type) NameByValue(v int64) (string, bool) {
	for _, it := range t.enumItems {
		if it.Value == v {
			return it.Name, true
		}
	}
	return "", false
}

// Name returns the canonical server-syntax spelling of t.
func (t *Type) Name() string {
	switch t.code {
	case FixedString:
		return fmt.Sprintf("FixedString(%d)", t.stringSize)
	case Array:
		return fmt.Sprintf("Array(%s)", t.item.Name())
	case Nullable:
		return fmt.Sprintf("Nullable(%s)", t.item.Name())
	case Tuple:
		parts := make([]string, len(t.tupleItems))
		for i, it := range t.tupleItems {
			parts[i] = it.Name()
		}
		return fmt.Sprintf("Tuple(%s)", strings.Join(parts, ", "))
	case Enum8:
		return "Enum8(" + enumItemsSyntax(t.enumItems) + ")"
	case Enum16:
		return "Enum16(" + enumItemsSyntax(t.enumItems) + ")"
	default:
		name, ok := scalarNames[t.code]
		if !ok {
			panic(fmt.Sprintf("coltype: unnamed code %v", t.code))
		}
		return name
	}
}

func enumItemsSyntax(items []EnumItem) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("'%s'=%d", escapeEnumName(it.Name), it.Value)
	}
	return strings.Join(parts, ",")
}

func escapeEnumName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == '\'' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Equal reports whether t and other describe the same shape: two Types
// are equal exactly when their canonical names match.
func (t *Type) Equal(other *Type) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Name() == other.Name()
}

// Parse parses a canonical type name (as produced by Name()) back into a
// Type. It must round-trip: Parse(t.Name()) == t for every constructible t.
func Parse(s string) (*Type, error) {
	p := &parser{input: s}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, parseErrf("unexpected trailing input %q", p.input[p.pos:])
	}
	return t, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) expect(b byte) error {
	p.skipSpace()
	if p.peek() != b {
		return parseErrf("expected %q at position %d in %q", b, p.pos, p.input)
	}
	p.pos++
	return nil
}

func (p *parser) parseIdent() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", parseErrf("expected identifier at position %d in %q", start, p.input)
	}
	return p.input[start:p.pos], nil
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func (p *parser) parseInt() (int64, error) {
	p.skipSpace()
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, parseErrf("expected integer at position %d in %q", start, p.input)
	}
	v, err := strconv.ParseInt(p.input[start:p.pos], 10, 64)
	if err != nil {
		return 0, parseErrf("invalid integer %q: %v", p.input[start:p.pos], err)
	}
	return v, nil
}

// parseQuoted parses a single-quoted string with backslash escaping of
// quote and backslash, as the canonical grammar requires for enum item
// names.
func (p *parser) parseQuoted() (string, error) {
	p.skipSpace()
	if err := p.expect('\''); err != nil {
		return "", err
	}
	var b strings.Builder
	for {
		if p.pos >= len(p.input) {
			return "", parseErrf("unterminated quoted string in %q", p.input)
		}
		c := p.input[p.pos]
		if c == '\\' {
			p.pos++
			if p.pos >= len(p.input) {
				return "", parseErrf("unterminated escape in %q", p.input)
			}
			b.WriteByte(p.input[p.pos])
			p.pos++
			continue
		}
		if c == '\'' {
			p.pos++
			return b.String(), nil
		}
		b.WriteByte(c)
		p.pos++
	}
}

func (p *parser) parseType() (*Type, error) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	switch name {
	case "FixedString":
		if err := p.expect('('); err != nil {
			return nil, err
		}
		n, err := p.parseInt()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return CreateFixedString(int(n)), nil
	case "Array":
		if err := p.expect('('); err != nil {
			return nil, err
		}
		item, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return CreateArray(item), nil
	case "Nullable":
		if err := p.expect('('); err != nil {
			return nil, err
		}
		item, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return CreateNullable(item), nil
	case "Tuple":
		if err := p.expect('('); err != nil {
			return nil, err
		}
		var items []*Type
		for {
			item, err := p.parseType()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			p.skipSpace()
			if p.peek() == ',' {
				p.pos++
				continue
			}
			break
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return CreateTuple(items...), nil
	case "Enum8", "Enum16":
		if err := p.expect('('); err != nil {
			return nil, err
		}
		var items []EnumItem
		for {
			itemName, err := p.parseQuoted()
			if err != nil {
				return nil, err
			}
			if err := p.expect('='); err != nil {
				return nil, err
			}
			v, err := p.parseInt()
			if err != nil {
				return nil, err
			}
			items = append(items, EnumItem{Name: itemName, Value: v})
			p.skipSpace()
			if p.peek() == ',' {
				p.pos++
				continue
			}
			break
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		if name == "Enum8" {
			return CreateEnum8(items), nil
		}
		return CreateEnum16(items), nil
	default:
		for code, n := range scalarNames {
			if n == name {
				return CreateScalar(code), nil
			}
		}
		return nil, parseErrf("unknown type name %q", name)
	}
}

func parseErrf(format string, args ...any) error {
	return tomyerr.New(tomyerr.ParseError, fmt.Sprintf(format, args...))
}
