package column

import (
	"fmt"

	"github.com/tomywire/tomywire/pkg/coltype"
)

// New constructs a fresh, empty Column for typ. The block codec calls
// this after parsing a column's type name off the wire, switching on
// the type code to pick a concrete decoder.
func New(typ *coltype.Type) (Column, error) {
	switch typ.Code() {
	case coltype.Int8:
		return NewInt8(), nil
	case coltype.Int16:
		return NewInt16(), nil
	case coltype.Int32:
		return NewInt32(), nil
	case coltype.Int64:
		return NewInt64(), nil
	case coltype.UInt8:
		return NewUInt8(), nil
	case coltype.UInt16:
		return NewUInt16(), nil
	case coltype.UInt32:
		return NewUInt32(), nil
	case coltype.UInt64:
		return NewUInt64(), nil
	case coltype.Float32:
		return NewFloat32(), nil
	case coltype.Float64:
		return NewFloat64(), nil
	case coltype.String:
		return NewString(), nil
	case coltype.FixedString:
		return NewFixedString(typ.StringSize()), nil
	case coltype.Date:
		return NewDate(), nil
	case coltype.DateTime:
		return NewDateTime(), nil
	case coltype.Enum8:
		return NewEnum8(typ), nil
	case coltype.Enum16:
		return NewEnum16(typ), nil
	case coltype.Array:
		inner, err := New(typ.Item())
		if err != nil {
			return nil, err
		}
		return NewArray(inner), nil
	case coltype.Nullable:
		inner, err := New(typ.Item())
		if err != nil {
			return nil, err
		}
		return NewNullable(inner), nil
	case coltype.Tuple:
		members := make([]Column, len(typ.TupleItems()))
		for i, item := range typ.TupleItems() {
			m, err := New(item)
			if err != nil {
				return nil, err
			}
			members[i] = m
		}
		return NewTuple(members...), nil
	default:
		return nil, fmt.Errorf("column: no column variant for type code %v", typ.Code())
	}
}
