package column

import (
	"fmt"
	"io"

	"github.com/tomywire/tomywire/pkg/coltype"
	"github.com/tomywire/tomywire/pkg/tomyerr"
)

// Tuple is a fixed-arity row of heterogeneously-typed member columns
// sharing one row index, grounded in
// original_source/clickhouse/columns/tuple.h's ColumnTuple.
type Tuple struct {
	typ     *coltype.Type
	members []Column
}

// NewTuple constructs a Tuple column from its (already equal-sized)
// member columns, in order.
func NewTuple(members ...Column) *Tuple {
	if len(members) == 0 {
		panic("column: Tuple requires at least one member")
	}
	types := make([]*coltype.Type, len(members))
	for i, m := range members {
		types[i] = m.Type()
	}
	return &Tuple{typ: coltype.CreateTuple(types...), members: members}
}

func (c *Tuple) Type() *coltype.Type { return c.typ }

// Size returns the first member's row count; tuple.h never serializes
// a separate row count for the tuple itself, so all members are assumed
// to share it by construction.
func (c *Tuple) Size() int {
	if len(c.members) == 0 {
		return 0
	}
	return c.members[0].Size()
}

// Member returns the nth member column.
func (c *Tuple) Member(n int) Column { return c.members[n] }

// MemberCount returns the number of tuple members.
func (c *Tuple) MemberCount() int { return len(c.members) }

// Append is a no-op, matching ColumnTuple::Append's empty override in
// tuple.h — the original never implements cross-tuple append either.
func (c *Tuple) Append(other Column) {}

func (c *Tuple) Load(r io.Reader, rows int) error {
	for i, m := range c.members {
		if err := m.Load(r, rows); err != nil {
			return tomyerr.Wrap(tomyerr.IoFailure, fmt.Sprintf("Tuple.Load member %d", i), err)
		}
	}
	return nil
}

func (c *Tuple) Save(w io.Writer) error {
	for i, m := range c.members {
		if err := m.Save(w); err != nil {
			return tomyerr.Wrap(tomyerr.IoFailure, fmt.Sprintf("Tuple.Save member %d", i), err)
		}
	}
	return nil
}

// Slice intentionally returns an empty Tuple, for the same reason
// Array's does: tuple.h's Slice override returns an empty ColumnRef too.
func (c *Tuple) Slice(begin, length int) Column {
	empties := make([]Column, len(c.members))
	for i, m := range c.members {
		empties[i] = m.Slice(0, 0)
	}
	return &Tuple{typ: c.typ, members: empties}
}

func (c *Tuple) Clear() {
	for _, m := range c.members {
		m.Clear()
	}
}

func (c *Tuple) Reserve(rows int) {
	for _, m := range c.members {
		m.Reserve(rows)
	}
}
