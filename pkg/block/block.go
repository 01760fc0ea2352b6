// Package block implements the Block container and the block/column
// wire codec: a named-column, equal-row-count frame, generalizing an
// earlier rows-plus-named-columns pairing into the shape the protocol
// exchanges.
package block

import (
	"fmt"

	"github.com/tomywire/tomywire/pkg/column"
	"github.com/tomywire/tomywire/pkg/tomyerr"
)

// Info carries the two out-of-band fields the server attaches to every
// block frame.
type Info struct {
	IsOverflows uint8
	BucketNum   int32
}

// DefaultInfo is the value every new or cleared Block carries.
func DefaultInfo() Info { return Info{IsOverflows: 0, BucketNum: -1} }

type namedColumn struct {
	name string
	col  column.Column
}

// Block is an ordered collection of (name, Column) pairs with equal row
// counts, mirroring clickhouse-cpp's Block (block.h/.cpp).
type Block struct {
	info    Info
	columns []namedColumn
}

// New constructs an empty Block.
func New() *Block {
	return &Block{info: DefaultInfo()}
}

// Info returns the block's out-of-band info fields.
func (b *Block) Info() Info { return b.info }

// SetInfo replaces the block's out-of-band info fields.
func (b *Block) SetInfo(info Info) { b.info = info }

// RowCount returns 0 for an empty block, else the shared row count of
// every column.
func (b *Block) RowCount() int {
	if len(b.columns) == 0 {
		return 0
	}
	return b.columns[0].col.Size()
}

// ColumnCount returns the number of columns in the block.
func (b *Block) ColumnCount() int { return len(b.columns) }

// NameOf returns the name of the column at idx.
func (b *Block) NameOf(idx int) string {
	if idx < 0 || idx >= len(b.columns) {
		panic(tomyerr.New(tomyerr.OutOfRange, fmt.Sprintf("Block.NameOf(%d) columns=%d", idx, len(b.columns))))
	}
	return b.columns[idx].name
}

// Column returns the column at idx.
func (b *Block) Column(idx int) column.Column {
	if idx < 0 || idx >= len(b.columns) {
		panic(tomyerr.New(tomyerr.OutOfRange, fmt.Sprintf("Block.Column(%d) columns=%d", idx, len(b.columns))))
	}
	return b.columns[idx].col
}

// AppendColumn appends a named column to the block. If the block already
// has columns, col's row count must match the block's current row count.
func (b *Block) AppendColumn(name string, col column.Column) error {
	if len(b.columns) > 0 && col.Size() != b.RowCount() {
		return tomyerr.New(tomyerr.InvariantViolation, fmt.Sprintf(
			"AppendColumn(%q): size %d != block row count %d", name, col.Size(), b.RowCount()))
	}
	b.columns = append(b.columns, namedColumn{name: name, col: col})
	return nil
}

// Clear resets Info to its default and clears every column in place,
// resetting each column's recorded name to "" — matching block.cpp's
// Clear(), which does `col.name = ""` for every column.
func (b *Block) Clear() {
	b.info = DefaultInfo()
	for i := range b.columns {
		b.columns[i].col.Clear()
		b.columns[i].name = ""
	}
}

// Columns returns the block's columns in index order, for iteration.
func (b *Block) Columns() []column.Column {
	out := make([]column.Column, len(b.columns))
	for i, nc := range b.columns {
		out[i] = nc.col
	}
	return out
}

// Reserve hints at the expected row count for every already-present column.
func (b *Block) Reserve(rows int) {
	for _, nc := range b.columns {
		nc.col.Reserve(rows)
	}
}
