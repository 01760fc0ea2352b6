// tomybench builds synthetic blocks, round-trips each through the wire
// codec concurrently, and reports throughput and any mismatches, in the
// plain flag-configured main() style of the rest of this module's
// predecessors.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomywire/tomywire/pkg/block"
	"github.com/tomywire/tomywire/pkg/column"
)

var log = newLogger("tomybench")

func main() {
	blocks := flag.Int("blocks", 8, "number of independent blocks to generate")
	rows := flag.Int("rows", 50000, "rows per block")
	flag.Parse()

	log.Info("generating %d blocks of %d rows each", *blocks, *rows)
	start := time.Now()

	results := make([]result, *blocks)
	var g errgroup.Group
	for i := 0; i < *blocks; i++ {
		i := i
		g.Go(func() error {
			r, err := roundTripOne(i, *rows)
			results[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("round trip failed: %v", err)
	}

	elapsed := time.Since(start)
	var totalBytes int64
	var mismatches int
	for _, r := range results {
		totalBytes += r.wireBytes
		if !r.match {
			mismatches++
		}
	}

	fmt.Printf("round-tripped %d blocks (%d rows each) in %s\n", *blocks, *rows, elapsed)
	fmt.Printf("wire bytes total: %d (%.2f MB)\n", totalBytes, float64(totalBytes)/1024.0/1024.0)
	fmt.Printf("mismatches: %d\n", mismatches)
}

type result struct {
	wireBytes int64
	match     bool
}

// roundTripOne builds one Block (id UInt64, tag FixedString(8), payload
// Array(UInt32)), writes it, reads it back into a fresh Block, and
// compares every row. Each goroutine owns its own Block tree exclusively
// for the duration of the call, matching the single-threaded-per-tree
// concurrency model the codec assumes.
func roundTripOne(seed, rows int) (result, error) {
	src := build(seed, rows)

	var buf bytes.Buffer
	if err := block.Write(&buf, src); err != nil {
		return result{}, fmt.Errorf("block %d: write: %w", seed, err)
	}
	wireBytes := int64(buf.Len())

	dst := block.New()
	if err := block.Read(&buf, dst); err != nil {
		return result{}, fmt.Errorf("block %d: read: %w", seed, err)
	}

	return result{wireBytes: wireBytes, match: equal(src, dst)}, nil
}

func build(seed, rows int) *block.Block {
	rng := rand.New(rand.NewSource(int64(seed)))

	ids := column.NewUInt64()
	tags := column.NewFixedString(8)
	payload := column.NewArray(column.NewUInt32())

	for i := 0; i < rows; i++ {
		ids.AppendValue(uint64(i))
		tags.AppendValue(fmt.Sprintf("tag%04d", i%10000))

		n := rng.Intn(4) + 1
		elem := column.NewUInt32()
		for j := 0; j < n; j++ {
			elem.AppendValue(uint32(rng.Intn(1000)))
		}
		if err := payload.AppendRow(elem); err != nil {
			panic(err) // elem's type always matches payload's inner type
		}
	}

	b := block.New()
	_ = b.AppendColumn("id", ids)
	_ = b.AppendColumn("tag", tags)
	_ = b.AppendColumn("payload", payload)
	return b
}

func equal(a, b *block.Block) bool {
	if a.RowCount() != b.RowCount() || a.ColumnCount() != b.ColumnCount() {
		return false
	}
	aIDs, bIDs := a.Column(0).(*column.UInt64), b.Column(0).(*column.UInt64)
	for i := 0; i < aIDs.Size(); i++ {
		if aIDs.At(i) != bIDs.At(i) {
			return false
		}
	}
	aTags, bTags := a.Column(1).(*column.FixedString), b.Column(1).(*column.FixedString)
	for i := 0; i < aTags.Size(); i++ {
		if !bytes.Equal(aTags.At(i), bTags.At(i)) {
			return false
		}
	}
	aPay, bPay := a.Column(2).(*column.Array), b.Column(2).(*column.Array)
	for i := 0; i < aPay.Size(); i++ {
		if aPay.SizeOf(i) != bPay.SizeOf(i) {
			return false
		}
	}
	aElems, bElems := aPay.Inner().(*column.UInt32), bPay.Inner().(*column.UInt32)
	if aElems.Size() != bElems.Size() {
		return false
	}
	for i := 0; i < aElems.Size(); i++ {
		if aElems.At(i) != bElems.At(i) {
			return false
		}
	}
	return true
}
