package huffman

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// FrequencyTable maps each distinct Symbol of an input to its number of
// occurrences.  Every count is at least 1.
//
// A nil FrequencyTable means "no table": the input was empty and there is
// nothing to encode.
type FrequencyTable map[Symbol]uint64

// CountFrequencies scans input once and returns its FrequencyTable.  It
// returns nil if input is empty.
func CountFrequencies(input []Symbol) FrequencyTable {
	if len(input) == 0 {
		return nil
	}
	ft := make(FrequencyTable)
	for _, symbol := range input {
		ft[symbol]++
	}
	return ft
}

// CountString is a convenience wrapper around CountFrequencies.
func CountString(str string) FrequencyTable {
	return CountFrequencies(Symbols(str))
}

// CountFrequenciesParallel splits input into at most numShards contiguous
// shards, counts each shard concurrently, and sums the partial tables.  The
// result is identical to CountFrequencies(input).
//
// The context is checked before each shard is counted; if it is cancelled,
// the context's error is returned.
func CountFrequenciesParallel(ctx context.Context, input []Symbol, numShards int) (FrequencyTable, error) {
	if len(input) == 0 {
		return nil, ctx.Err()
	}
	if numShards < 1 {
		numShards = 1
	}
	if numShards > len(input) {
		numShards = len(input)
	}

	shardLen := (len(input) + numShards - 1) / numShards
	partials := make([]FrequencyTable, numShards)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < numShards; i++ {
		i := i
		lo := i * shardLen
		hi := lo + shardLen
		if hi > len(input) {
			hi = len(input)
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partials[i] = CountFrequencies(input[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ft := make(FrequencyTable)
	for _, partial := range partials {
		ft.Merge(partial)
	}
	return ft, nil
}

// Merge adds every count in other to ft.  Merging is plain summation, so the
// order in which partial tables are merged does not matter.
func (ft FrequencyTable) Merge(other FrequencyTable) {
	for symbol, count := range other {
		ft[symbol] = saturatingAdd(ft[symbol], count)
	}
}

// Total returns the sum of all counts, i.e. the length of the input.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range ft {
		sum = saturatingAdd(sum, count)
	}
	return sum
}

// Symbols returns the table's symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	symbols := maps.Keys(ft)
	slices.Sort(symbols)
	return symbols
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.Total())
	for _, symbol := range ft.Symbols() {
		fmt.Fprintf(&buf, "\t%s: %d\n", symbol, ft[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
