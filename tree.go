package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs a Huffman tree from a FrequencyTable.  It returns nil
// if the table is nil or empty.
//
// Leaves are enqueued in ascending Symbol order.  Then the two lowest
// frequency nodes are repeatedly dequeued and merged into a branch, the first
// dequeued becoming the left child, until a single node remains.  A table
// with one symbol yields a lone leaf.
//
func BuildTree(ft FrequencyTable) *Node {
	if ft == nil {
		return nil
	}

	var q Queue
	for _, symbol := range ft.Symbols() {
		q.Enqueue(NewLeaf(symbol, ft[symbol]))
	}

	for q.Size() > 1 {
		left := q.Dequeue()
		right := q.Dequeue()
		q.Enqueue(NewBranch(saturatingAdd(left.freq, right.freq), left, right))
	}

	return q.Dequeue()
}

// TreeFromCode reconstructs the structure of a Huffman tree from a CodeMap
// alone.  Every node of the result has frequency 0.
//
// The result is always a branch, even for a CodeMap with zero or one entries.
// Each code claims exactly one path, so the result does not depend on map
// iteration order.
//
// TreeFromCode trusts its input: the CodeMap must be prefix-free, as produced
// by BuildCodeMap.  Use CodeMap.Validate to check an untrusted CodeMap first.
//
func TreeFromCode(code CodeMap) *Node {
	root := NewBranch(0, nil, nil)
	for symbol, bits := range code {
		cursor := root
		last := len(bits) - 1
		for i, bit := range bits {
			assert.Assertf(cursor.kind == BranchNode, "code %s for %s passes through a leaf", bits, symbol)
			if i == last {
				cursor.setChild(bit, NewLeaf(symbol, 0))
				break
			}
			if cursor.Child(bit) == nil {
				cursor.setChild(bit, NewBranch(0, nil, nil))
			}
			cursor = cursor.Child(bit)
		}
	}
	return root
}
