package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_EqualFrequencies(t *testing.T) {
	var q Queue
	a := NewLeaf('a', 2)
	b := NewLeaf('b', 2)
	q.Enqueue(a)
	q.Enqueue(b)
	require.Equal(t, 2, q.Size())

	// b goes before a, the first queued node with freq >= 2.  Equal
	// frequencies therefore dequeue newest first, not in insertion order;
	// every code produced by BuildTree depends on this.
	require.Same(t, b, q.Dequeue())
	require.Same(t, a, q.Dequeue())
	require.Nil(t, q.Dequeue())
	require.Equal(t, 0, q.Size())
}

func TestQueue_Order(t *testing.T) {
	var q Queue
	for _, n := range []*Node{
		NewLeaf('x', 3),
		NewLeaf('y', 1),
		NewLeaf('z', 3),
		NewLeaf('w', 1),
		NewBranch(2, nil, nil),
		NewLeaf('v', 7),
	} {
		q.Enqueue(n)
	}

	var actual []string
	for q.Size() != 0 {
		actual = append(actual, q.Dequeue().String())
	}
	expect := []string{
		"Leaf('w', 1)",
		"Leaf('y', 1)",
		"Branch(2, nil, nil)",
		"Leaf('z', 3)",
		"Leaf('x', 3)",
		"Leaf('v', 7)",
	}
	require.Equal(t, expect, actual)
}

func TestQueue_InterleavedDequeue(t *testing.T) {
	var q Queue
	q.Enqueue(NewLeaf('a', 5))
	q.Enqueue(NewLeaf('b', 1))
	require.Equal(t, Symbol('b'), q.Dequeue().Symbol())
	q.Enqueue(NewLeaf('c', 5))
	q.Enqueue(NewLeaf('d', 9))
	require.Equal(t, Symbol('c'), q.Dequeue().Symbol())
	require.Equal(t, Symbol('a'), q.Dequeue().Symbol())
	require.Equal(t, Symbol('d'), q.Dequeue().Symbol())
	require.Nil(t, q.Dequeue())
}

func TestQueue_EnqueueNil(t *testing.T) {
	var q Queue
	require.Panics(t, func() { q.Enqueue(nil) })
}
