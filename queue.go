package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Queue is a priority queue of Nodes, ordered by ascending frequency.
//
// Enqueue places a node immediately before the first queued node whose
// frequency is greater than or equal to its own.  As a result, among nodes of
// equal frequency the most recently enqueued one is dequeued first.  This
// tie-break decides which subtree becomes the left child during BuildTree, and
// therefore the exact bits of every code.
//
// The zero value is an empty Queue ready to use.  A Queue is not safe for
// concurrent use.
type Queue struct {
	h       nodeHeap
	nextSeq uint64
}

// Enqueue adds a node to the queue.
func (q *Queue) Enqueue(n *Node) {
	assert.Assertf(n != nil, "Enqueue called with nil *Node")
	heap.Push(&q.h, queueItem{node: n, seq: q.nextSeq})
	q.nextSeq++
}

// Dequeue removes and returns the node at the front of the queue, i.e. the
// node with the lowest frequency.  It returns nil if the queue is empty.
func (q *Queue) Dequeue() *Node {
	if q.h.Len() == 0 {
		return nil
	}
	return heap.Pop(&q.h).(queueItem).node
}

// Size returns the number of queued nodes.
func (q *Queue) Size() int {
	return q.h.Len()
}

// type queueItem + type nodeHeap {{{

type queueItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []queueItem
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

// Less orders by frequency, then by newest first.  This total order is
// exactly the order of a sorted list where each insertion goes before the
// first element of greater-or-equal frequency.
func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.seq > b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queueItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
