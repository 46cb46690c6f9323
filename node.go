package huffman

import (
	"fmt"
)

// NodeKind distinguishes the two variants of Node.
type NodeKind uint8

const (
	// LeafNode is a terminal node holding a Symbol.
	LeafNode NodeKind = iota + 1

	// BranchNode is an interior node holding up to two children.
	BranchNode
)

// String returns the name of this NodeKind.
func (kind NodeKind) String() string {
	switch kind {
	case LeafNode:
		return "LeafNode"
	case BranchNode:
		return "BranchNode"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(kind))
	}
}

// Node is one node of a Huffman tree: either a leaf or a branch.
//
// A branch exclusively owns its children; trees never share nodes.  Branches
// produced by BuildTree always have two children, while branches produced by
// TreeFromCode may be missing either child if the code map was incomplete.
type Node struct {
	kind   NodeKind
	symbol Symbol
	freq   uint64
	left   *Node
	right  *Node
}

// NewLeaf constructs a leaf node.
func NewLeaf(symbol Symbol, freq uint64) *Node {
	return &Node{kind: LeafNode, symbol: symbol, freq: freq}
}

// NewBranch constructs a branch node.  Either child may be nil.
func NewBranch(freq uint64, left *Node, right *Node) *Node {
	return &Node{kind: BranchNode, symbol: InvalidSymbol, freq: freq, left: left, right: right}
}

// Kind returns which variant this Node is.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// IsLeaf returns true iff this Node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.kind == LeafNode
}

// Symbol returns the leaf's Symbol, or InvalidSymbol for a branch.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Freq returns the node's frequency.  Trees reconstructed by TreeFromCode
// carry a frequency of 0 on every node.
func (n *Node) Freq() uint64 {
	return n.freq
}

// Left returns the left child, or nil.  Always nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil.  Always nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Child returns the right child if bit is true, else the left child.
func (n *Node) Child(bit bool) *Node {
	if bit {
		return n.right
	}
	return n.left
}

func (n *Node) setChild(bit bool, child *Node) {
	if bit {
		n.right = child
	} else {
		n.left = child
	}
}

// String returns a compact, programmer-readable representation of the
// subtree rooted at this Node.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	if n.kind == LeafNode {
		return fmt.Sprintf("Leaf(%s, %d)", n.symbol, n.freq)
	}
	return fmt.Sprintf("Branch(%d, %s, %s)", n.freq, n.left, n.right)
}

var _ fmt.Stringer = (*Node)(nil)
