package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Decode decodes data using only the CodeMap that was used to encode it.
//
// It returns ErrInvalidCode if code is not prefix-free, ErrMalformedData if
// data walks off the reconstructed tree, and ErrTruncatedData if data ends in
// the middle of a code.  No partial output is returned on error.
//
// A CodeMap with a single empty Code cannot consume any bits, so decoding
// its (empty) data yields empty output; the number of repetitions of the
// symbol is not recoverable.
//
func Decode(code CodeMap, data Bits) ([]Symbol, error) {
	var d Decoder
	if err := d.Init(code); err != nil {
		return nil, err
	}
	return d.Decode(data)
}

// DecodeString is a convenience wrapper around Decode.
func DecodeString(code CodeMap, data Bits) (string, error) {
	symbols, err := Decode(code, data)
	if err != nil {
		return "", err
	}
	return SymbolString(symbols), nil
}

// Decoder implements a decoder for Huffman codes.  It holds the tree
// reconstructed from a CodeMap.
type Decoder struct {
	root       *Node
	numSymbols int
	minSize    int
	maxSize    int
}

// Init initializes this Decoder.  The argument is a CodeMap, typically the
// one returned by Encoder.CodeMap or Encode.
//
// Degenerate maps consisting of 0 symbols, or of 1 symbol with an empty
// Code, are permitted.  Maps that are not prefix-free are rejected.
//
func (d *Decoder) Init(code CodeMap) error {
	if err := code.Validate(); err != nil {
		return err
	}

	minSize, maxSize := code.sizeRange()

	*d = Decoder{
		root:       TreeFromCode(code),
		numSymbols: len(code),
		minSize:    minSize,
		maxSize:    maxSize,
	}
	return nil
}

// Decode walks the tree one bit at a time, emitting a Symbol and returning to
// the root each time a leaf is reached.
func (d Decoder) Decode(data Bits) ([]Symbol, error) {
	if len(data) == 0 {
		return []Symbol{}, nil
	}
	if d.root == nil {
		return nil, fmt.Errorf("%w: Decoder has no code", ErrMalformedData)
	}

	var out []Symbol
	if d.minSize > 0 {
		out = make([]Symbol, 0, len(data)/d.minSize)
	}

	cursor := d.root
	start := 0
	for index, bit := range data {
		next := cursor.Child(bit)
		if next == nil {
			return nil, fmt.Errorf("%w: no code for bits %s at offset %d", ErrMalformedData, Code(data[start:index+1]), start)
		}
		if next.kind == LeafNode {
			out = append(out, next.symbol)
			cursor = d.root
			start = index + 1
			continue
		}
		cursor = next
	}

	if cursor != d.root {
		return nil, fmt.Errorf("%w: %d trailing bits %s at offset %d", ErrTruncatedData, len(data)-start, Code(data[start:]), start)
	}
	return out, nil
}

// DecodeString is a convenience wrapper around Decode.
func (d Decoder) DecodeString(data Bits) (string, error) {
	symbols, err := d.Decode(data)
	if err != nil {
		return "", err
	}
	return SymbolString(symbols), nil
}

// NumSymbols is the number of symbols in the Decoder's alphabet.
func (d Decoder) NumSymbols() int {
	return d.numSymbols
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() int {
	return d.maxSize
}

// Tree returns the reconstructed tree.  The returned tree must not be
// modified.
func (d Decoder) Tree() *Node {
	return d.root
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.  Every node of the tree is listed, ordered by
// path length and then by path.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)

	type pathAndNode struct {
		path Code
		node *Node
	}

	// Breadth-first, left before right: already ordered by (size, path).
	var queue []pathAndNode
	if d.root != nil {
		queue = append(queue, pathAndNode{Code{}, d.root})
	}
	for len(queue) != 0 {
		item := queue[0]
		queue = queue[1:]
		if item.node.kind == LeafNode {
			fmt.Fprintf(&buf, "\tDecode(%s) = %s\n", item.path, item.node.symbol)
			continue
		}
		fmt.Fprintf(&buf, "\tDecode(%s) = %s\n", item.path, InvalidSymbol)
		if item.node.left != nil {
			queue = append(queue, pathAndNode{item.path.Append(false), item.node.left})
		}
		if item.node.right != nil {
			queue = append(queue, pathAndNode{item.path.Append(true), item.node.right})
		}
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
