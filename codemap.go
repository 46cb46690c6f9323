package huffman

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CodeMap maps each Symbol to its Code, the path from the root of the tree to
// the Symbol's leaf.  A CodeMap produced by BuildCodeMap is prefix-free.
type CodeMap map[Symbol]Code

// BuildCodeMap walks a Huffman tree and returns the Code for every leaf.
// Going left appends false and going right appends true.  It returns nil if
// tree is nil.
//
// A tree that is a single leaf yields a CodeMap whose only Code is empty.
//
func BuildCodeMap(tree *Node) CodeMap {
	if tree == nil {
		return nil
	}

	code := make(CodeMap)

	// Each stack item owns its own path.  Children receive a fresh copy via
	// Code.Append, so no path buffer is ever shared between siblings.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Node
		path Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint(uint(tree.freq))+1)

	visit := func(node *Node, path Code) {
		if node == nil {
			return
		}
		if node.kind == LeafNode {
			code[node.symbol] = path
			return
		}
		stack = append(stack, stackItem{node: node, path: path})
	}

	visit(tree, Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			visit(top.node.left, top.path.Append(false))
		case 1:
			visit(top.node.right, top.path.Append(true))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}

	return code
}

// Symbols returns the map's symbols in ascending order.
func (code CodeMap) Symbols() []Symbol {
	symbols := maps.Keys(code)
	slices.Sort(symbols)
	return symbols
}

// MinSize is the bit length of the shortest code, or 0 for an empty map.
func (code CodeMap) MinSize() int {
	min, _ := code.sizeRange()
	return min
}

// MaxSize is the bit length of the longest code, or 0 for an empty map.
func (code CodeMap) MaxSize() int {
	_, max := code.sizeRange()
	return max
}

func (code CodeMap) sizeRange() (min int, max int) {
	first := true
	for _, hc := range code {
		size := hc.Size()
		if first {
			min, max = size, size
			first = false
		} else if min > size {
			min = size
		} else if max < size {
			max = size
		}
	}
	return min, max
}

// EncodedSize returns the number of bits needed to encode an input with the
// given frequencies, i.e. the sum over all symbols of freq × len(code),
// clamped to math.MaxUint64.  It returns an error if ft contains a symbol not
// present in the map.
func (code CodeMap) EncodedSize(ft FrequencyTable) (uint64, error) {
	var total uint64
	for _, symbol := range ft.Symbols() {
		hc, found := code[symbol]
		if !found {
			return 0, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
		}
		total = saturatingAdd(total, saturatingMul(ft[symbol], uint64(hc.Size())))
	}
	return total, nil
}

// Validate checks that the map is prefix-free: no Code is a prefix of
// another.  An empty Code is permitted only as the sole entry of the map,
// which is what BuildCodeMap produces for single-symbol input.
func (code CodeMap) Validate() error {
	if len(code) == 1 {
		return nil
	}

	codes := make(byCode, 0, len(code))
	for symbol, hc := range code {
		if hc.Size() == 0 {
			return fmt.Errorf("%w: empty code for %s in a map of %d symbols", ErrInvalidCode, symbol, len(code))
		}
		codes = append(codes, symbolAndCode{symbol, hc})
	}
	codes.Sort()

	// After lexicographic sorting, if any code is a prefix of another, then
	// it is also a prefix of its immediate successor.
	for i := 1; i < len(codes); i++ {
		a, b := codes[i-1], codes[i]
		if b.code.HasPrefix(a.code) {
			return fmt.Errorf("%w: code %s for %s is a prefix of code %s for %s", ErrInvalidCode, a.code, a.symbol, b.code, b.symbol)
		}
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the map to the given
// writer.
func (code CodeMap) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeMap{\n")
	for _, symbol := range code.Symbols() {
		fmt.Fprintf(&buf, "\t%s: %s\n", symbol, code[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type symbolAndCode + type byCode {{{

type symbolAndCode struct {
	symbol Symbol
	code   Code
}

type byCode []symbolAndCode

func (list byCode) Sort() {
	slices.SortFunc(list, compareSymbolAndCode)
}

// compareSymbolAndCode orders lexicographically by bits (false < true), a
// shorter code before any code it is a prefix of.
func compareSymbolAndCode(a, b symbolAndCode) int {
	n := len(a.code)
	if len(b.code) < n {
		n = len(b.code)
	}
	for i := 0; i < n; i++ {
		if a.code[i] != b.code[i] {
			if b.code[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a.code) < len(b.code):
		return -1
	case len(a.code) > len(b.code):
		return 1
	case a.symbol < b.symbol:
		return -1
	case a.symbol > b.symbol:
		return 1
	default:
		return 0
	}
}

// }}}
