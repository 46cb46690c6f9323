package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents the path from the root of a Huffman tree to one of its
// leaves.  A false entry means "go left" and a true entry means "go right".
type Code []bool

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	bits, err := parseBools(str)
	if err != nil {
		return nil, err
	}
	return Code(bits), nil
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Equal returns true iff both codes have the same bits.
func (hc Code) Equal(other Code) bool {
	if len(hc) != len(other) {
		return false
	}
	for i := range hc {
		if hc[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix returns true iff prefix is a prefix of hc.  Every Code has the
// empty Code as a prefix, and every Code is a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	return len(prefix) <= len(hc) && hc[:len(prefix)].Equal(prefix)
}

// Append returns a new Code consisting of hc followed by bit.  The receiver
// is never modified, so sibling paths can share a common prefix safely.
func (hc Code) Append(bit bool) Code {
	out := make(Code, len(hc), len(hc)+1)
	copy(out, hc)
	return append(out, bit)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(formatBools(hc))
}

var _ fmt.Stringer = Code(nil)

// Bits represents Huffman-encoded data: the concatenation of the Codes for
// each symbol of the input, in input order.
type Bits []bool

// ParseBits parses a string of '0' and '1' characters into Bits.
func ParseBits(str string) (Bits, error) {
	bits, err := parseBools(str)
	if err != nil {
		return nil, err
	}
	return Bits(bits), nil
}

// Len returns the number of bits.
func (b Bits) Len() int {
	return len(b)
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	return formatBools(b)
}

var _ fmt.Stringer = Bits(nil)

func formatBools(list []bool) string {
	var sb strings.Builder
	sb.Grow(len(list))
	for _, bit := range list {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func parseBools(str string) ([]bool, error) {
	out := make([]bool, len(str))
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			out[i] = false
		case '1':
			out[i] = true
		default:
			return nil, fmt.Errorf("invalid bit %q at offset %d", str[i], i)
		}
	}
	return out, nil
}
