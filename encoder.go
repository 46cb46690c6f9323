package huffman

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// Coding is the result of Encode: the CodeMap needed to decode, plus the
// encoded data.
type Coding struct {
	Code CodeMap
	Data Bits
}

// Encode builds a Huffman code for input and encodes input with it.  It
// returns nil if input is empty.
//
// If input consists of a single distinct symbol, its Code is empty and so is
// the encoded data, no matter how many times the symbol occurs.
//
func Encode(input []Symbol) *Coding {
	ft := CountFrequencies(input)
	if ft == nil {
		return nil
	}

	var e Encoder
	e.Init(ft)

	data, err := e.Append(make(Bits, 0, e.encodedSize(ft)), input)
	assert.Assertf(err == nil, "BUG: Encoder rejected its own input: %v", err)

	return &Coding{Code: e.codes, Data: data}
}

// EncodeString is a convenience wrapper around Encode.  It returns nil if str
// is empty or is not valid UTF-8, since invalid bytes cannot be decoded back
// to the same string.
func EncodeString(str string) *Coding {
	if !utf8.ValidString(str) {
		return nil
	}
	return Encode(Symbols(str))
}

// Encoder implements an encoder for Huffman codes built from a
// FrequencyTable.
type Encoder struct {
	codes   CodeMap
	minSize int
	maxSize int
}

// Init initializes this Encoder from the given frequencies.  A nil or empty
// table produces an Encoder with an empty alphabet.
func (e *Encoder) Init(ft FrequencyTable) {
	codes := BuildCodeMap(BuildTree(ft))
	if codes == nil {
		codes = make(CodeMap)
	}
	minSize, maxSize := codes.sizeRange()

	*e = Encoder{
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode returns the Code for a Symbol, or nil if the Symbol is not in the
// alphabet.  The returned Code must not be modified.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// Append appends the encoding of input to dst and returns the extended Bits.
// It returns ErrUnknownSymbol if input contains a Symbol that has no Code.
func (e Encoder) Append(dst Bits, input []Symbol) (Bits, error) {
	for index, symbol := range input {
		hc, found := e.codes[symbol]
		if !found {
			return dst, fmt.Errorf("%w: %s at index %d", ErrUnknownSymbol, symbol, index)
		}
		dst = append(dst, hc...)
	}
	return dst, nil
}

// CodeMap returns the Encoder's CodeMap.  This map can be transmitted to
// another party and used by Decoder to decode the data on the receiving end.
// The returned map must not be modified.
func (e Encoder) CodeMap() CodeMap {
	return e.codes
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() int {
	return e.maxSize
}

// NumSymbols is the number of symbols in the Encoder's alphabet.
func (e Encoder) NumSymbols() int {
	return len(e.codes)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.codes.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (e Encoder) encodedSize(ft FrequencyTable) uint64 {
	size, err := e.codes.EncodedSize(ft)
	if err != nil {
		return 0
	}
	return size
}
