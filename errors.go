package huffman

import (
	"errors"
)

var (
	// ErrUnknownSymbol is returned when encoding a Symbol that has no Code.
	ErrUnknownSymbol = errors.New("symbol not in Huffman code")

	// ErrInvalidCode is returned when a CodeMap is not prefix-free.
	ErrInvalidCode = errors.New("invalid Huffman code")

	// ErrMalformedData is returned when encoded data leads the tree walk to
	// a child that does not exist.
	ErrMalformedData = errors.New("malformed Huffman-coded data")

	// ErrTruncatedData is returned when encoded data ends in the middle of
	// a code.
	ErrTruncatedData = errors.New("truncated Huffman-coded data")
)
