package huffman

import (
	"strconv"
	"unicode"
)

// Symbol represents a symbol in the input alphabet, i.e. one Unicode code
// point.  Negative symbols are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the Go-quoted representation of this Symbol.
func (s Symbol) String() string {
	if s < 0 {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}

// Symbols splits a string into its sequence of Symbols.  Each invalid UTF-8
// byte becomes unicode.ReplacementChar, so the conversion is only lossless
// for valid UTF-8.
func Symbols(str string) []Symbol {
	if str == "" {
		return nil
	}
	out := make([]Symbol, 0, len(str))
	for _, r := range str {
		out = append(out, Symbol(r))
	}
	return out
}

// SymbolString is the inverse of Symbols.
func SymbolString(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for i, s := range symbols {
		runes[i] = rune(s)
	}
	return string(runes)
}
