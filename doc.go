// Package huffman builds and applies Huffman prefix codes over sequences of
// Unicode symbols.
//
// The pipeline is: CountFrequencies → BuildTree → BuildCodeMap → Encode, and
// on the receiving side TreeFromCode → Decode.  Only the CodeMap is needed to
// decode; symbol frequencies are not recoverable from it and are not needed.
//
// Encoded data is a sequence of booleans (false = left, true = right), not a
// packed byte buffer.
//
// Trees built from frequencies are deterministic: leaves are queued in
// ascending Symbol order, and among nodes of equal frequency the most
// recently queued node is merged first.  See Queue.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
