package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	huffman "github.com/chronos-tachyon/huffcode"
)

var (
	errNothingToEncode = errors.New("nothing to encode: input is empty")
	errInvalidUTF8     = errors.New("input is not valid UTF-8")
)

// readInput returns the first argument, or stdin when there is none or it
// is "-".
func readInput(ctx *cli.Context) (string, error) {
	if ctx.NArg() > 1 {
		return "", fmt.Errorf("expected at most 1 argument, got %d", ctx.NArg())
	}
	arg := ctx.Args().First()
	if ctx.NArg() == 1 && arg != "-" {
		if !utf8.ValidString(arg) {
			return "", errInvalidUTF8
		}
		return arg, nil
	}
	raw, err := io.ReadAll(ctx.App.Reader)
	if err == nil && !utf8.Valid(raw) {
		err = errInvalidUTF8
	}
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	str := string(raw)
	if trimmed := strings.TrimSuffix(str, "\r\n"); trimmed != str {
		return trimmed, nil
	}
	return strings.TrimSuffix(str, "\n"), nil
}

func countFrequencies(ctx *cli.Context, input []huffman.Symbol) (huffman.FrequencyTable, error) {
	shards := ctx.Int(shardsFlag.Name)
	log := logrus.WithFields(logrus.Fields{"symbols": len(input), "shards": shards})
	if shards <= 1 {
		log.Debug("counting frequencies")
		return huffman.CountFrequencies(input), nil
	}
	log.Debug("counting frequencies concurrently")
	return huffman.CountFrequenciesParallel(ctx.Context, input, shards)
}

func freqCommand(ctx *cli.Context) error {
	str, err := readInput(ctx)
	if err != nil {
		return err
	}
	ft, err := countFrequencies(ctx, huffman.Symbols(str))
	if err != nil {
		return err
	}
	if ft == nil {
		return errNothingToEncode
	}
	logrus.WithField("distinct", len(ft)).Debug("counted frequencies")
	_, err = ft.Dump(ctx.App.Writer)
	return err
}

func encodeInput(ctx *cli.Context) (*huffman.Coding, []huffman.Symbol, error) {
	str, err := readInput(ctx)
	if err != nil {
		return nil, nil, err
	}
	input := huffman.Symbols(str)
	ft, err := countFrequencies(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	if ft == nil {
		return nil, nil, errNothingToEncode
	}

	var e huffman.Encoder
	e.Init(ft)
	logrus.WithFields(logrus.Fields{
		"distinct": e.NumSymbols(),
		"minSize":  e.MinSize(),
		"maxSize":  e.MaxSize(),
	}).Debug("built code")

	data, err := e.Append(nil, input)
	if err != nil {
		return nil, nil, err
	}
	logrus.WithFields(logrus.Fields{"symbols": len(input), "bits": data.Len()}).Debug("encoded input")
	return &huffman.Coding{Code: e.CodeMap(), Data: data}, input, nil
}

func printCoding(ctx *cli.Context, coding *huffman.Coding, input []huffman.Symbol) error {
	w := ctx.App.Writer
	if _, err := coding.Code.Dump(w); err != nil {
		return err
	}
	fmt.Fprintf(w, "symbols: %d\n", len(input))
	fmt.Fprintf(w, "bits: %d\n", coding.Data.Len())
	if ctx.Bool(bitsFlag.Name) {
		fmt.Fprintf(w, "data: %s\n", coding.Data)
	}
	return nil
}

func encodeCommand(ctx *cli.Context) error {
	coding, input, err := encodeInput(ctx)
	if err != nil {
		return err
	}
	if len(coding.Code) == 1 {
		logrus.Warn("single-symbol input encodes to zero bits; the repeat count is not recoverable")
	}
	return printCoding(ctx, coding, input)
}

func roundtripCommand(ctx *cli.Context) error {
	coding, input, err := encodeInput(ctx)
	if err != nil {
		return err
	}
	if err := printCoding(ctx, coding, input); err != nil {
		return err
	}

	var d huffman.Decoder
	if err := d.Init(coding.Code); err != nil {
		return err
	}
	decoded, err := d.DecodeString(coding.Data)
	if err != nil {
		return err
	}
	logrus.WithField("symbols", len(huffman.Symbols(decoded))).Debug("decoded data")

	if expect := huffman.SymbolString(input); decoded != expect {
		if len(coding.Code) == 1 {
			logrus.Warn("single-symbol input cannot be round-tripped")
			return nil
		}
		return fmt.Errorf("round trip mismatch: expected %q, got %q", expect, decoded)
	}
	fmt.Fprintln(ctx.App.Writer, "roundtrip: ok")
	return nil
}
