// Command huffcode builds a Huffman code for a string and shows the
// frequency table, the code map, and the encoded bits.
//
//	huffcode freq abracadabra
//	huffcode encode abracadabra
//	huffcode roundtrip --bits abracadabra
//
// With no argument, or with "-", the input is read from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Log each pipeline stage at debug level",
	}
	shardsFlag = &cli.IntFlag{
		Name:  "shards",
		Usage: "Number of shards to count frequencies with concurrently",
		Value: 1,
	}
	bitsFlag = &cli.BoolFlag{
		Name:  "bits",
		Usage: "Print the encoded data as a string of 0s and 1s",
	}
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "huffcode"
	app.Usage = "Huffman prefix codes for strings"
	app.HideVersion = true
	app.Flags = []cli.Flag{verboseFlag, shardsFlag}
	app.Before = func(ctx *cli.Context) error {
		logrus.SetOutput(ctx.App.ErrWriter)
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if ctx.Bool(verboseFlag.Name) {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "freq",
			Usage:     "Print the frequency table",
			ArgsUsage: "[text]",
			Action:    freqCommand,
		},
		{
			Name:      "encode",
			Usage:     "Print the code map and the encoded data",
			ArgsUsage: "[text]",
			Flags:     []cli.Flag{bitsFlag},
			Action:    encodeCommand,
		},
		{
			Name:      "roundtrip",
			Usage:     "Encode, then decode using only the code map, and verify",
			ArgsUsage: "[text]",
			Flags:     []cli.Flag{bitsFlag},
			Action:    roundtripCommand,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
