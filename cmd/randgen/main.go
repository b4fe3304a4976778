package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/randkit/internal/stats"
	"github.com/lox/randkit/rng"
)

type CLI struct {
	Algorithm string `default:"rewind" help:"Generator algorithm: rewind, splitmix, pcg"`
	Seed      uint64 `default:"0" help:"Seed (0 picks a fresh entropy seed)"`
	Count     int    `default:"10" help:"Number of values to emit"`
	Format    string `default:"u64" enum:"u64,hex,raw,float" help:"Output format: u64, hex, raw, float"`
	Analyze   bool   `help:"Print a distribution report instead of values"`
	Verbose   bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("randgen"),
		kong.Description("Dump pseudorandom values from a randkit generator"),
		kong.UsageOnError(),
	)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = rng.MakeSeed()
		logger.Debug("Picked entropy seed", "seed", fmt.Sprintf("%016x", seed))
	}

	src, err := rng.NewSource(cli.Algorithm, seed)
	if err != nil {
		logger.Fatal("Bad algorithm", "error", err)
	}
	logger.Debug("Generator ready", "tag", src.Tag(), "words", src.WordCount())

	if cli.Analyze {
		summary := stats.NewSummary()
		for i := 0; i < cli.Count; i++ {
			summary.Add(src.Uint64())
		}
		fmt.Printf("algorithm:   %s (%s), seed %016x\n", cli.Algorithm, src.Tag(), seed)
		fmt.Print(summary.Report())
		return
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	rand := rng.New(src)
	var buf [8]byte
	for i := 0; i < cli.Count; i++ {
		switch cli.Format {
		case "u64":
			fmt.Fprintln(out, src.Uint64())
		case "hex":
			fmt.Fprintf(out, "%016x\n", src.Uint64())
		case "raw":
			binary.LittleEndian.PutUint64(buf[:], src.Uint64())
			if _, err := out.Write(buf[:]); err != nil {
				logger.Fatal("Write failed", "error", err)
			}
		case "float":
			fmt.Fprintln(out, rand.Float64())
		}
	}
}
