package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/randkit/rng"
)

type CLI struct {
	Count   uint64 `default:"50000000" help:"Values to generate per algorithm"`
	Workers int    `default:"0" help:"Parallel workers (0 = GOMAXPROCS)"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("randbench"),
		kong.Description("Throughput benchmark for randkit generators"),
		kong.UsageOnError(),
	)

	logger := log.New(os.Stderr)
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	workers := cli.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	fmt.Printf("%-10s %-6s %12s %14s\n", "algorithm", "tag", "ns/value", "values/sec")
	for _, name := range rng.Algorithms() {
		// Round down to a whole number of values per worker so the rate
		// reflects what was actually generated.
		total := cli.Count / uint64(workers) * uint64(workers)
		tag, elapsed := benchmark(name, total, workers, logger)
		perValue := float64(elapsed.Nanoseconds()) / float64(total)
		rate := float64(total) / elapsed.Seconds()
		fmt.Printf("%-10s %-6s %12.2f %14.0f\n", name, tag, perValue, rate)
	}
}

// benchmark times generating count values split across workers, each worker
// drawing from its own generator.
func benchmark(name string, count uint64, workers int, logger *log.Logger) (string, time.Duration) {
	prototype, err := rng.NewSource(name, 1)
	if err != nil {
		logger.Fatal("Bad algorithm", "error", err)
	}

	per := count / uint64(workers)
	logger.Debug("Benchmarking", "algorithm", name, "workers", workers, "per_worker", per)

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		src, err := rng.NewSource(name, uint64(w)+1)
		if err != nil {
			logger.Fatal("Bad algorithm", "error", err)
		}
		g.Go(func() error {
			var sink uint64
			for i := uint64(0); i < per; i++ {
				sink = src.Uint64()
			}
			_ = sink
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal("Benchmark failed", "error", err)
	}
	return prototype.Tag(), time.Since(start)
}
