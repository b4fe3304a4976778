package main

import (
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/randkit/internal/tui"
	"github.com/lox/randkit/rng"
)

type CLI struct {
	Algorithm string `default:"rewind" help:"Generator algorithm: rewind, splitmix, pcg"`
	Seed      uint64 `default:"0" help:"Seed (0 picks a fresh entropy seed)"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("randviz"),
		kong.Description("Interactive histogram viewer for randkit generators"),
		kong.UsageOnError(),
	)

	logger := log.New(os.Stderr)

	seed := cli.Seed
	if seed == 0 {
		seed = rng.MakeSeed()
	}
	src, err := rng.NewSource(cli.Algorithm, seed)
	if err != nil {
		logger.Fatal("Bad algorithm", "error", err)
	}

	p := tea.NewProgram(tui.New(src), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Fatal("TUI failed", "error", err)
	}
}
