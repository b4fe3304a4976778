package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/randkit/internal/server"
)

type CLI struct {
	Config  string `default:"randserve.hcl" help:"Path to HCL configuration file"`
	Verbose bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("randserve"),
		kong.Description("Serve named generator streams over websockets"),
		kong.UsageOnError(),
	)

	logger := log.New(os.Stderr)

	config, err := server.LoadConfig(cli.Config)
	if err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}

	switch {
	case cli.Verbose:
		logger.SetLevel(log.DebugLevel)
	case config.Server.LogLevel != "":
		if level, err := log.ParseLevel(config.Server.LogLevel); err == nil {
			logger.SetLevel(level)
		}
	}

	srv, err := server.NewServer(config, logger)
	if err != nil {
		logger.Fatal("Failed to create server", "error", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Fatal("Server failed", "error", err)
	case sig := <-sigCh:
		logger.Info("Shutting down", "signal", sig)
		_ = srv.Stop()
	}
}
