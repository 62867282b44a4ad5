package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/rpsarena/internal/config"
	"github.com/zeusync/rpsarena/internal/core/observability/log"
	"github.com/zeusync/rpsarena/internal/injector"
	"github.com/zeusync/rpsarena/internal/render/terminal"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Uint64("seed", 0, "override the spawn seed (0 keeps the configured one)")
	tui := flag.Bool("terminal", false, "draw the arena in this terminal (redirect stderr to keep logs off the screen)")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(2)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *tui {
		cfg.Terminal.Enabled = true
	}

	logger := log.New(cfg.LogLevel())
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := injector.InitializeApp(cfg, logger)
	if err != nil {
		logger.Fatal("setup failed", log.Error(err))
	}

	if cfg.Terminal.Enabled {
		screen, err := terminal.NewScreen()
		if err != nil {
			logger.Fatal("terminal init failed", log.Error(err))
		}
		defer screen.Fini()
		viewer := terminal.New(screen, cfg.Canvas)
		a.Runner.AddRenderer(viewer)
		go func() { _ = viewer.Run(ctx, cancel) }()
	}

	if err := a.Run(ctx); err != nil {
		logger.Error("arena stopped with error", log.Error(err))
		os.Exit(1)
	}
}
