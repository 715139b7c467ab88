package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/loop"
	"github.com/tomz197/dodger/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dodger-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger, closer, err := config.NewLogger("tui", io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	session, err := loop.NewSession(cfg, loop.WithLogger(logger))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := tui.NewApp(screen, session, logger).Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("session finished", "score", res.Score, "frames", res.Frames, "over", res.Over)
	return nil
}
