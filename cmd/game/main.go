package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dodger: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	// The terminal is the game screen; logs go nowhere unless DODGER_LOG_FILE is set.
	logger, closer, err := config.NewLogger("game", io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	session, err := loop.NewSession(cfg, loop.WithLogger(logger))
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, session, loop.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	logger.Info("session finished", "score", res.Score, "frames", res.Frames, "over", res.Over)
	return nil
}
