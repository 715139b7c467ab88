package main

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/dodger/internal/asset"
	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/gui"
	"github.com/tomz197/dodger/internal/loop"
	loopconfig "github.com/tomz197/dodger/internal/loop/config"
)

// EnvAssetDir names the directory holding the sprite PNGs.
const EnvAssetDir = "DODGER_ASSETS"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dodger-desktop: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger, closer, err := config.NewLogger("desktop", os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	session, err := loop.NewSession(cfg, loop.WithLogger(logger))
	if err != nil {
		return err
	}

	gate := loop.NewGate(asset.ResourceNames()...)
	sprites, loaded := asset.LoadAsync(config.GetEnv(EnvAssetDir, ""), gate, logger)

	canvas := image.Pt(int(cfg.Canvas.Width), int(cfg.Canvas.Height))
	size := gui.WindowSize(canvas, image.Pt(1600, 1000))
	ebiten.SetWindowSize(size.X, size.Y)
	ebiten.SetWindowTitle("Dodger")
	ebiten.SetTPS(loopconfig.TargetFPS)

	game := gui.NewGame(session, gate, sprites, logger)
	game.WatchLoad(loaded)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("session finished", "score", session.Score, "frames", session.Frames, "over", session.Over())
	return nil
}
