package loop

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/loop/config"
)

// Options configures the terminal driver.
type Options struct {
	// TermSizeFunc reports the terminal size. Defaults to the local stdout.
	TermSizeFunc draw.TermSizeFunc

	// Logger receives driver events. Defaults to log.Default().
	Logger *log.Logger

	// Shutdown, when closed, shows a shutdown notice and ends the run after ShutdownDisplay.
	Shutdown <-chan struct{}

	// ShutdownDisplay is how long the shutdown notice stays up.
	ShutdownDisplay time.Duration

	// InactivityWarning and InactivityTimeout are measured from the last key
	// press. Zero disables them.
	InactivityWarning time.Duration
	InactivityTimeout time.Duration

	// OnGameOver is called once, from the driver goroutine, when the session ends.
	OnGameOver func(Result)

	// Leaderboard returns lines shown on the game-over screen.
	Leaderboard func() []string

	FrameTime    time.Duration // Defaults to config.TargetFrameTime
	HoldDuration time.Duration // Defaults to config.KeyHoldDuration
}

func (o Options) withDefaults() Options {
	if o.TermSizeFunc == nil {
		o.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	if o.ShutdownDisplay <= 0 {
		o.ShutdownDisplay = config.ShutdownDisplay
	}
	if o.FrameTime <= 0 {
		o.FrameTime = config.TargetFrameTime
	}
	if o.HoldDuration <= 0 {
		o.HoldDuration = config.KeyHoldDuration
	}
	return o
}
