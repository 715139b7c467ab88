// Package loop provides the game session, its per-frame update and the
// terminal driver that runs it.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/input"
)

// Result summarizes a finished run.
type Result struct {
	Score  int
	Frames int
	Over   bool // The session reached game over (as opposed to quitting early)
}

// Run drives session in a terminal with the standard Input → Update → Draw
// cycle until the player quits, the context is cancelled, the shutdown notice
// expires or the inactivity timeout fires. After game over the final screen
// stays up until one of those happens.
func Run(ctx context.Context, r io.ByteReader, w io.Writer, session *Session, opts Options) (Result, error) {
	opts = opts.withDefaults()
	logger := opts.Logger

	stream := input.StartStream(r, opts.HoldDuration)
	defer stream.Close()
	renderer := NewTerminalRenderer(w, opts.TermSizeFunc, session.Screen)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	result := func() Result {
		return Result{Score: session.Score, Frames: session.Frames, Over: session.Over()}
	}

	lastInput := time.Now()
	var shutdownAt time.Time
	reported := false

	for {
		select {
		case <-ctx.Done():
			logger.Debug("run cancelled", "err", ctx.Err())
			return result(), nil
		default:
		}

		frameStart := time.Now()

		// ===== INPUT PHASE =====
		events := stream.Poll(frameStart)
		if len(events) > 0 {
			lastInput = frameStart
		}
		quit := false
		for _, ev := range events {
			if session.Apply(ev) {
				quit = true
			}
		}
		if quit {
			logger.Debug("player quit", "score", session.Score)
			break
		}

		// ===== HOST PHASE =====
		if shutdownAt.IsZero() && isClosed(opts.Shutdown) {
			shutdownAt = frameStart
			logger.Info("server shutting down, notifying player")
		}
		if !shutdownAt.IsZero() {
			remaining := opts.ShutdownDisplay - frameStart.Sub(shutdownAt)
			if remaining <= 0 {
				break
			}
			renderer.Notice = "Server is shutting down, disconnecting in " + remaining.Round(time.Second).String()
		} else if opts.InactivityTimeout > 0 {
			idle := frameStart.Sub(lastInput)
			switch {
			case idle > opts.InactivityTimeout:
				logger.Info("disconnecting inactive player", "idle", idle.Round(time.Second))
				draw.ClearScreen(w)
				return result(), nil
			case opts.InactivityWarning > 0 && idle > opts.InactivityWarning:
				renderer.Notice = "Are you still there? Press any key to stay connected"
			default:
				renderer.Notice = ""
			}
		}

		// ===== UPDATE PHASE =====
		session.Tick()
		if session.Over() && !reported {
			reported = true
			if opts.OnGameOver != nil {
				opts.OnGameOver(result())
			}
			if opts.Leaderboard != nil {
				renderer.Leaderboard = opts.Leaderboard()
			}
		}

		// ===== DRAW PHASE =====
		if err := renderer.Render(session.View()); err != nil {
			return result(), err
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < opts.FrameTime {
			select {
			case <-ctx.Done():
			case <-time.After(opts.FrameTime - elapsed):
			}
		}
	}

	draw.ClearScreen(w)
	return result(), nil
}

// isClosed reports whether ch has been closed. A nil channel is never closed.
func isClosed(ch <-chan struct{}) bool {
	if ch == nil {
		return false
	}
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
