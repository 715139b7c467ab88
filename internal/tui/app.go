package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/dodger/internal/input"
	"github.com/tomz197/dodger/internal/loop"
	"github.com/tomz197/dodger/internal/loop/config"
)

// App runs a session in a tcell screen.
type App struct {
	screen    tcell.Screen
	session   *loop.Session
	renderer  *Renderer
	tracker   *input.Tracker
	frameTime time.Duration
	logger    *log.Logger
}

// NewApp binds session to an initialized screen. The caller owns the screen
// and must call Fini on it.
func NewApp(screen tcell.Screen, session *loop.Session, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		screen:    screen,
		session:   session,
		renderer:  NewRenderer(screen),
		tracker:   input.NewTracker(config.KeyHoldDuration),
		frameTime: config.TargetFrameTime,
		logger:    logger,
	}
}

// Run ticks and renders at the target frame rate until the player quits or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) (loop.Result, error) {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(a.frameTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return a.result(), nil

		case ev := <-events:
			if a.handle(ev, time.Now()) {
				a.logger.Debug("player quit", "score", a.session.Score)
				return a.result(), nil
			}

		case now := <-ticker.C:
			for _, ev := range a.tracker.Expire(now, nil) {
				a.session.Apply(ev)
			}
			a.session.Tick()
			if err := a.renderer.Render(a.session.View()); err != nil {
				return a.result(), err
			}
		}
	}
}

func (a *App) result() loop.Result {
	return loop.Result{Score: a.session.Score, Frames: a.session.Frames, Over: a.session.Over()}
}

// handle applies one tcell event. Returns true if the player asked to quit.
func (a *App) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.key(ev.Key(), ev.Rune(), now)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

// key maps a key press onto session input. Terminals report no key-up, so
// directions go through the hold tracker.
func (a *App) key(key tcell.Key, r rune, now time.Time) bool {
	var ev input.Event
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		return a.press(input.Up, now)
	case tcell.KeyDown:
		return a.press(input.Down, now)
	case tcell.KeyLeft:
		return a.press(input.Left, now)
	case tcell.KeyRight:
		return a.press(input.Right, now)
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return true
		case ' ':
			ev = input.Event{Kind: input.Fire}
		case 'w', 'W':
			return a.press(input.Up, now)
		case 's', 'S':
			return a.press(input.Down, now)
		case 'a', 'A':
			return a.press(input.Left, now)
		case 'd', 'D':
			return a.press(input.Right, now)
		default:
			return false
		}
	default:
		return false
	}
	return a.session.Apply(ev)
}

func (a *App) press(dir input.Direction, now time.Time) bool {
	if ev, ok := a.tracker.Press(dir, now); ok {
		return a.session.Apply(ev)
	}
	return false
}
