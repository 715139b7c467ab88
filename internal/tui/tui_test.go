package tui

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/loop"
	"github.com/tomz197/dodger/internal/object"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)
	return screen
}

func newSession(t *testing.T) *loop.Session {
	t.Helper()
	s, err := loop.NewSession(config.Default(), loop.WithLogger(log.New(io.Discard)))
	require.NoError(t, err)
	return s
}

func rowText(screen tcell.SimulationScreen, y, from, n int) string {
	out := make([]rune, 0, n)
	for x := from; x < from+n; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func TestRendererScalesEntities(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t)
	s.Obstacles.Add(object.NewObstacle(400, 0, 50, 50, 4))

	require.NoError(t, NewRenderer(screen).Render(s.View()))

	// 80x24 cells for 800x600: 10 units per column, 25 per row.
	r, _, style, _ := screen.GetContent(5, 11)
	assert.Equal(t, block, r, "player top-left cell")
	assert.Equal(t, playerStyle, style)

	r, _, _, _ = screen.GetContent(10, 11)
	assert.NotEqual(t, block, r, "player ends before column 10")

	r, _, style, _ = screen.GetContent(40, 0)
	assert.Equal(t, block, r)
	assert.Equal(t, obstacleStyle, style)
}

func TestRendererHUDAndGameOver(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t)
	s.Score = 3
	renderer := NewRenderer(screen)

	require.NoError(t, renderer.Render(s.View()))
	assert.Equal(t, "Score: 3", rowText(screen, 0, 1, 8))

	s.Player.Y = 287
	s.Obstacles.Add(object.NewObstacle(40, 287, 50, 50, 4))
	s.Tick()
	require.True(t, s.Over())

	renderer.Leaderboard = []string{"1. dave 3"}
	require.NoError(t, renderer.Render(s.View()))
	assert.Equal(t, "GAME OVER", rowText(screen, 10, 40-4, 9))
	assert.Equal(t, "1. dave 3", rowText(screen, 17, 40-4, 9))
}

func TestKeyMapping(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t)
	app := NewApp(screen, s, log.New(io.Discard))
	now := time.Now()

	assert.False(t, app.key(tcell.KeyRight, 0, now))
	assert.Equal(t, 5.0, s.Player.DX)

	assert.False(t, app.key(tcell.KeyRune, 'w', now))
	assert.Equal(t, -5.0, s.Player.DY)

	assert.False(t, app.key(tcell.KeyRune, ' ', now))
	assert.Equal(t, 1, s.Projectiles.Len())

	for _, ev := range app.tracker.Expire(now.Add(time.Second), nil) {
		s.Apply(ev)
	}
	assert.Zero(t, s.Player.DX, "held keys are released after the hold duration")
	assert.Zero(t, s.Player.DY)

	assert.True(t, app.key(tcell.KeyRune, 'q', now))
	assert.True(t, app.key(tcell.KeyEscape, 0, now))
}

func TestAppRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t)
	s := newSession(t)
	app := NewApp(screen, s, log.New(io.Discard))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	res, err := app.Run(ctx)
	require.NoError(t, err)
	assert.Positive(t, res.Frames)
	assert.Equal(t, "Score: 0", rowText(screen, 0, 1, 8))
}
