// Package client runs one player's game over a terminal connection hosted by
// a server.
package client

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	gameconfig "github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/draw"
	"github.com/tomz197/dodger/internal/loop"
	"github.com/tomz197/dodger/internal/loop/config"
	"github.com/tomz197/dodger/internal/loop/server"
)

// Client handles input, rendering and the game session for a single connection.
type Client struct {
	host         server.Host
	handle       *server.SessionHandle
	reader       io.ByteReader
	writer       io.Writer
	game         gameconfig.Game
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Game         gameconfig.Game // Zero value means gameconfig.Default()
	Logger       *log.Logger
}

// NewClient creates a new client registered with the given host.
func NewClient(host server.Host, r io.ByteReader, w io.Writer, opts ClientOptions) *Client {
	game := opts.Game
	if game == (gameconfig.Game{}) {
		game = gameconfig.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	handle := host.Register(opts.Username)

	return &Client{
		host:         host,
		handle:       handle,
		reader:       r,
		writer:       w,
		game:         game,
		termSizeFunc: opts.TermSizeFunc,
		logger:       logger.With("session", handle.ID, "user", handle.Username),
	}
}

// Run plays one game. Blocks until the player quits, goes idle, the server
// shuts down or ctx is cancelled. The client is unregistered on return.
func (c *Client) Run(ctx context.Context) (loop.Result, error) {
	defer c.host.Unregister(c.handle.ID)

	session, err := loop.NewSession(c.game, loop.WithLogger(c.logger))
	if err != nil {
		return loop.Result{}, fmt.Errorf("new session: %w", err)
	}

	shutdown := make(chan struct{})
	go c.watchEvents(shutdown)

	res, err := loop.Run(ctx, c.reader, c.writer, session, loop.Options{
		TermSizeFunc:      c.termSizeFunc,
		Logger:            c.logger,
		Shutdown:          shutdown,
		InactivityWarning: config.InactivityWarnUser,
		InactivityTimeout: config.InactivityDisconnectUser,
		OnGameOver: func(r loop.Result) {
			c.host.ReportScore(c.handle.ID, r.Score)
		},
		Leaderboard: c.leaderboardLines,
	})
	if err != nil {
		return res, fmt.Errorf("run session: %w", err)
	}
	return res, nil
}

// watchEvents closes shutdown when the server announces it is going down.
// Returns once the host closes the events channel.
func (c *Client) watchEvents(shutdown chan<- struct{}) {
	closed := false
	for ev := range c.handle.EventsCh {
		if ev.Type == server.EventServerShutdown && !closed {
			close(shutdown)
			closed = true
		}
	}
}

// leaderboardLines formats the host's top scores for the game-over screen.
func (c *Client) leaderboardLines() []string {
	top := c.host.TopScores()
	lines := make([]string, 0, len(top))
	for i, e := range top {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, e))
	}
	return lines
}
