package client

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gameconfig "github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/loop/server"
)

func termSize() (int, int, error) { return 80, 24, nil }

func TestClientRegistersAndUnregisters(t *testing.T) {
	host := server.NewServer(log.New(io.Discard), 5)
	var out bytes.Buffer

	c := NewClient(host, bufio.NewReader(strings.NewReader("q")), &out, ClientOptions{
		TermSizeFunc: termSize,
		Username:     "alice",
		Logger:       log.New(io.Discard),
	})
	require.Equal(t, 1, host.Active())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := c.Run(ctx)
	require.NoError(t, err)
	assert.False(t, res.Over)
	assert.Zero(t, host.Active())
}

func TestClientRejectsInvalidGame(t *testing.T) {
	host := server.NewServer(log.New(io.Discard), 5)
	game := gameconfig.Default()
	game.Canvas.Width = -1

	c := NewClient(host, bufio.NewReader(strings.NewReader("")), io.Discard, ClientOptions{
		TermSizeFunc: termSize,
		Game:         game,
		Logger:       log.New(io.Discard),
	})

	_, err := c.Run(context.Background())
	require.ErrorIs(t, err, gameconfig.ErrInvalidConfig)
	assert.Zero(t, host.Active())
}

func TestClientStopsOnServerShutdown(t *testing.T) {
	host := server.NewServer(log.New(io.Discard), 5)
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	c := NewClient(host, bufio.NewReader(pr), io.Discard, ClientOptions{
		TermSizeFunc: termSize,
		Username:     "bob",
		Logger:       log.New(io.Discard),
	})

	done := make(chan error, 1)
	go func() {
		_, err := c.Run(context.Background())
		done <- err
	}()

	// Shutdown waits for the client, which shows the notice for ShutdownDisplay.
	host.Shutdown(30 * time.Second)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(30 * time.Second):
		t.Fatal("client did not stop")
	}
	assert.Zero(t, host.Active())
}

func TestLeaderboardLines(t *testing.T) {
	host := server.NewServer(log.New(io.Discard), 5)
	c := NewClient(host, bufio.NewReader(strings.NewReader("")), io.Discard, ClientOptions{
		Username: "carol",
		Logger:   log.New(io.Discard),
	})
	host.ReportScore(c.handle.ID, 11)

	assert.Equal(t, []string{"1. carol            11"}, c.leaderboardLines())
}
