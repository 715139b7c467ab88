package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateOpensWhenAllReady(t *testing.T) {
	g := NewGate("player", "obstacle")
	assert.False(t, g.Ready())
	assert.Equal(t, []string{"obstacle", "player"}, g.Pending())

	require.NoError(t, g.MarkReady("player"))
	require.NoError(t, g.MarkReady("player"))
	assert.False(t, g.Ready())

	require.NoError(t, g.MarkReady("obstacle"))
	assert.True(t, g.Ready())
	assert.Empty(t, g.Pending())

	select {
	case <-g.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestGateEmptyIsReady(t *testing.T) {
	assert.True(t, NewGate().Ready())
}

func TestGateUnknownResource(t *testing.T) {
	g := NewGate("player")
	assert.Error(t, g.MarkReady("boss"))
}

func TestGateWait(t *testing.T) {
	g := NewGate("background")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := g.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "background")

	go func() {
		_ = g.MarkReady("background")
	}()
	require.NoError(t, g.Wait(context.Background()))
}
