package server

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(size int) *Server {
	return NewServer(log.New(io.Discard), size)
}

func TestRegisterAssignsIDs(t *testing.T) {
	s := newTestServer(5)

	a := s.Register("alice")
	b := s.Register("bob")

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 2, s.Active())

	s.Unregister(a.ID)
	s.Unregister(a.ID)
	assert.Equal(t, 1, s.Active())

	_, open := <-a.EventsCh
	assert.False(t, open, "events channel is closed on unregister")
}

func TestReportScoreFillsLeaderboard(t *testing.T) {
	s := newTestServer(2)
	a := s.Register("alice")
	b := s.Register("bob")
	c := s.Register("carol")

	s.ReportScore(a.ID, 10)
	s.ReportScore(b.ID, 30)
	s.ReportScore(c.ID, 20)
	s.ReportScore(99, 1000)

	top := s.TopScores()
	require.Len(t, top, 2)
	assert.Equal(t, "bob", top[0].Username)
	assert.Equal(t, "carol", top[1].Username)
}

func TestLeaderboardTieKeepsEarlierSession(t *testing.T) {
	l := NewLeaderboard(2)

	assert.True(t, l.Submit(ScoreEntry{Username: "late", Score: 5, sessionID: 7}))
	assert.True(t, l.Submit(ScoreEntry{Username: "early", Score: 5, sessionID: 3}))
	assert.False(t, l.Submit(ScoreEntry{Username: "later", Score: 5, sessionID: 9}))

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "early", entries[0].Username)
	assert.Equal(t, "late", entries[1].Username)
}

func TestScoreEntryString(t *testing.T) {
	assert.Equal(t, "alice            42", ScoreEntry{Username: "alice", Score: 42}.String())
}

func TestShutdownNotifiesAndWaits(t *testing.T) {
	s := newTestServer(5)
	h := s.Register("alice")

	go func() {
		ev := <-h.EventsCh
		if ev.Type == EventServerShutdown {
			s.Unregister(h.ID)
		}
	}()

	start := time.Now()
	s.Shutdown(5 * time.Second)

	assert.Zero(t, s.Active())
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestShutdownTimesOut(t *testing.T) {
	s := newTestServer(5)
	s.Register("stuck")

	s.Shutdown(20 * time.Millisecond)

	assert.Equal(t, 1, s.Active())
}
