package server

import (
	"fmt"
	"sort"
	"sync"
)

// ScoreEntry represents a single entry on the leaderboard.
type ScoreEntry struct {
	Username  string
	Score     int
	sessionID int // Used for deterministic tie-break when scores are equal
}

func (e ScoreEntry) String() string {
	return fmt.Sprintf("%-12s %6d", e.Username, e.Score)
}

// Leaderboard keeps the best scores reported since the process started.
// It is safe for concurrent use.
type Leaderboard struct {
	mu      sync.Mutex
	size    int
	entries []ScoreEntry
}

// NewLeaderboard creates a leaderboard holding at most size entries.
func NewLeaderboard(size int) *Leaderboard {
	if size < 1 {
		size = 1
	}
	return &Leaderboard{size: size}
}

// Submit records an entry. Returns true if it made the board.
// Equal scores keep the earlier session first.
func (l *Leaderboard) Submit(e ScoreEntry) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == l.size && !better(e, l.entries[len(l.entries)-1]) {
		return false
	}

	l.entries = append(l.entries, e)
	sort.SliceStable(l.entries, func(i, j int) bool {
		return better(l.entries[i], l.entries[j])
	})
	if len(l.entries) > l.size {
		l.entries = l.entries[:l.size]
	}
	return true
}

// Entries returns a copy of the board, best first.
func (l *Leaderboard) Entries() []ScoreEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]ScoreEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func better(a, b ScoreEntry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.sessionID < b.sessionID
}
