package loop

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Gate blocks the game from starting until every named resource is ready.
// It is safe for concurrent use.
type Gate struct {
	mu      sync.Mutex
	ready   map[string]bool
	pending int
	done    chan struct{}
}

// NewGate creates a gate waiting on the given resources. A gate with no
// resources is ready immediately.
func NewGate(resources ...string) *Gate {
	g := &Gate{
		ready: make(map[string]bool, len(resources)),
		done:  make(chan struct{}),
	}
	for _, name := range resources {
		if _, dup := g.ready[name]; dup {
			continue
		}
		g.ready[name] = false
		g.pending++
	}
	if g.pending == 0 {
		close(g.done)
	}
	return g
}

// MarkReady records that a resource has finished loading. Marking the same
// resource twice is a no-op; unknown names are an error.
func (g *Gate) MarkReady(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	isReady, ok := g.ready[name]
	if !ok {
		return fmt.Errorf("gate: unknown resource %q", name)
	}
	if isReady {
		return nil
	}
	g.ready[name] = true
	g.pending--
	if g.pending == 0 {
		close(g.done)
	}
	return nil
}

// Ready reports whether every resource is ready.
func (g *Gate) Ready() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed once every resource is ready.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}

// Wait blocks until the gate opens or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for resources %v: %w", g.Pending(), ctx.Err())
	}
}

// Pending returns the names of resources not yet ready, sorted.
func (g *Gate) Pending() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var names []string
	for name, isReady := range g.ready {
		if !isReady {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
