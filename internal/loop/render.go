package loop

import "github.com/tomz197/dodger/internal/object"

// View is what a renderer needs to draw one frame. It is a copy of the
// session state, so later ticks do not change it.
type View struct {
	Screen      object.Screen
	Player      *object.Player
	Obstacles   []*object.Obstacle
	Projectiles []*object.Projectile
	Score       int
	Frames      int
	Over        bool
}

// Renderer draws views. Implementations own all output resources.
type Renderer interface {
	Render(v View) error
}

// View returns a snapshot of the current frame for rendering.
func (s *Session) View() View {
	player := *s.Player
	return View{
		Screen:      s.Screen,
		Player:      &player,
		Obstacles:   cloneAll(s.Obstacles.Items()),
		Projectiles: cloneAll(s.Projectiles.Items()),
		Score:       s.Score,
		Frames:      s.Frames,
		Over:        s.Over(),
	}
}

func cloneAll[T any](items []*T) []*T {
	out := make([]*T, len(items))
	for i, item := range items {
		c := *item
		out[i] = &c
	}
	return out
}
