package loop

import (
	"github.com/tomz197/dodger/internal/input"
	"github.com/tomz197/dodger/internal/object"
)

// OnDirectionDown starts player movement in dir.
func (s *Session) OnDirectionDown(dir input.Direction) {
	if s.Over() {
		return
	}
	s.Player.SetVelocity(dir)
}

// OnDirectionUp stops player movement on the axis of dir.
func (s *Session) OnDirectionUp(dir input.Direction) {
	if s.Over() {
		return
	}
	s.Player.ClearVelocity(dir)
}

// OnFire spawns one projectile at the player's muzzle. There is no cooldown.
func (s *Session) OnFire() {
	if s.Over() {
		return
	}
	p := s.cfg.Projectile
	x, y := s.Player.Muzzle(p.Width, p.Height)
	s.Projectiles.Add(object.NewProjectile(x, y, p.Width, p.Height, p.Speed))
}

// Apply dispatches an input event to the matching handler.
// Returns true if the event asks to quit.
func (s *Session) Apply(ev input.Event) (quit bool) {
	switch ev.Kind {
	case input.DirectionDown:
		s.OnDirectionDown(ev.Dir)
	case input.DirectionUp:
		s.OnDirectionUp(ev.Dir)
	case input.Fire:
		s.OnFire()
	case input.Quit:
		return true
	}
	return false
}
