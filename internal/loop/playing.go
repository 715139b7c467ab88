package loop

import (
	"github.com/tomz197/dodger/internal/object"
	"github.com/tomz197/dodger/internal/physics"
)

// Tick advances the simulation by one frame. Once the session is over it
// returns without touching any state.
//
// Order: frame counter, player movement, obstacle pass (including the
// spawn check), projectile pass. A tick always runs to completion, even if
// the player is hit part-way through it.
func (s *Session) Tick() {
	if s.Over() {
		return
	}

	s.Frames++
	s.Player.Update(s.Screen)
	s.updateObstacles()
	s.updateProjectiles()
}

// updateObstacles moves obstacles, scores the ones that left the screen and
// detects player hits. Both checks use the same post-move position; the
// off-screen check runs first.
func (s *Session) updateObstacles() {
	s.Obstacles.Advance()

	player := s.Player.Rect()
	s.Obstacles.Retain(func(o *object.Obstacle) bool {
		gone := o.OffScreen()
		if gone {
			s.award(s.cfg.Scoring.Dodged)
		}
		// The obstacle stays in place on a hit; the session freezes.
		if physics.Overlaps(player, o.Rect()) {
			s.endGame()
		}
		return !gone
	})

	if o, ok := s.spawner.MaybeSpawn(s.Frames, s.Screen); ok {
		s.Obstacles.Add(o)
		s.Spawned++
		s.logger.Debug("obstacle spawned", "frame", s.Frames, "y", o.Y)
	}
}

// updateProjectiles moves projectiles, drops the ones past the right edge and
// resolves projectile/obstacle hits.
func (s *Session) updateProjectiles() {
	s.Projectiles.Advance()

	s.Projectiles.Retain(func(p *object.Projectile) bool {
		if p.OffScreen(s.Screen) {
			return false
		}
		return !s.checkProjectileHit(p)
	})
}
