package loop

import (
	"github.com/tomz197/dodger/internal/object"
	"github.com/tomz197/dodger/internal/physics"
)

// checkProjectileHit scans obstacles in insertion order and destroys the first
// one that overlaps p. A projectile destroys at most one obstacle per tick.
// Returns true if p hit something and must be removed.
func (s *Session) checkProjectileHit(p *object.Projectile) bool {
	rect := p.Rect()
	for i, o := range s.Obstacles.Items() {
		if !physics.Overlaps(rect, o.Rect()) {
			continue
		}
		s.Obstacles.RemoveAt(i)
		s.award(s.cfg.Scoring.Destroyed)
		s.logger.Debug("obstacle destroyed", "frame", s.Frames, "score", s.Score)
		return true
	}
	return false
}
