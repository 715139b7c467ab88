package object

// RandomSource yields uniform values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64
}

// ObstacleSpawner creates obstacles at a fixed frame interval.
type ObstacleSpawner struct {
	Frequency     int // Spawn every Frequency frames
	Width, Height float64
	Speed         float64
	rng           RandomSource
}

// NewObstacleSpawner creates a spawner. frequency must be positive.
func NewObstacleSpawner(frequency int, width, height, speed float64, rng RandomSource) *ObstacleSpawner {
	return &ObstacleSpawner{
		Frequency: frequency,
		Width:     width,
		Height:    height,
		Speed:     speed,
		rng:       rng,
	}
}

// Due reports whether an obstacle spawns on the given frame.
func (s *ObstacleSpawner) Due(frame int) bool {
	return frame%s.Frequency == 0
}

// Spawn creates an obstacle at the right edge of screen with a uniformly
// random vertical offset that keeps it fully on screen.
func (s *ObstacleSpawner) Spawn(screen Screen) *Obstacle {
	y := s.rng.Float64() * (screen.Height - s.Height)
	return NewObstacle(screen.Width, y, s.Width, s.Height, s.Speed)
}

// MaybeSpawn spawns an obstacle if one is due on frame.
func (s *ObstacleSpawner) MaybeSpawn(frame int, screen Screen) (*Obstacle, bool) {
	if !s.Due(frame) {
		return nil, false
	}
	return s.Spawn(screen), true
}
