package loop

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/dodger/internal/config"
	"github.com/tomz197/dodger/internal/object"
)

// GameState represents the current phase of a session.
type GameState int

const (
	GameStateActive GameState = iota // Simulation running
	GameStateOver                    // An obstacle hit the player; terminal
)

func (s GameState) String() string {
	switch s {
	case GameStateActive:
		return "active"
	case GameStateOver:
		return "over"
	default:
		return "unknown"
	}
}

// Session owns all state of one game: the player, both entity pools and the
// counters. Every mutation happens inside Tick or the input handlers, which
// the driver calls from a single goroutine.
type Session struct {
	Screen      object.Screen
	Player      *object.Player
	Obstacles   object.Pool[*object.Obstacle]
	Projectiles object.Pool[*object.Projectile]

	Score   int       // Never decreases
	Frames  int       // Ticks simulated while active
	Spawned int       // Obstacles created so far
	State   GameState // Active until the first player hit

	cfg     config.Game
	spawner *object.ObstacleSpawner
	logger  *log.Logger
}

type sessionOptions struct {
	logger *log.Logger
	rng    object.RandomSource
}

// SessionOption customizes a Session.
type SessionOption func(*sessionOptions)

// WithLogger sets the logger used for session events.
func WithLogger(logger *log.Logger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = logger
	}
}

// WithRandom sets the random source used for obstacle placement.
func WithRandom(rng object.RandomSource) SessionOption {
	return func(o *sessionOptions) {
		o.rng = rng
	}
}

// NewSession validates cfg and creates an active session with the player at
// its start position and both pools empty.
func NewSession(cfg config.Game, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := sessionOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.Default()
	}
	if o.rng == nil {
		seed := uint64(cfg.Seed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	x, y := cfg.PlayerStart()
	s := &Session{
		Screen: object.Screen{Width: cfg.Canvas.Width, Height: cfg.Canvas.Height},
		Player: object.NewPlayer(x, y, cfg.Player.Width, cfg.Player.Height, cfg.Player.Speed),
		State:  GameStateActive,
		cfg:    cfg,
		spawner: object.NewObstacleSpawner(
			cfg.Obstacle.SpawnFrequency,
			cfg.Obstacle.Width,
			cfg.Obstacle.Height,
			cfg.Obstacle.Speed,
			o.rng,
		),
		logger: o.logger,
	}
	return s, nil
}

// Over reports whether the session has reached its terminal state.
func (s *Session) Over() bool {
	return s.State == GameStateOver
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.Game {
	return s.cfg
}

// award adds points to the score. Increments are validated non-negative.
func (s *Session) award(points int) {
	s.Score += points
}

// endGame performs the one-way transition to GameStateOver.
func (s *Session) endGame() {
	if s.State == GameStateOver {
		return
	}
	s.State = GameStateOver
	s.logger.Info("game over", "score", s.Score, "frames", s.Frames, "spawned", s.Spawned)
}
