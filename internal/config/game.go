package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid game config")

// Environment variables recognised by FromEnv.
const (
	EnvConfigPath = "DODGER_CONFIG"
	EnvSeed       = "DODGER_SEED"
)

// Game holds every tunable of a play session. All sizes and speeds are in
// logical canvas units; speeds are per tick.
type Game struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacle   ObstacleConfig   `yaml:"obstacle"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Scoring    ScoringConfig    `yaml:"scoring"`

	// Seed for obstacle placement. Zero picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// CanvasConfig is the playfield size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig describes the player ship. The ship starts at StartX,
// vertically centered.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	StartX float64 `yaml:"startX"`
}

// ObstacleConfig describes spawned obstacles.
type ObstacleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	SpawnFrequency int     `yaml:"spawnFrequency"` // Spawn every N frames
}

// ProjectileConfig describes projectiles fired by the player.
type ProjectileConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// ScoringConfig holds score increments.
type ScoringConfig struct {
	Dodged    int `yaml:"dodged"`    // Obstacle scrolled off the left edge
	Destroyed int `yaml:"destroyed"` // Obstacle hit by a projectile
}

// Default returns the classic tuning: 800x600 canvas, 50x50 ship and obstacles.
func Default() Game {
	return Game{
		Canvas: CanvasConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Width:  50,
			Height: 50,
			Speed:  5,
			StartX: 50,
		},
		Obstacle: ObstacleConfig{
			Width:          50,
			Height:         50,
			Speed:          4,
			SpawnFrequency: 90,
		},
		Projectile: ProjectileConfig{
			Width:  10,
			Height: 5,
			Speed:  7,
		},
		Scoring: ScoringConfig{
			Dodged:    1,
			Destroyed: 10,
		},
	}
}

// PlayerStart returns the initial top-left position of the player.
func (g Game) PlayerStart() (x, y float64) {
	return g.Player.StartX, g.Canvas.Height/2 - g.Player.Height/2
}

// Validate checks that the configuration describes a playable session.
func (g Game) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"canvas.width", g.Canvas.Width},
		{"canvas.height", g.Canvas.Height},
		{"player.width", g.Player.Width},
		{"player.height", g.Player.Height},
		{"player.speed", g.Player.Speed},
		{"obstacle.width", g.Obstacle.Width},
		{"obstacle.height", g.Obstacle.Height},
		{"obstacle.speed", g.Obstacle.Speed},
		{"projectile.width", g.Projectile.Width},
		{"projectile.height", g.Projectile.Height},
		{"projectile.speed", g.Projectile.Speed},
	}
	for _, p := range positive {
		if !finite(p.value) || p.value <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, p.name, p.value)
		}
	}

	if g.Obstacle.SpawnFrequency <= 0 {
		return fmt.Errorf("%w: obstacle.spawnFrequency must be > 0, got %d", ErrInvalidConfig, g.Obstacle.SpawnFrequency)
	}
	if g.Player.Width > g.Canvas.Width || g.Player.Height > g.Canvas.Height {
		return fmt.Errorf("%w: player %vx%v does not fit canvas %vx%v",
			ErrInvalidConfig, g.Player.Width, g.Player.Height, g.Canvas.Width, g.Canvas.Height)
	}
	if g.Obstacle.Height > g.Canvas.Height {
		return fmt.Errorf("%w: obstacle.height %v exceeds canvas.height %v",
			ErrInvalidConfig, g.Obstacle.Height, g.Canvas.Height)
	}
	if !finite(g.Player.StartX) || g.Player.StartX < 0 || g.Player.StartX+g.Player.Width > g.Canvas.Width {
		return fmt.Errorf("%w: player.startX %v places the ship outside the canvas", ErrInvalidConfig, g.Player.StartX)
	}
	if g.Scoring.Dodged < 0 || g.Scoring.Destroyed < 0 {
		return fmt.Errorf("%w: scoring increments must be >= 0", ErrInvalidConfig)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Load reads a YAML file on top of the defaults and validates the result.
// Keys missing from the file keep their default values.
func Load(path string) (Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Game{}, fmt.Errorf("read game config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Game, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Game{}, fmt.Errorf("parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// FromEnv loads the file named by DODGER_CONFIG (defaults when unset) and
// applies DODGER_SEED.
func FromEnv() (Game, error) {
	cfg := Default()
	if path := GetEnv(EnvConfigPath, ""); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Game{}, err
		}
		cfg = loaded
	}

	seed, err := GetEnvInt64(EnvSeed, cfg.Seed)
	if err != nil {
		return Game{}, err
	}
	cfg.Seed = seed

	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}
