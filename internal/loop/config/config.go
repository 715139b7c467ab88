// Package config centralizes runtime pacing and hosting parameters.
// Gameplay tunables live in internal/config.
package config

import "time"

// Frame pacing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Max render resolution - larger terminals get a centered, bordered play area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Input
const (
	KeyHoldDuration = 250 * time.Millisecond // Terminals report no key-up
)

// Shutdown
const (
	ShutdownDisplay = 10 * time.Second // How long to show the shutdown message before disconnecting
	ShutdownTimeout = 15 * time.Second // How long the SSH server waits for sessions to drain
)

// Inactivity
const (
	InactivityWarnUser       = 90 * time.Second
	InactivityDisconnectUser = 120 * time.Second
)

// Leaderboard
const (
	LeaderboardSize = 5
)
