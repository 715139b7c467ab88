package object

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/dodger/internal/input"
)

var testScreen = Screen{Width: 800, Height: 600}

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func TestPlayerVelocity(t *testing.T) {
	p := NewPlayer(50, 275, 50, 50, 5)

	p.SetVelocity(input.Up)
	assert.Equal(t, -5.0, p.DY)
	p.SetVelocity(input.Down)
	assert.Equal(t, 5.0, p.DY, "opposite key overwrites")

	p.SetVelocity(input.Left)
	assert.Equal(t, -5.0, p.DX)
	assert.Equal(t, 5.0, p.DY, "axes are independent")

	p.ClearVelocity(input.Up)
	assert.Equal(t, 0.0, p.DY, "key-up zeroes the axis even for the other key")
	p.ClearVelocity(input.Up)
	assert.Equal(t, 0.0, p.DY, "clearing twice is idempotent")

	p.ClearVelocity(input.Right)
	assert.Equal(t, 0.0, p.DX)
}

func TestPlayerUpdateMovesAndClamps(t *testing.T) {
	p := NewPlayer(50, 275, 50, 50, 5)
	p.SetVelocity(input.Right)
	p.SetVelocity(input.Up)

	p.Update(testScreen)
	assert.Equal(t, 55.0, p.X)
	assert.Equal(t, 270.0, p.Y)

	for i := 0; i < 1000; i++ {
		p.Update(testScreen)
	}
	assert.Equal(t, 750.0, p.X)
	assert.Equal(t, 0.0, p.Y)

	p.SetVelocity(input.Left)
	p.SetVelocity(input.Down)
	for i := 0; i < 1000; i++ {
		p.Update(testScreen)
	}
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 550.0, p.Y)
}

func TestPlayerStaysInBoundsRandomInput(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	p := NewPlayer(50, 275, 50, 50, 23)

	for i := 0; i < 5000; i++ {
		dir := input.Directions[rng.IntN(len(input.Directions))]
		if rng.IntN(2) == 0 {
			p.SetVelocity(dir)
		} else {
			p.ClearVelocity(dir)
		}
		p.Update(testScreen)

		require.GreaterOrEqual(t, p.X, 0.0)
		require.LessOrEqual(t, p.X, testScreen.Width-p.Width)
		require.GreaterOrEqual(t, p.Y, 0.0)
		require.LessOrEqual(t, p.Y, testScreen.Height-p.Height)
	}
}

func TestPlayerMuzzle(t *testing.T) {
	p := NewPlayer(50, 275, 50, 50, 5)
	x, y := p.Muzzle(10, 5)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 297.5, y)
}

func TestObstacleOffScreen(t *testing.T) {
	o := NewObstacle(-10, 0, 50, 50, 4)
	assert.False(t, o.OffScreen(), "x+width = 40 is still visible")

	o.X = -50
	assert.False(t, o.OffScreen(), "x+width = 0 touches the edge")

	o.X = -51
	assert.True(t, o.OffScreen())
}

func TestProjectileOffScreen(t *testing.T) {
	p := NewProjectile(795, 0, 10, 5, 7)
	assert.False(t, p.OffScreen(testScreen))
	p.Advance()
	assert.Equal(t, 802.0, p.X)
	assert.True(t, p.OffScreen(testScreen))
}

func TestPoolRetainVisitsEachOnce(t *testing.T) {
	var pool Pool[*Obstacle]
	for i := 0; i < 6; i++ {
		pool.Add(NewObstacle(float64(i), 0, 1, 1, 1))
	}

	visited := map[*Obstacle]int{}
	pool.Retain(func(o *Obstacle) bool {
		visited[o]++
		return int(o.X)%2 == 0
	})

	assert.Len(t, visited, 6)
	for _, n := range visited {
		assert.Equal(t, 1, n)
	}
	require.Equal(t, 3, pool.Len())
	assert.Equal(t, []float64{0, 2, 4}, []float64{pool.Items()[0].X, pool.Items()[1].X, pool.Items()[2].X})
}

func TestPoolAdvanceAndRemoveAt(t *testing.T) {
	var pool Pool[*Projectile]
	pool.Add(NewProjectile(0, 0, 1, 1, 7))
	pool.Add(NewProjectile(10, 0, 1, 1, 7))
	pool.Add(NewProjectile(20, 0, 1, 1, 7))

	pool.Advance()
	removed := pool.RemoveAt(1)

	assert.Equal(t, 17.0, removed.X)
	require.Equal(t, 2, pool.Len())
	assert.Equal(t, 7.0, pool.Items()[0].X)
	assert.Equal(t, 27.0, pool.Items()[1].X)

	pool.Clear()
	assert.Equal(t, 0, pool.Len())
}

func TestSpawnerFrequency(t *testing.T) {
	s := NewObstacleSpawner(90, 50, 50, 4, fixedRandom(0.5))

	spawned := 0
	for frame := 1; frame <= 900; frame++ {
		if _, ok := s.MaybeSpawn(frame, testScreen); ok {
			spawned++
		}
	}
	assert.Equal(t, 10, spawned)
}

func TestSpawnerPlacement(t *testing.T) {
	s := NewObstacleSpawner(90, 50, 50, 4, fixedRandom(0.5))
	o := s.Spawn(testScreen)

	assert.Equal(t, 800.0, o.X)
	assert.Equal(t, 275.0, o.Y)
	assert.Equal(t, 4.0, o.Speed)

	top := NewObstacleSpawner(90, 50, 50, 4, fixedRandom(0)).Spawn(testScreen)
	assert.Equal(t, 0.0, top.Y)

	rng := rand.New(rand.NewPCG(5, 6))
	s = NewObstacleSpawner(1, 50, 50, 4, rng)
	for i := 0; i < 500; i++ {
		o := s.Spawn(testScreen)
		require.GreaterOrEqual(t, o.Y, 0.0)
		require.LessOrEqual(t, o.Y, testScreen.Height-o.Height)
	}
}
