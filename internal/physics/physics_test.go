package physics

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 10, 10}, Rect{0, 0, 10, 10}, true},
		{"partial", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{10, 10, 5, 5}, true},
		{"shared vertical edge", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"shared horizontal edge", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"shared corner", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, false},
		{"apart on x", Rect{0, 0, 10, 10}, Rect{20, 0, 10, 10}, false},
		{"apart on y", Rect{0, 0, 10, 10}, Rect{0, 20, 10, 10}, false},
		{"projectile into obstacle", Rect{100, 300, 10, 5}, Rect{105, 298, 50, 50}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.want, Overlaps(tc.b, tc.a), "overlap must be symmetric")
		})
	}
}

func TestOverlapsSymmetricRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	randRect := func() Rect {
		return Rect{
			X:      rng.Float64()*200 - 100,
			Y:      rng.Float64()*200 - 100,
			Width:  rng.Float64() * 60,
			Height: rng.Float64() * 60,
		}
	}
	for i := 0; i < 1000; i++ {
		a, b := randRect(), randRect()
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("asymmetric overlap for %+v and %+v", a, b)
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(12, 0, 10))
	assert.Equal(t, 4.5, Clamp(4.5, 0, 10))
}
