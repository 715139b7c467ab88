package asset

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/dodger/internal/loop"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "player.png"), 32, 24)
	writePNG(t, filepath.Join(dir, "bullet.png"), 8, 4)

	gate := loop.NewGate(ResourceNames()...)
	set, err := Load(dir, gate, log.New(io.Discard))
	require.NoError(t, err)

	assert.True(t, gate.Ready())
	assert.Equal(t, image.Pt(32, 24), set.Get(Player).Bounds().Size())
	assert.Equal(t, image.Pt(8, 4), set.Get(Projectile).Bounds().Size())
	assert.Equal(t, image.Pt(placeholderSize, placeholderSize), set.Get(Obstacle).Bounds().Size(),
		"missing files fall back to placeholders")
}

func TestLoadWithoutDirectoryUsesPlaceholders(t *testing.T) {
	gate := loop.NewGate(ResourceNames()...)
	set, err := Load("", gate, log.New(io.Discard))
	require.NoError(t, err)

	assert.True(t, gate.Ready())
	for _, n := range Names {
		require.NotNil(t, set.Get(n), n)
	}
	assert.Equal(t, color.RGBAModel.Convert(placeholderColors[Background]), set.Get(Background).At(3, 3))
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "obstacle.png"), []byte("not a png"), 0o644))

	gate := loop.NewGate(ResourceNames()...)
	set, err := Load(dir, gate, log.New(io.Discard))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "obstacle.png")

	assert.False(t, gate.Ready())
	assert.Equal(t, []string{"obstacle"}, gate.Pending())
	assert.Nil(t, set.Get(Obstacle))
	assert.NotNil(t, set.Get(Player))
}

func TestLoadUnknownGateResource(t *testing.T) {
	gate := loop.NewGate("player")
	_, err := Load("", gate, log.New(io.Discard))
	require.Error(t, err)
}

type heldMarker struct {
	release chan struct{}
	gate    *loop.Gate
}

func (m heldMarker) MarkReady(name string) error {
	<-m.release
	return m.gate.MarkReady(name)
}

func TestLoadAsyncReturnsBeforeSpritesAreReady(t *testing.T) {
	gate := loop.NewGate(ResourceNames()...)
	release := make(chan struct{})

	set, errc := LoadAsync("", heldMarker{release: release, gate: gate}, log.New(io.Discard))
	require.NotNil(t, set)
	assert.False(t, gate.Ready())

	close(release)
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loading did not finish")
	}
	assert.True(t, gate.Ready())
	for _, n := range Names {
		assert.NotNil(t, set.Get(n), n)
	}
}

func TestLoadAsyncReportsDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "player.png"), []byte("junk"), 0o644))

	_, errc := LoadAsync(dir, loop.NewGate(ResourceNames()...), log.New(io.Discard))
	select {
	case err := <-errc:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "player.png")
	case <-time.After(2 * time.Second):
		t.Fatal("loading did not finish")
	}
}
