package main

import (
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sidescroller/internal/application/replay"
	"github.com/younwookim/sidescroller/internal/application/scene/playing"
	"github.com/younwookim/sidescroller/internal/application/system"
	"github.com/younwookim/sidescroller/internal/infrastructure/config"
)

func embeddedLoader(t *testing.T) *config.Loader {
	t.Helper()
	loader, err := newConfigLoader("")
	require.NoError(t, err)
	return loader
}

// recordSession plays the demo stage with a scripted keyboard and saves the
// recording
func recordSession(t *testing.T, seed int64, script func(tick int) map[ebiten.Key]bool, ticks int) string {
	t.Helper()
	loader := embeddedLoader(t)

	settings, err := loader.LoadSettings()
	require.NoError(t, err)
	stageCfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "replay.json")
	p, err := playing.New(settings, stageCfg, seed, path, nil)
	require.NoError(t, err)

	var held map[ebiten.Key]bool
	p.SetInputSystem(system.NewInputSystemWith(
		func(k ebiten.Key) bool { return held[k] },
		func(ebiten.Key) bool { return false },
		func(ebiten.MouseButton) bool { return false },
	))

	p.OnEnter()
	for i := 0; i < ticks; i++ {
		held = script(i)
		_, err := p.Update()
		require.NoError(t, err)
	}
	p.OnExit()

	return path
}

func walkAndJump(tick int) map[ebiten.Key]bool {
	switch {
	case tick < 40:
		return map[ebiten.Key]bool{ebiten.KeyD: true}
	case tick < 45:
		return map[ebiten.Key]bool{ebiten.KeySpace: true, ebiten.KeyD: true}
	case tick < 90:
		return map[ebiten.Key]bool{ebiten.KeyA: true, ebiten.KeyShiftLeft: true}
	default:
		return nil
	}
}

func TestRunReplay_RecordedSessionVerifies(t *testing.T) {
	path := recordSession(t, 42, walkAndJump, 120)

	res, err := runReplay(embeddedLoader(t), path, nil)
	require.NoError(t, err)
	assert.Equal(t, 120, res.Frames)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, data.Digest, res.Digest)
}

func TestRunReplay_Determinism(t *testing.T) {
	path := recordSession(t, 7, walkAndJump, 60)
	loader := embeddedLoader(t)

	first, err := runReplay(loader, path, nil)
	require.NoError(t, err)
	second, err := runReplay(loader, path, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Digest, second.Digest)
}

func TestRunReplay_TamperedDigest(t *testing.T) {
	path := recordSession(t, 42, walkAndJump, 30)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	data.Digest++
	require.NoError(t, replay.Save(path, *data))

	_, err = runReplay(embeddedLoader(t), path, nil)
	assert.ErrorIs(t, err, replay.ErrDigestMismatch)
}

func TestRunReplay_TamperedInput(t *testing.T) {
	path := recordSession(t, 42, walkAndJump, 30)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	for i := range data.Frames {
		data.Frames[i].R = false
		data.Frames[i].L = true
	}
	require.NoError(t, replay.Save(path, *data))

	_, err = runReplay(embeddedLoader(t), path, nil)
	assert.ErrorIs(t, err, replay.ErrDigestMismatch)
}

func TestRunReplay_MissingFile(t *testing.T) {
	_, err := runReplay(embeddedLoader(t), filepath.Join(t.TempDir(), "nope.json"), nil)
	assert.Error(t, err)
}

func TestPickSeed(t *testing.T) {
	assert.Equal(t, int64(5), pickSeed(5, 9))
	assert.Equal(t, int64(9), pickSeed(0, 9))
	assert.NotZero(t, pickSeed(0, 0))
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger("debug")
	assert.NoError(t, err)

	_, err = newLogger("loud")
	assert.Error(t, err)
}
