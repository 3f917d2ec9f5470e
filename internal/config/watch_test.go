package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDeliversReloadedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, DefaultYAML(), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("physics:\n  road_speed: 420\n"), 0o644))

	// A truncating write may surface an intermediate empty file first.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Physics.RoadSpeed != 420 {
				continue
			}
			assert.Equal(t, 150.0, cfg.Physics.MovementSpeed)
			return
		case err := <-w.Errors():
			t.Fatalf("unexpected watch error: %v", err)
		case <-timeout:
			t.Fatal("timed out waiting for config reload")
		}
	}
}

func TestWatchReportsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, DefaultYAML(), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("player:\n  health: 0\n"), 0o644))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case err := <-w.Errors():
			assert.ErrorIs(t, err, ErrInvalid)
			return
		case cfg := <-w.Updates():
			assert.NotZero(t, cfg.Player.Health, "invalid config delivered")
		case <-timeout:
			t.Fatal("timed out waiting for validation error")
		}
	}
}

func TestWatchCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, DefaultYAML(), 0o644))

	w, err := Watch(path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
