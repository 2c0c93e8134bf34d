package configwatcher

import (
	"career_path_backend/internal/config"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt:\n  secret: test-secret\ndatabase:\n  driver: sqlite\nserver:\n  mode: debug\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 4)
	require.NoError(t, WatchConfig(ctx, path, func(cfg *config.Config) {
		reloaded <- cfg
	}))

	require.NoError(t, os.WriteFile(path, []byte("jwt:\n  secret: test-secret\ndatabase:\n  driver: sqlite\nserver:\n  mode: debug\n  port: \"9090\"\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "9090", cfg.Server.Port)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "missing", "config.yaml"), func(*config.Config) {})
	assert.Error(t, err)
}
