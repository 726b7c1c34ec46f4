package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termbrot/api/v1beta1/configs"
	"github.com/macropower/termbrot/pkg/config"
)

func TestWatcher(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(header), 0o600))

	reloaded := make(chan *configs.Config, 8)

	w, err := config.NewWatcher(path, func(cfg *configs.Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, w.Close())
	})

	go w.Run(t.Context())

	// Other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600))

	// Invalid content is skipped.
	require.NoError(t, os.WriteFile(path, []byte(header+"ui:\n  colour: red\n"), 0o600))

	require.NoError(t, os.WriteFile(path, []byte(header+"ui:\n  title: Reloaded\n"), 0o600))

	require.Eventually(t, func() bool {
		select {
		case cfg := <-reloaded:
			return cfg.UI.Title == "Reloaded"
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNewWatcher_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := config.NewWatcher(filepath.Join(t.TempDir(), "missing", "config.yaml"), func(*configs.Config) {})
	require.Error(t, err)
}
