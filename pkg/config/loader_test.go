package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termbrot/api/v1beta1/configs"
	"github.com/macropower/termbrot/pkg/config"
	"github.com/macropower/termbrot/pkg/viewport"
	"github.com/macropower/termbrot/pkg/yaml"
)

const header = "apiVersion: termbrot.macropower.dev/v1beta1\nkind: Configuration\n"

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check       func(t *testing.T, cfg *configs.Config)
		input       string
		errContains string
	}{
		"minimal": {
			input: header,
			check: func(t *testing.T, cfg *configs.Config) {
				t.Helper()

				assert.Equal(t, "Mandelbrot Set", cfg.UI.Title)
				assert.Equal(t, 1, cfg.Render.Workers)

				vp, err := cfg.Viewport.Resolve()
				require.NoError(t, err)
				assert.Equal(t, viewport.Default, vp)
			},
		},
		"partial sections": {
			input: header + "ui:\n  title: Hello\nviewport:\n  startX: -1\nrender:\n  workers: 4\n",
			check: func(t *testing.T, cfg *configs.Config) {
				t.Helper()

				assert.Equal(t, "Hello", cfg.UI.Title)
				assert.NotNil(t, cfg.UI.KeyBinds.Quit)
				assert.Equal(t, 4, cfg.Render.Workers)

				vp, err := cfg.Viewport.Resolve()
				require.NoError(t, err)
				assert.InDelta(t, -1.0, vp.StartX, 0)
				assert.InDelta(t, viewport.Default.EndX, vp.EndX, 0)
			},
		},
		"custom key": {
			input: header + "ui:\n  keyBinds:\n    zoomIn:\n      keys:\n        - code: \"+\"\n",
			check: func(t *testing.T, cfg *configs.Config) {
				t.Helper()

				assert.Equal(t, viewport.ActionZoomIn, cfg.UI.KeyBinds.Action("+"))
				assert.Equal(t, "zoom in", cfg.UI.KeyBinds.ZoomIn.Description)
			},
		},
		"region": {
			input: header + "viewport:\n  region: seahorse-valley\n",
			check: func(t *testing.T, cfg *configs.Config) {
				t.Helper()

				vp, err := cfg.Viewport.Resolve()
				require.NoError(t, err)
				assert.Equal(t, viewport.Regions["seahorse-valley"], vp)
			},
		},
		"missing apiVersion": {
			input:       "kind: Configuration\n",
			errContains: "apiVersion",
		},
		"wrong kind": {
			input:       "apiVersion: termbrot.macropower.dev/v1beta1\nkind: Policy\n",
			errContains: "kind",
		},
		"unknown field": {
			input:       header + "ui:\n  colour: red\n",
			errContains: "colour",
		},
		"wrong type": {
			input:       header + "render:\n  workers: many\n",
			errContains: "$.render.workers",
		},
		"syntax error": {
			input:       header + "ui: [\n",
			errContains: "ui",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			l := config.NewLoaderFromBytes([]byte(tc.input), configs.New, configs.DefaultValidator)

			cfg, err := l.Load()
			if tc.errContains != "" {
				var yamlErr *yaml.Error
				require.ErrorAs(t, err, &yamlErr)
				assert.Contains(t, err.Error(), tc.errContains)

				return
			}

			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, configs.New(), cfg)
	})

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(writeConfig(t, header+"ui:\n  title: From File\n"))
		require.NoError(t, err)
		assert.Equal(t, "From File", cfg.UI.Title)
	})

	t.Run("semantic error", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(writeConfig(t, header+"viewport:\n  startX: 1\n  endX: 0\n"))
		require.ErrorIs(t, err, viewport.ErrInvalidViewport)
	})

	t.Run("duplicate keys", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(writeConfig(t,
			header+"ui:\n  keyBinds:\n    panLeft:\n      keys:\n        - code: q\n"))
		require.ErrorContains(t, err, `"q" is bound to both`)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(t.TempDir())
		require.Error(t, err)
	})
}

func TestLoader_DefaultFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	written, err := configs.WriteDefault(path)
	require.NoError(t, err)
	require.True(t, written)

	l, err := config.NewLoaderFromFile(path, configs.New, configs.DefaultValidator)
	require.NoError(t, err)

	cfg, err := l.Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	got, err := cfg.MarshalYAML()
	require.NoError(t, err)

	want, err := configs.New().MarshalYAML()
	require.NoError(t, err)

	assert.YAMLEq(t, string(want), string(got))
}
