package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/termbrot/internal/cli"
)

//nolint:paralleltest // Sets environment variables.
func TestBindEnvVars(t *testing.T) {
	tcs := map[string]struct {
		envVars     map[string]string
		args        []string
		wantLevel   string
		wantRegion  string
		wantWorkers int
	}{
		"environment variables are bound when no args provided": {
			envVars: map[string]string{
				"TERMBROT_LOG_LEVEL": "debug",
				"TERMBROT_REGION":    "triple-spiral",
				"TERMBROT_WORKERS":   "3",
			},
			wantLevel:   "debug",
			wantRegion:  "triple-spiral",
			wantWorkers: 3,
		},
		"command line args take precedence over environment variables": {
			envVars: map[string]string{
				"TERMBROT_LOG_LEVEL": "debug",
				"TERMBROT_WORKERS":   "3",
			},
			args:        []string{"--log-level", "error", "--workers", "8"},
			wantLevel:   "error",
			wantWorkers: 8,
		},
		"invalid values keep the default": {
			envVars: map[string]string{
				"TERMBROT_WORKERS": "lots",
			},
			wantLevel: "info",
		},
		"no environment variables uses defaults": {
			wantLevel: "info",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			for key, val := range tc.envVars {
				t.Setenv(key, val)
			}

			cmd := cli.NewRootCmd()
			require.NoError(t, cmd.ParseFlags(tc.args))

			level, err := cmd.Flags().GetString("log-level")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLevel, level)

			region, err := cmd.Flags().GetString("region")
			require.NoError(t, err)
			assert.Equal(t, tc.wantRegion, region)

			workers, err := cmd.Flags().GetInt("workers")
			require.NoError(t, err)
			assert.Equal(t, tc.wantWorkers, workers)
		})
	}
}

func TestEnvironmentVariableUsageUpdate(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCmd()

	logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Contains(t, logLevelFlag.Usage, "$TERMBROT_LOG_LEVEL")

	configFlag := cmd.Flags().Lookup("write-config")
	require.NotNil(t, configFlag)
	assert.Contains(t, configFlag.Usage, "$TERMBROT_WRITE_CONFIG")
}
