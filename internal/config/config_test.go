package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
db_path: /tmp/spotter-test.db
plans_dir: /tmp/plans
muted: true
bar_weight: 35
rest:
  default_rest_time: 120
  warning_time: 15
  sound_enabled: false
  vibration_enabled: true
  smart_rest: true
  custom_rest_times:
    bench-press: 180
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.DBPath, cfg.DBPath)
	assert.Equal(t, 45.0, cfg.BarWeight)
	assert.Equal(t, 90, cfg.Rest.DefaultRestTime)
	assert.Equal(t, 10, cfg.Rest.WarningTime)
	assert.True(t, cfg.Rest.SoundEnabled)
	assert.False(t, cfg.Muted)
	assert.NotNil(t, cfg.Rest.CustomRestTimes)
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/spotter-test.db", cfg.DBPath)
	assert.Equal(t, "/tmp/plans", cfg.PlansDir)
	assert.True(t, cfg.Muted)
	assert.Equal(t, 35.0, cfg.BarWeight)
	assert.Equal(t, 120, cfg.Rest.DefaultRestTime)
	assert.Equal(t, 15, cfg.Rest.WarningTime)
	assert.False(t, cfg.Rest.SoundEnabled)
	assert.True(t, cfg.Rest.SmartRest)
	assert.Equal(t, map[string]int{"bench-press": 180}, cfg.Rest.CustomRestTimes)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, "muted: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Muted)
	assert.Equal(t, 90, cfg.Rest.DefaultRestTime)
	assert.True(t, cfg.Rest.VibrationEnabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SPOTTER_DB", "/override.db")
	t.Setenv("SPOTTER_REST_DEFAULT", "60")
	t.Setenv("SPOTTER_SOUND", "true")
	t.Setenv("SPOTTER_MUTED", "false")
	t.Setenv("SPOTTER_BAR_WEIGHT", "not-a-number")

	cfg, err := Load(writeTemp(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "/override.db", cfg.DBPath)
	assert.Equal(t, 60, cfg.Rest.DefaultRestTime)
	assert.True(t, cfg.Rest.SoundEnabled)
	assert.False(t, cfg.Muted)
	assert.Equal(t, 35.0, cfg.BarWeight, "unparsable override ignored")
	assert.Equal(t, 15, cfg.Rest.WarningTime, "unset env keeps file value")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeTemp(t, "rest: [broken"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero rest", "rest: {default_rest_time: 0}", "default_rest_time must be positive"},
		{"negative warning", "rest: {default_rest_time: 90, warning_time: -1}", "warning_time must not be negative"},
		{"zero bar", "bar_weight: 0", "bar_weight must be positive"},
		{"negative custom", "rest: {default_rest_time: 90, custom_rest_times: {squat: -5}}", "custom_rest_times[squat]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeTemp(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.DBPath = "/data/spotter.db"
	cfg.Rest.DefaultRestTime = 75
	cfg.Rest.SmartRest = true
	cfg.Rest.CustomRestTimes["deadlift"] = 240

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.BarWeight = -1
	err := Save(filepath.Join(t.TempDir(), "config.yaml"), cfg)
	require.Error(t, err)
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("SPOTTER_CONFIG", "/etc/spotter.yaml")
	assert.Equal(t, "/etc/spotter.yaml", Path())
}
