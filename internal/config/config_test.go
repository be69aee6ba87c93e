package config_test

import (
	"testing"
	"time"

	"github.com/UnknownOlympus/locus/internal/config"
	"github.com/stretchr/testify/assert"
)

func Test_MustLoad(t *testing.T) {
	t.Setenv("LOCUS_ENV", "local")
	t.Setenv("LOCUS_INTERVAL", "10m")
	t.Setenv("LOCUS_THRESHOLD_METERS", "150.5")
	t.Setenv("LOCUS_TEST_MODE", "true")
	t.Setenv("LOCUS_TEST_MARKER", "marker")
	t.Setenv("LOCUS_REFERENCES_FILE", "/etc/locus/references.yaml")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, 10*time.Minute, cfg.Interval)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.Workers)
	assert.InDelta(t, 150.5, cfg.ThresholdMeters, 1e-9)
	assert.True(t, cfg.TestMode)
	assert.Equal(t, "marker", cfg.TestMarker)
	assert.Equal(t, "/etc/locus/references.yaml", cfg.ReferencesFile)
	assert.Equal(t, 50, cfg.RateLimit)
}

func Test_MustLoad_Defaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, time.Minute, cfg.Interval)
	assert.InDelta(t, 200.0, cfg.ThresholdMeters, 0)
	assert.False(t, cfg.TestMode)
	assert.Equal(t, "5432", cfg.Database.Port)
}

func TestMustLoad_Errors(t *testing.T) {
	cases := []struct {
		key, value, panicMsg string
	}{
		{"LOCUS_INTERVAL", "error_value", "failed to parse interval from configuration"},
		{"LOCUS_INTERVAL", "-1s", "failed to parse interval from configuration"},
		{"LOCUS_HEALTH_PORT", "error_value", "failed to parse port for monitoring server from configuration"},
		{"LOCUS_WORKERS", "error_value", "failed to parse workers from configuration, must be an integer types"},
		{"LOCUS_THRESHOLD_METERS", "far", "failed to parse threshold from configuration, must be a positive number of meters"},
		{"LOCUS_THRESHOLD_METERS", "0", "failed to parse threshold from configuration, must be a positive number of meters"},
		{"LOCUS_TEST_MODE", "maybe", "failed to parse test mode from configuration, must be a boolean"},
		{"LOCUS_RATE_LIMIT", "lots", "failed to parse rate limit from configuration, must be an integer types"},
	}

	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			assert.PanicsWithValue(t, tc.panicMsg, func() {
				config.MustLoad()
			})
		})
	}
}
