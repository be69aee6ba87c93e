package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the address normalization service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the monitoring and lookup server.
// - Workers: The number of concurrent workers normalizing records.
// - Interval: The duration between polling rounds.
// - ThresholdMeters: The matching radius around reference points.
// - TestMode: Enables the marker address substitution used in test environments.
// - ReferencesFile: Optional YAML reference table replacing the built-in one.
// - RateLimit: Lookup requests per second allowed on the HTTP API.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env             string         `yaml:"env"`               // Env is the current environment: local, dev, prod.
	Port            int            `yaml:"locus.port"`        // Port is the monitoring server port.
	Workers         int            `yaml:"locus.workers"`     // The number of concurrent workers for processing records.
	Interval        time.Duration  `yaml:"locus.interval"`    // The duration between processing intervals.
	ThresholdMeters float64        `yaml:"locus.threshold"`   // Matching radius in meters.
	TestMode        bool           `yaml:"locus.test_mode"`   // TestMode enables the marker substitution.
	TestMarker      string         `yaml:"locus.test_marker"` // Substring triggering the substitution.
	ReferencesFile  string         `yaml:"locus.references"`  // Path of an alternative reference table.
	RateLimit       int            `yaml:"locus.rate_limit"`  // Lookup API requests per second.
	Database        PostgresConfig `yaml:"postgres"`          // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Name     string `yaml:"db_name"`                     // Name is the name of the database.
}

// MustLoad loads the configuration from the environment, optionally seeded by a .env file.
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LOCUS_ENV", "production")
	v.SetDefault("LOCUS_HEALTH_PORT", "8080")
	v.SetDefault("LOCUS_WORKERS", "4")
	v.SetDefault("LOCUS_INTERVAL", "1m")
	v.SetDefault("LOCUS_THRESHOLD_METERS", "200")
	v.SetDefault("LOCUS_TEST_MODE", "false")
	v.SetDefault("LOCUS_RATE_LIMIT", "50")
	v.SetDefault("DB_PORT", "5432")

	interval, err := time.ParseDuration(v.GetString("LOCUS_INTERVAL"))
	if err != nil || interval <= 0 {
		panic("failed to parse interval from configuration")
	}

	healthPort, err := strconv.Atoi(v.GetString("LOCUS_HEALTH_PORT"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers, err := strconv.Atoi(v.GetString("LOCUS_WORKERS"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer types")
	}

	threshold, err := strconv.ParseFloat(v.GetString("LOCUS_THRESHOLD_METERS"), 64)
	if err != nil || threshold <= 0 {
		panic("failed to parse threshold from configuration, must be a positive number of meters")
	}

	testMode, err := strconv.ParseBool(v.GetString("LOCUS_TEST_MODE"))
	if err != nil {
		panic("failed to parse test mode from configuration, must be a boolean")
	}

	rateLimit, err := strconv.Atoi(v.GetString("LOCUS_RATE_LIMIT"))
	if err != nil {
		panic("failed to parse rate limit from configuration, must be an integer types")
	}

	return &Config{
		Env:             v.GetString("LOCUS_ENV"),
		Port:            healthPort,
		Workers:         workers,
		Interval:        interval,
		ThresholdMeters: threshold,
		TestMode:        testMode,
		TestMarker:      v.GetString("LOCUS_TEST_MARKER"),
		ReferencesFile:  v.GetString("LOCUS_REFERENCES_FILE"),
		RateLimit:       rateLimit,
		Database: PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USERNAME"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
	}
}
