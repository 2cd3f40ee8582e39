package lunchr

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrterry/lunchr/scoring"
)

// Config is the configuration for an Engine.
//
// It corresponds to the create(person_count, table_count, table_capacity)
// boundary: persons are identified 0..PersonCount-1 and tables
// 0..TableCount-1, every table holding at most TableCapacity persons.
type Config struct {
	// PersonCount is the number of persons to seat. Zero means "use the
	// default" (see SetDefaults), so an engine always has at least one person;
	// the same applies to every numeric field below.
	PersonCount int `yaml:"personCount"`

	// TableCount is the number of tables.
	TableCount int `yaml:"tableCount"`

	// TableCapacity is the capacity shared by every table.
	TableCapacity int `yaml:"tableCapacity"`

	// Scorer selects the built-in fit policy ("size" or "packing").
	// Ignored when WithScorer supplies a custom scorer.
	Scorer string `yaml:"scorer"`

	// MaxRounds bounds Settle. Each round evaluates every person once
	// (plus any re-queued evictees).
	MaxRounds int `yaml:"maxRounds"`

	// SkipInvariantChecks disables the membership invariant check that runs
	// after every committed move. The check is linear in the number of seated
	// persons; disable it only for large, trusted runs.
	SkipInvariantChecks bool `yaml:"skipInvariantChecks"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// The defaults seat six persons at three tables of two, scored by size.
func DefaultConfig() Config {
	return Config{
		PersonCount:   6,
		TableCount:    3,
		TableCapacity: 2,
		Scorer:        scoring.NameSize,
		MaxRounds:     100,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.PersonCount == 0 {
		cfg.PersonCount = defaults.PersonCount
	}
	if cfg.TableCount == 0 {
		cfg.TableCount = defaults.TableCount
	}
	if cfg.TableCapacity == 0 {
		cfg.TableCapacity = defaults.TableCapacity
	}
	if cfg.Scorer == "" {
		cfg.Scorer = defaults.Scorer
	}
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = defaults.MaxRounds
	}
}

// Validate checks configuration constraints.
//
// Rules:
//   - PersonCount >= 0 (zero only survives when SetDefaults was skipped)
//   - TableCount > 0 (the scan cursor needs at least one table)
//   - TableCapacity > 0
//   - MaxRounds > 0
//   - Scorer names a built-in scorer
//
// Returns:
//   - error: Wrapped ErrInvalidConfig describing the first violation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.PersonCount < 0 {
		return fmt.Errorf("%w: PersonCount must be >= 0, got %d", ErrInvalidConfig, cfg.PersonCount)
	}
	if cfg.TableCount <= 0 {
		return fmt.Errorf("%w: TableCount must be > 0, got %d", ErrInvalidConfig, cfg.TableCount)
	}
	if cfg.TableCapacity <= 0 {
		return fmt.Errorf("%w: TableCapacity must be > 0, got %d", ErrInvalidConfig, cfg.TableCapacity)
	}
	if cfg.MaxRounds <= 0 {
		return fmt.Errorf("%w: MaxRounds must be > 0, got %d", ErrInvalidConfig, cfg.MaxRounds)
	}
	if _, err := scoring.New(cfg.Scorer, cfg.TableCapacity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but questionable values.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	seats := cfg.TableCount * cfg.TableCapacity
	if cfg.PersonCount > seats {
		logger.Warn(
			"more persons than seats, evictions will keep some persons unassigned",
			"persons", cfg.PersonCount,
			"seats", seats,
		)
	}

	if cfg.SkipInvariantChecks {
		logger.Warn("membership invariant checks are disabled")
	}
}

// TestConfig returns a small configuration for fast tests.
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxRounds = 20

	return cfg
}

// LoadConfig loads configuration from a YAML file.
//
// Missing fields are filled with defaults before validation.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Error if the file cannot be read, parsed or validated
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
