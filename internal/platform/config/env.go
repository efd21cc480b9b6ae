package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings shared by the occulta commands.
type Config struct {
	// GamedataDB is the SQLite database holding the reference tables.
	GamedataDB string `env:"OCCULTA_GAMEDATA_DB" envDefault:"data/gamedata.db"`
	// PreferencesPath is the YAML file holding user preferences.
	PreferencesPath string `env:"OCCULTA_PREFERENCES_PATH" envDefault:"data/preferences.yaml"`
	// NameQueueDepth is the target depth of each name bucket.
	NameQueueDepth int `env:"OCCULTA_NAME_QUEUE_DEPTH" envDefault:"100"`
	// SheetReloadDelay is how long after a login the name sheet is reloaded.
	SheetReloadDelay time.Duration `env:"OCCULTA_SHEET_RELOAD_DELAY" envDefault:"3s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.NameQueueDepth <= 0 {
		return Config{}, fmt.Errorf("OCCULTA_NAME_QUEUE_DEPTH must be positive, got %d", cfg.NameQueueDepth)
	}
	if cfg.SheetReloadDelay < 0 {
		return Config{}, fmt.Errorf("OCCULTA_SHEET_RELOAD_DELAY must not be negative, got %s", cfg.SheetReloadDelay)
	}
	return cfg, nil
}
