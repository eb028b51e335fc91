package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/dmitrijs2005/gophdash/internal/table"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"

	SchemePlain    = "plain"
	SchemeArgon2ID = "argon2id"
)

// Config holds runtime settings for the dashboard.
type Config struct {
	DatabaseDSN    string
	Storage        string
	RecordCount    int
	Seed           uint64
	AuthDelay      time.Duration
	PasswordScheme string
	PageSize       int
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "dashboard.db"
	c.Storage = StorageSQLite
	c.RecordCount = 100
	c.Seed = 0
	c.AuthDelay = time.Second
	c.PasswordScheme = SchemePlain
	c.PageSize = 10
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate reports the first setting that the rest of the program cannot
// work with.
func (c *Config) Validate() error {
	if c.Storage != StorageSQLite && c.Storage != StorageMemory {
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.Storage == StorageSQLite && c.DatabaseDSN == "" {
		return fmt.Errorf("database dsn is required for sqlite storage")
	}
	if c.RecordCount < 0 {
		return fmt.Errorf("record count must not be negative, got %d", c.RecordCount)
	}
	if c.AuthDelay < 0 {
		return fmt.Errorf("auth delay must not be negative, got %s", c.AuthDelay)
	}
	if c.PasswordScheme != SchemePlain && c.PasswordScheme != SchemeArgon2ID {
		return fmt.Errorf("unknown password scheme %q", c.PasswordScheme)
	}
	if !slices.Contains(table.PageSizes, c.PageSize) {
		return fmt.Errorf("page size must be one of %v, got %d", table.PageSizes, c.PageSize)
	}
	return nil
}

// Load builds a Config from args (without the program name): defaults,
// then the config file, then flags. The result is validated.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
