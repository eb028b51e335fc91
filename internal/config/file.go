package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophdash/internal/flagx"
	"github.com/dmitrijs2005/gophdash/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape. Pointer fields distinguish "absent"
// from zero so that a partial file only overrides what it names.
type fileConfig struct {
	DatabaseDSN    *string         `json:"database_dsn" yaml:"database_dsn"`
	Storage        *string         `json:"storage" yaml:"storage"`
	RecordCount    *int            `json:"record_count" yaml:"record_count"`
	Seed           *uint64         `json:"seed" yaml:"seed"`
	AuthDelay      *timex.Duration `json:"auth_delay" yaml:"auth_delay"`
	PasswordScheme *string         `json:"password_scheme" yaml:"password_scheme"`
	PageSize       *int            `json:"page_size" yaml:"page_size"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	LogFormat      *string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c / -config in args.
// No flag means nothing to do.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	if fc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *fc.DatabaseDSN
	}
	if fc.Storage != nil {
		cfg.Storage = *fc.Storage
	}
	if fc.RecordCount != nil {
		cfg.RecordCount = *fc.RecordCount
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.AuthDelay != nil {
		cfg.AuthDelay = fc.AuthDelay.Duration
	}
	if fc.PasswordScheme != nil {
		cfg.PasswordScheme = *fc.PasswordScheme
	}
	if fc.PageSize != nil {
		cfg.PageSize = *fc.PageSize
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
}
