package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophdash/internal/flagx"
)

var flagNames = []string{"d", "s", "n", "seed", "delay", "hash", "p", "l", "log-format"}

// parseFlags overlays cfg with the flags it knows about. args are filtered
// with flagx.FilterArgs first so -c and anything unknown are ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite database file")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (sqlite|memory)")
	fs.IntVar(&cfg.RecordCount, "n", cfg.RecordCount, "number of generated records")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "generator seed, 0 for random")
	fs.DurationVar(&cfg.AuthDelay, "delay", cfg.AuthDelay, "simulated login/signup latency")
	fs.StringVar(&cfg.PasswordScheme, "hash", cfg.PasswordScheme, "password scheme (plain|argon2id)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "initial page size")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text|json)")

	if err := fs.Parse(flagx.FilterArgs(args, flagNames...)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
