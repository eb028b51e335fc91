// Package config loads runtime configuration for the dashboard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are decoded as YAML, everything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string      SQLite database file (DSN)
//	-s string      storage backend: sqlite | memory
//	-n int         number of generated records
//	-seed uint     random seed for the generator (0 picks a random one)
//	-delay dur     simulated login/signup latency, e.g. 1s
//	-hash string   password scheme: plain | argon2id
//	-p int         initial page size (5, 10, 20 or 50)
//	-l string      log level: debug | info | warn | error
//	-log-format    text | json
//
// # File schema
//
//	{
//	  "database_dsn": "dashboard.db",
//	  "storage": "sqlite",
//	  "record_count": 100,
//	  "seed": 0,
//	  "auth_delay": "1s",
//	  "password_scheme": "plain",
//	  "page_size": 10,
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// The YAML form uses the same keys.
package config
