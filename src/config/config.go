package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Host    string
	Port    string
	User    string
	Pass    string
	DBName  string
	SSLMode string

	Room    string
	Render  bool
	Workers int
}

// Load reads path (usually ".env") into the environment and builds the
// config from it. A missing file is fine, values then come from the
// process environment alone.
func Load(path string) (*Config, error) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("[ERROR] Could not read %s: %w", path, err)
	}

	cfg := &Config{
		Host:    env("DB_HOST", "localhost"),
		Port:    env("DB_PORT", "5432"),
		User:    env("DB_USER", ""),
		Pass:    env("DB_PASS", ""),
		DBName:  env("DB", "betledger"),
		SSLMode: env("DB_SSLMODE", "disable"),
		Room:    env("BETLEDGER_ROOM", "over05"),
	}

	cfg.Render, err = strconv.ParseBool(env("BETLEDGER_RENDER", "false"))
	if err != nil {
		return nil, fmt.Errorf("[ERROR] BETLEDGER_RENDER: %w", err)
	}

	cfg.Workers, err = strconv.Atoi(env("BETLEDGER_WORKERS", "3"))
	if err != nil || cfg.Workers < 1 {
		return nil, fmt.Errorf("[ERROR] BETLEDGER_WORKERS must be a positive number, got %q",
			os.Getenv("BETLEDGER_WORKERS"))
	}

	return cfg, nil
}

// DSN is the lib/pq connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Pass,
		c.DBName,
		c.SSLMode,
	)
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
