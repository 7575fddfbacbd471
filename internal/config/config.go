// Package config loads application settings from the environment, layered
// over built-in defaults with koanf.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Port    int     `koanf:"port"`
	Env     string  `koanf:"env"`
	DB      DB      `koanf:"db"`
	Limiter Limiter `koanf:"limiter"`
}

type DB struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	User         string        `koanf:"user"`
	Password     string        `koanf:"password"`
	Name         string        `koanf:"name"`
	SSLMode      string        `koanf:"sslmode"`
	MaxOpenConns int           `koanf:"max_open_conns"`
	MaxIdleConns int           `koanf:"max_idle_conns"`
	MaxIdleTime  time.Duration `koanf:"max_idle_time"`
}

type Limiter struct {
	RPS     float64 `koanf:"rps"`
	Burst   int     `koanf:"burst"`
	Enabled bool    `koanf:"enabled"`
}

func defaults() *Config {
	return &Config{
		Port: 3000,
		Env:  "development",
		DB: DB{
			Host:         "localhost",
			Port:         5432,
			User:         "postgres",
			Password:     "",
			Name:         "filmovi",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 25,
			MaxIdleTime:  15 * time.Minute,
		},
		Limiter: Limiter{
			RPS:     2,
			Burst:   4,
			Enabled: true,
		},
	}
}

// Load builds the configuration in two layers: struct defaults first, then
// environment variables on top. Variable names map to koanf paths by
// lowercasing and splitting on the first underscore, so DB_MAX_OPEN_CONNS
// becomes db.max_open_conns and PORT becomes port.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := k.Load(env.Provider("", ".", envToPath), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// DSN assembles the Postgres connection string from the DB settings.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

// envToPath keeps the mapping to exactly the variables this service owns;
// everything else in the process environment is ignored.
func envToPath(s string) string {
	switch {
	case s == "PORT" || s == "ENV":
		return strings.ToLower(s)
	case strings.HasPrefix(s, "DB_"):
		return "db." + strings.ToLower(strings.TrimPrefix(s, "DB_"))
	case strings.HasPrefix(s, "LIMITER_"):
		return "limiter." + strings.ToLower(strings.TrimPrefix(s, "LIMITER_"))
	}
	return ""
}
