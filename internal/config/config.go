package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	JWT struct {
		Secret string
		TTL    time.Duration
	}
	Limits struct {
		// MaxPerUser caps how many bookmarks a single user may hold.
		// Zero means unlimited.
		MaxPerUser int
	}
	Log struct {
		Level  string
		Pretty bool
	}
}

// Load reads config from environment (BOOKMARK_ prefix) and optional bookmarkd.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKMARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("bookmarkd")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("jwt.ttl", "24h")
	v.SetDefault("limits.max_per_user", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.Limits.MaxPerUser = v.GetInt("limits.max_per_user")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Pretty = v.GetBool("log.pretty")

	ttl, err := time.ParseDuration(v.GetString("jwt.ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKMARK_JWT_TTL: %w", err)
	}
	cfg.JWT.TTL = ttl

	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("BOOKMARK_DB_DSN is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("BOOKMARK_JWT_SECRET is required")
	}
	if cfg.Limits.MaxPerUser < 0 {
		return nil, fmt.Errorf("BOOKMARK_LIMITS_MAX_PER_USER must not be negative")
	}

	switch cfg.DB.Driver {
	case "sqlite3", "mysql", "postgres":
	default:
		return nil, fmt.Errorf("unsupported BOOKMARK_DB_DRIVER %q: must be sqlite3, mysql, or postgres", cfg.DB.Driver)
	}

	return cfg, nil
}
