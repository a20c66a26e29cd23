// Package config loads application configuration.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

var keys = []string{
	"logging.level",
	"server.host",
	"server.port",
	"server.shutdown_timeout",
	"http.request_timeout",
	"postgres.host",
	"postgres.port",
	"postgres.user",
	"postgres.password",
	"postgres.db_name",
	"postgres.ssl_mode",
	"postgres.connect_timeout",
	"postgres.migrate_timeout",
	"postgres.max_conns",
	"postgres.min_conns",
	"auth.secret",
	"auth.token_ttl",
	"auth.cookie_name",
	"planning.timezone",
	"bootstrap.organization",
	"bootstrap.admin_name",
	"bootstrap.admin_email",
	"bootstrap.admin_password",
}

// NewConfig reads config/.env (if present) and the environment. Variables
// already set in the environment win over the file.
func NewConfig() (*Config, error) {
	return load(envFile)
}

func load(path string) (*Config, error) {
	if envMap, err := godotenv.Read(path); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 5*time.Second)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "workload_planner")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.connect_timeout", 5*time.Second)
	v.SetDefault("postgres.migrate_timeout", 30*time.Second)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)

	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("auth.cookie_name", "session")

	v.SetDefault("planning.timezone", "Europe/Berlin")

	v.SetDefault("bootstrap.organization", "default")
	v.SetDefault("bootstrap.admin_name", "Administrator")
}
