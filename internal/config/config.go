package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultDBPath    = "./coolseason.db"
	defaultEnv       = "dev"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	dotEnvFile       = ".env"
)

// ErrInvalidConfig is returned when a configuration value cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds process configuration sourced from the environment, a local
// .env file and an optional YAML file named by CONFIG_FILE.
type Config struct {
	Env        string
	DBPath     string
	LogLevel   string
	LogFormat  string
	ConfigFile string

	// Values exposes every loaded key, including payment settings a config
	// file may carry.
	Values *viper.Viper
}

// Load reads configuration. Environment variables win over .env entries,
// which win over the config file.
func Load() (Config, error) {
	// Best-effort: production injects real environment variables.
	if err := loadDotEnv(dotEnvFile); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	v := viper.New()
	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("db_path", defaultDBPath)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_format", defaultLogFormat)
	v.AutomaticEnv()

	cfg := Config{ConfigFile: v.GetString("config_file"), Values: v}
	if cfg.ConfigFile != "" {
		v.SetConfigFile(cfg.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", cfg.ConfigFile, err)
		}
	}

	cfg.Env = strings.ToLower(v.GetString("app_env"))
	cfg.DBPath = v.GetString("db_path")
	cfg.LogLevel = strings.ToLower(v.GetString("log_level"))
	cfg.LogFormat = strings.ToLower(v.GetString("log_format"))

	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("%w: DB_PATH is empty", ErrInvalidConfig)
	}
	if cfg.Env != "dev" && cfg.Env != "prod" {
		slog.Warn("unknown APP_ENV, treating as prod", "app_env", cfg.Env)
	}

	return cfg, nil
}

// IsDev reports whether the process runs in development mode.
func (c Config) IsDev() bool {
	return c.Env == defaultEnv
}

// loadDotEnv loads KEY=VALUE pairs without overwriting variables that are
// already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
