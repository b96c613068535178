package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	EnvDataPath        = "WEATHER_DATA_PATH"
	EnvListen          = "LISTEN_ADDR"
	EnvLogLevel        = "LOG_LEVEL"
	EnvCORSOrigins     = "CORS_ORIGINS"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	defaultListen          = ":8000"
	defaultAPIPrefix       = "/api/nas"
	defaultShutdownTimeout = 5 * time.Second
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:8080",
	"http://127.0.0.1:8080",
	"http://localhost",
	"http://127.0.0.1",
}

type HTTPConfig struct {
	Listen          string        `yaml:"listen"`
	APIPrefix       string        `yaml:"api_prefix"`
	CORSOrigins     []string      `yaml:"cors_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Config struct {
	// DataPath is the preferred root of the data hierarchy. Empty means
	// only the built in mount points are searched.
	DataPath   string     `yaml:"data_path"`
	LogLevel   string     `yaml:"log_level"`
	HTTPConfig HTTPConfig `yaml:"http"`
}

func (c *Config) SetDefaults() {
	c.LogLevel = LogLevelInfo
	c.HTTPConfig.Listen = defaultListen
	c.HTTPConfig.APIPrefix = defaultAPIPrefix
	c.HTTPConfig.CORSOrigins = append([]string(nil), defaultCORSOrigins...)
	c.HTTPConfig.ShutdownTimeout = defaultShutdownTimeout
}

/*
Load builds the configuration in layers:
 1. defaults
 2. yaml file at cfgPath, skipped when it does not exist
 3. dotenv files (".env" when none given), skipped when missing; they never override the real environment
 4. environment variables
*/
func Load(cfgPath string, envFiles ...string) (*Config, error) {
	cfg := &Config{}
	cfg.SetDefaults()

	if cfgPath != "" {
		data, err := os.ReadFile(cfgPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("cannot parse config file %s: %w", cfgPath, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("cannot read config file %s: %w", cfgPath, err)
		}
	}

	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func MustLoad(cfgPath string, envFiles ...string) *Config {
	cfg, err := Load(cfgPath, envFiles...)
	if err != nil {
		panic(err)
	}

	return cfg
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	}

	return slog.LevelInfo
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}

		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("cannot load env file %s: %w", file, err)
		}
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDataPath); v != "" {
		c.DataPath = v
	}

	if v := os.Getenv(EnvListen); v != "" {
		c.HTTPConfig.Listen = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}

	if v := os.Getenv(EnvCORSOrigins); v != "" {
		c.HTTPConfig.CORSOrigins = splitList(v)
	}

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvShutdownTimeout, err)
		}

		c.HTTPConfig.ShutdownTimeout = d
	}

	return nil
}

func (c *Config) validate() error {
	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("unknown log level: %s", c.LogLevel)
	}

	if c.HTTPConfig.Listen == "" {
		return errors.New("listen address is required")
	}

	if c.HTTPConfig.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid %s: must be positive", EnvShutdownTimeout)
	}

	if !strings.HasPrefix(c.HTTPConfig.APIPrefix, "/") {
		return fmt.Errorf("api prefix must start with /: %q", c.HTTPConfig.APIPrefix)
	}

	return nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
