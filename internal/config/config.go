// Package config loads process configuration from the environment and
// optional .env files
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/drawsteel-importer/internal/errors"
	"github.com/KirkDiggler/drawsteel-importer/internal/parsers/dialect"
	"github.com/KirkDiggler/drawsteel-importer/internal/vocab"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the importer's process configuration
type Config struct {
	GRPCPort int `env:"IMPORTER_GRPC_PORT" envDefault:"50051"`

	// RedisAddr selects the redis store; empty keeps actors in memory
	RedisAddr     string `env:"IMPORTER_REDIS_ADDR"`
	RedisTLS      bool   `env:"IMPORTER_REDIS_TLS"`
	RedisPoolSize int    `env:"IMPORTER_REDIS_POOL_SIZE" envDefault:"10"`

	Dialect        string `env:"IMPORTER_DIALECT" envDefault:"official"`
	VocabularyFile string `env:"IMPORTER_VOCABULARY_FILE"`
	SourceBook     string `env:"IMPORTER_SOURCE_BOOK" envDefault:"Monsters"`
	Folder         string `env:"IMPORTER_FOLDER" envDefault:"Imported Monsters"`

	RollLogTTL time.Duration `env:"IMPORTER_ROLL_LOG_TTL" envDefault:"1h"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads the given .env files, when present, and then the environment.
// Variables already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", strings.Join(existing, ", "))
		}
	}

	return parse(env.Options{})
}

// Parse reads configuration from environ instead of the process environment
func Parse(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, errors.InvalidArgumentf("failed to parse environment: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// Validate checks value ranges and names
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("IMPORTER_GRPC_PORT", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	if c.RedisPoolSize < 0 {
		vb.Field("IMPORTER_REDIS_POOL_SIZE", "must not be negative")
	}
	if _, err := dialect.ByName(c.Dialect); err != nil {
		vb.Fieldf("IMPORTER_DIALECT", "must be one of: %s", strings.Join(dialect.Names(), ", "))
	}
	if c.RollLogTTL <= 0 {
		vb.Field("IMPORTER_ROLL_LOG_TTL", "must be positive")
	}
	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("LOG_FORMAT", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)

	return vb.Build()
}

// DialectConfig returns the configured dialect
func (c *Config) DialectConfig() (*dialect.Dialect, error) {
	return dialect.ByName(c.Dialect)
}

// Vocabulary returns the vocabulary file's tables, or the defaults when no
// file is configured
func (c *Config) Vocabulary() (*vocab.Tables, error) {
	if c.VocabularyFile == "" {
		return vocab.Default(), nil
	}

	f, err := os.Open(c.VocabularyFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open vocabulary file %s", c.VocabularyFile)
	}
	defer func() { _ = f.Close() }()

	tables, err := vocab.Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load vocabulary file %s", c.VocabularyFile)
	}
	return tables, nil
}

// SlogLevel maps LogLevel to a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger writing to w
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
