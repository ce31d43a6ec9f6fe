// Package config provides centralized configuration management for the
// application. Settings load from environment variables with sensible
// defaults and are validated on startup so misconfiguration fails fast.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Import   ImportConfig
	Parser   ParserConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading the request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing the response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout per request (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`

	// MaxConns is the maximum number of pooled connections (default: 20)
	MaxConns int `env:"DB_MAX_CONNS" default:"20"`

	// MinConns is the minimum number of connections kept open (default: 4)
	MinConns int `env:"DB_MIN_CONNS" default:"4"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime closes connections idle longer than this (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// ImportConfig holds import pipeline settings.
type ImportConfig struct {
	// MaxFileSize is the maximum accepted upload size in bytes (default: 25MB)
	MaxFileSize int64 `env:"IMPORT_MAX_FILE_SIZE" default:"26214400"`

	// Delimiter is the default field delimiter for delimited text (default: ",")
	Delimiter string `env:"IMPORT_DELIMITER" default:","`

	// HeaderScanRows is how many leading rows header inference considers (default: 5)
	HeaderScanRows int `env:"IMPORT_HEADER_SCAN_ROWS" default:"5"`

	// VocabFile optionally points at a YAML file with extra column synonyms,
	// category keywords, and supplier names.
	VocabFile string `env:"IMPORT_VOCAB_FILE"`
}

// ParserConfig holds the tuning values for free-text parsing. The weights are
// heuristics without a derivation from first principles, which is exactly why
// they are configuration rather than constants.
type ParserConfig struct {
	// WeightQuantity is the confidence contribution of a recognized quantity (default: 0.10)
	WeightQuantity float64 `env:"PARSER_WEIGHT_QUANTITY" default:"0.10"`

	// WeightValueSpec is the contribution of a component value like 10kΩ (default: 0.25)
	WeightValueSpec float64 `env:"PARSER_WEIGHT_VALUE_SPEC" default:"0.25"`

	// WeightTolerance is the contribution of a tolerance token (default: 0.15)
	WeightTolerance float64 `env:"PARSER_WEIGHT_TOLERANCE" default:"0.15"`

	// WeightRating is the contribution of a voltage/power/current rating (default: 0.15)
	WeightRating float64 `env:"PARSER_WEIGHT_RATING" default:"0.15"`

	// WeightSupplier is the contribution of a recognized supplier (default: 0.15)
	WeightSupplier float64 `env:"PARSER_WEIGHT_SUPPLIER" default:"0.15"`

	// WeightCost is the contribution of a recognized unit cost (default: 0.15)
	WeightCost float64 `env:"PARSER_WEIGHT_COST" default:"0.15"`

	// WeightCategory is the contribution of a recognized category (default: 0.20)
	WeightCategory float64 `env:"PARSER_WEIGHT_CATEGORY" default:"0.20"`

	// SimilarityFloor is the minimum score for a catalog suggestion (default: 0.15)
	SimilarityFloor float64 `env:"PARSER_SIMILARITY_FLOOR" default:"0.15"`

	// MaxSuggestions caps the suggestion list (default: 5)
	MaxSuggestions int `env:"PARSER_MAX_SUGGESTIONS" default:"5"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// RequireAPIKey gates mutating endpoints behind X-API-Key (default: false)
	RequireAPIKey bool `env:"REQUIRE_API_KEY" default:"false"`

	// APIKeys is the comma-separated list of accepted keys
	APIKeys []string `env:"API_KEYS"`

	// TrustedProxies is a comma-separated list of proxy CIDRs whose
	// X-Forwarded-For headers are believed
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// DelimiterRune returns the configured delimiter as a rune, defaulting to
// comma when unset or multi-character.
func (c *ImportConfig) DelimiterRune() rune {
	runes := []rune(c.Delimiter)
	if len(runes) != 1 {
		return ','
	}
	return runes[0]
}
