// Package config provides the process configuration schema and loader for
// the champion-grid server and CLI.
package config

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/champion-grid/internal/engine"
)

// LogLevel controls log verbosity
type LogLevel string

// Log levels
const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// SlogLevel converts l for slog handlers. Unknown levels map to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Defaults
const (
	DefaultGRPCPort        = 50051
	DefaultMetricsAddr     = ":9090"
	DefaultChampionsPath   = "data/champions.yaml"
	DefaultSessionTTL      = 24 * time.Hour
	DefaultDifficulty      = 0.5
	DefaultDailyDifficulty = 0.5
	DefaultServiceName     = "champion-grid"
	defaultLogLevel        = LogInfo
)

// Config is the root configuration. It is typically loaded from a YAML file
// using Load or LoadFromReader, with unset fields taking Default values.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Redis     RedisConfig     `yaml:"redis"`
	Data      DataConfig      `yaml:"data"`
	Generator GeneratorConfig `yaml:"generator"`
	Game      GameConfig      `yaml:"game"`
}

// ServerConfig holds network and logging settings
type ServerConfig struct {
	GRPCPort int `yaml:"grpc_port"`

	// MetricsAddr serves Prometheus metrics. Empty disables the endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	LogLevel    LogLevel `yaml:"log_level"`
	ServiceName string   `yaml:"service_name"`
}

// RedisConfig selects the game store. No addresses means games are kept in
// process memory.
type RedisConfig struct {
	Addrs      []string `yaml:"addrs"`
	MasterName string   `yaml:"master_name"`
	Password   string   `yaml:"password"`
	DB         int      `yaml:"db"`
	PoolSize   int      `yaml:"pool_size"`
	UseTLS     bool     `yaml:"use_tls"`
}

// Enabled reports whether a Redis store is configured
func (r RedisConfig) Enabled() bool {
	return len(r.Addrs) > 0
}

// DataConfig locates the champion dataset
type DataConfig struct {
	ChampionsPath string `yaml:"champions_path"`
}

// GeneratorConfig tunes grid generation
type GeneratorConfig struct {
	MaxAttempts     int     `yaml:"max_attempts"`
	Tolerance       float64 `yaml:"tolerance"`
	RecencyCapacity int     `yaml:"recency_capacity"`
	CrossTypeFactor float64 `yaml:"cross_type_factor"`
}

// GameConfig tunes game sessions
type GameConfig struct {
	SessionTTL        time.Duration `yaml:"session_ttl"`
	DefaultDifficulty float64       `yaml:"default_difficulty"`
	DailyDifficulty   float64       `yaml:"daily_difficulty"`
}

// Default returns a config with every field set to its default
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort:    DefaultGRPCPort,
			MetricsAddr: DefaultMetricsAddr,
			LogLevel:    defaultLogLevel,
			ServiceName: DefaultServiceName,
		},
		Data: DataConfig{
			ChampionsPath: DefaultChampionsPath,
		},
		Generator: GeneratorConfig{
			MaxAttempts:     engine.DefaultMaxAttempts,
			Tolerance:       engine.DefaultTolerance,
			RecencyCapacity: engine.DefaultRecencyCapacity,
			CrossTypeFactor: engine.DefaultCrossTypeFactor,
		},
		Game: GameConfig{
			SessionTTL:        DefaultSessionTTL,
			DefaultDifficulty: DefaultDifficulty,
			DailyDifficulty:   DefaultDailyDifficulty,
		},
	}
}
