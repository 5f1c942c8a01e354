package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/champion-grid/internal/errors"
)

// Load reads the YAML configuration file at path and returns a validated Config
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("config file %q not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open config %q", path)
	}
	defer func() { _ = f.Close() }()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %q", path)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config over the defaults and validates the
// result. An empty document yields the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config holds a coherent set of values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.grpc_port", c.Server.GRPCPort, 1, 65535, vb)
	if c.Server.LogLevel != "" && !c.Server.LogLevel.IsValid() {
		errors.ValidateEnum("server.log_level", string(c.Server.LogLevel),
			[]string{string(LogDebug), string(LogInfo), string(LogWarn), string(LogError)}, vb)
	}

	for i, addr := range c.Redis.Addrs {
		if addr == "" {
			vb.Fieldf("redis.addrs", "entry %d is empty", i)
		}
	}
	if c.Redis.DB < 0 {
		vb.InvalidField("redis.db", "must not be negative")
	}
	if c.Redis.PoolSize < 0 {
		vb.InvalidField("redis.pool_size", "must not be negative")
	}

	errors.ValidateRequired("data.champions_path", c.Data.ChampionsPath, vb)

	if c.Generator.MaxAttempts < 1 {
		vb.InvalidField("generator.max_attempts", "must be positive")
	}
	errors.ValidateFloatRange("generator.tolerance", c.Generator.Tolerance, 0, 1, vb)
	if c.Generator.RecencyCapacity < 1 {
		vb.InvalidField("generator.recency_capacity", "must be positive")
	}
	if c.Generator.CrossTypeFactor <= 0 || c.Generator.CrossTypeFactor > 1 {
		vb.InvalidField("generator.cross_type_factor", "must be in (0, 1]")
	}

	if c.Game.SessionTTL <= 0 {
		vb.InvalidField("game.session_ttl", "must be positive")
	}
	errors.ValidateFloatRange("game.default_difficulty", c.Game.DefaultDifficulty, 0, 1, vb)
	errors.ValidateFloatRange("game.daily_difficulty", c.Game.DailyDifficulty, 0, 1, vb)

	return vb.Build()
}
