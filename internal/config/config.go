// Package config loads lcsviz settings from an optional YAML file overlaid
// with LCSVIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/lcsviz/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LCSVIZ_"

// Config holds every tunable of the CLI and its servers.
type Config struct {
	Delay     time.Duration `mapstructure:"delay" yaml:"delay"`
	MaxLength int           `mapstructure:"max_length" yaml:"max_length"`
	Uppercase bool          `mapstructure:"uppercase" yaml:"uppercase"`
	First     string        `mapstructure:"first" yaml:"first"`
	Second    string        `mapstructure:"second" yaml:"second"`
	Debug     bool          `mapstructure:"debug" yaml:"debug"`

	HTTP  HTTPConfig  `mapstructure:"http" yaml:"http"`
	Redis RedisConfig `mapstructure:"redis" yaml:"redis"`
}

// HTTPConfig configures `lcsviz serve`.
type HTTPConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// RedisConfig configures the optional frame publisher. An empty Addr
// disables it.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
	Channel  string `mapstructure:"channel" yaml:"channel"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Delay:     domain.DefaultDelay,
		MaxLength: domain.DefaultMaxLength,
		Uppercase: true,
		First:     domain.DefaultFirst,
		Second:    domain.DefaultSecond,
		HTTP:      HTTPConfig{Addr: ":8080"},
	}
}

// envMapping maps environment variables to config paths.
var envMapping = map[string]string{
	EnvPrefix + "DELAY":          "delay",
	EnvPrefix + "MAX_LENGTH":     "max_length",
	EnvPrefix + "UPPERCASE":      "uppercase",
	EnvPrefix + "FIRST":          "first",
	EnvPrefix + "SECOND":         "second",
	EnvPrefix + "DEBUG":          "debug",
	EnvPrefix + "HTTP_ADDR":      "http.addr",
	EnvPrefix + "REDIS_ADDR":     "redis.addr",
	EnvPrefix + "REDIS_PASSWORD": "redis.password",
	EnvPrefix + "REDIS_DB":       "redis.db",
	EnvPrefix + "REDIS_CHANNEL":  "redis.channel",
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment, in that order of precedence,
// then validates it.
func Load(path string) (Config, error) {
	raw := make(map[string]any)

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, path, err)
		}
		if raw == nil {
			raw = make(map[string]any)
		}
	}

	for env, key := range envMapping {
		if val, ok := os.LookupEnv(env); ok {
			setByPath(raw, key, val)
		}
	}

	cfg := Default()
	if err := decode(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			millisecondsHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// millisecondsHook reads bare numbers as milliseconds, so `delay: 300`
// and LCSVIZ_DELAY=300 mean 300ms.
func millisecondsHook(from, to reflect.Type, data any) (any, error) {
	if to != durationType {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return time.Duration(v) * time.Millisecond, nil
	case int64:
		return time.Duration(v) * time.Millisecond, nil
	case float64:
		return time.Duration(v * float64(time.Millisecond)), nil
	case string:
		if ms, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return time.Duration(ms) * time.Millisecond, nil
		}
	}
	return data, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Delay < domain.MinDelay || c.Delay > domain.MaxDelay {
		errs = append(errs, fmt.Errorf("%w: %s not in [%s, %s]", domain.ErrDelayOutOfRange, c.Delay, domain.MinDelay, domain.MaxDelay))
	}
	if c.MaxLength < 1 {
		errs = append(errs, fmt.Errorf("%w: max_length must be positive, got %d", domain.ErrInvalidConfig, c.MaxLength))
	}
	if c.Redis.DB < 0 {
		errs = append(errs, fmt.Errorf("%w: redis.db must not be negative, got %d", domain.ErrInvalidConfig, c.Redis.DB))
	}
	return errors.Join(errs...)
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
