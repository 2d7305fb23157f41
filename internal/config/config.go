// Package config loads partcalc settings from a YAML file, PARTCALC_*
// environment variables and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. PARTCALC_ENGINE_SCALE.
const EnvPrefix = "PARTCALC"

// Config is the complete configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Engine EngineConfig `mapstructure:"engine" yaml:"engine"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
}

// LoggerConfig controls diagnostics output.
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// EngineConfig holds the layout engine settings.
type EngineConfig struct {
	Scale       float64           `mapstructure:"scale" yaml:"scale"`
	CalcCache   bool              `mapstructure:"calc_cache" yaml:"calc_cache"`
	Perspective PerspectiveConfig `mapstructure:"perspective" yaml:"perspective"`
}

// PerspectiveConfig is the engine-wide default perspective. A zero focal
// distance disables it.
type PerspectiveConfig struct {
	X     int `mapstructure:"x" yaml:"x"`
	Y     int `mapstructure:"y" yaml:"y"`
	Z0    int `mapstructure:"z0" yaml:"z0"`
	Focal int `mapstructure:"focal" yaml:"focal"`
}

// RenderConfig is the default container size.
type RenderConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)

	v.SetDefault("engine.scale", 1.0)
	v.SetDefault("engine.calc_cache", false)
	v.SetDefault("engine.perspective.x", 0)
	v.SetDefault("engine.perspective.y", 0)
	v.SetDefault("engine.perspective.z0", 0)
	v.SetDefault("engine.perspective.focal", 0)

	v.SetDefault("render.width", 80)
	v.SetDefault("render.height", 24)
}

// NewDefault returns the configuration with nothing but defaults applied.
func NewDefault() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// New creates a viper instance with defaults and environment binding. When
// file is empty, ./partcalc.yaml is used if present.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("partcalc")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return v, nil
}

// Load reads and validates the configuration.
func Load(file string) (*Config, error) {
	v, err := New(file)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// FromViper unmarshals and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Engine.Scale <= 0 {
		return fmt.Errorf("engine.scale must be positive, got %v", c.Engine.Scale)
	}
	if c.Engine.Perspective.Focal < 0 {
		return fmt.Errorf("engine.perspective.focal must not be negative")
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return fmt.Errorf("render size must not be negative, got %dx%d", c.Render.Width, c.Render.Height)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	return nil
}
