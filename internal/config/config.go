package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"smart-home/internal/domain/translator"
)

type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Hue       HueConfig
}

type HueConfig struct {
	ClimateFormula string  `env:"HUE_CLIMATE_FORMULA" envDefault:"(x - 7) * 254 / 21"`
	MinTemperature float64 `env:"HUE_MIN_TEMPERATURE" envDefault:"7"`
	MaxTemperature float64 `env:"HUE_MAX_TEMPERATURE" envDefault:"28"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}
	if c.Hue.MinTemperature >= c.Hue.MaxTemperature {
		return fmt.Errorf("HUE_MIN_TEMPERATURE %g must be below HUE_MAX_TEMPERATURE %g",
			c.Hue.MinTemperature, c.Hue.MaxTemperature)
	}
	return nil
}

func (c *Config) TranslatorOptions() translator.Options {
	return translator.Options{
		ClimateFormula: c.Hue.ClimateFormula,
		MinTemperature: c.Hue.MinTemperature,
		MaxTemperature: c.Hue.MaxTemperature,
	}
}
