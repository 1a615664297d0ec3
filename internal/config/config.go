// Package config loads run configuration from the environment. Command-line
// flags layer on top of these values in the drivers.
package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds the environment-derived defaults for both run modes.
type Config struct {
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	Monitor struct {
		Addr string `env:"MONITOR_ADDR"`
	}
	Evolution struct {
		CR   float64 `env:"EVO_CR" envDefault:"0.9"`
		F    float64 `env:"EVO_F" envDefault:"0.5"`
		Seed int64   `env:"EVO_SEED" envDefault:"0"`
	}
	Sphere struct {
		PopulationSize int `env:"SPHERE_POP" envDefault:"50"`
		Objectives     int `env:"SPHERE_OBJECTIVES" envDefault:"1"`
		Dimension      int `env:"SPHERE_DIM" envDefault:"10"`
		MaxEvaluations int `env:"SPHERE_MAX_FE" envDefault:"10000"`
	}
	Sound struct {
		Converter  string  `env:"SOUND_CONVERTER" envDefault:"TwoBytes"`
		Channels   int     `env:"SOUND_CHANNELS" envDefault:"1"`
		SampleRate int     `env:"SOUND_SAMPLE_RATE" envDefault:"44100"`
		OutDir     string  `env:"SOUND_OUT_DIR" envDefault:"."`
		F          float64 `env:"SOUND_F" envDefault:"1.0"`
		Seed       int64   `env:"SOUND_SEED" envDefault:"0"`
	}
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
