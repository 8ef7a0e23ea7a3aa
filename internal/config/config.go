// Package config holds the bot's configuration: an explicit struct
// constructed once at startup and passed to whatever needs it, never
// ambient globals. Values come from an optional yaml file overlaid with
// environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir      = ".boffin"
	DefaultPresence     = "science questions | /help"
	DefaultHistoryLimit = 50
)

type Config struct {
	// Discord credentials, env-only.
	Token   string `env:"BOFFIN_TOKEN" yaml:"-"`
	GuildID string `env:"BOFFIN_GUILD_ID" yaml:"-"`

	Presence     string     `env:"BOFFIN_PRESENCE" yaml:"presence"`
	DataDir      string     `env:"BOFFIN_DATA_DIR" yaml:"data_dir"`
	HistoryLimit int        `yaml:"history_limit"`
	Plot         PlotConfig `yaml:"plot"`
}

// PlotConfig sets the defaults for the plot command.
type PlotConfig struct {
	From    float64 `yaml:"from"`
	To      float64 `yaml:"to"`
	Samples int     `yaml:"samples"`
	Height  int     `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Presence:     DefaultPresence,
		DataDir:      DefaultDataDir,
		HistoryLimit: DefaultHistoryLimit,
		Plot: PlotConfig{
			From:    -10,
			To:      10,
			Samples: 80,
			Height:  12,
		},
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ParseEnv overlays environment variables onto cfg.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
