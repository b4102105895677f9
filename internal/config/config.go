// Package config loads session configuration (spec.md §6): the player
// list, chosen kingdom cards, starting supply overrides, and the
// session seed. It is deliberately thin — the engine core it feeds
// treats config as a plain value, never re-reading it at runtime.
package config

import (
	"fmt"

	"github.com/dominioneer/dominioneer/internal/command"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// GameConfig mirrors command.StartGameParams field for field, with the
// same types, adding the mapstructure tags a YAML or env-var source
// needs.
type GameConfig struct {
	Players            []string       `mapstructure:"players"`
	KingdomCards       []string       `mapstructure:"kingdomCards"`
	Supply             map[string]int `mapstructure:"supply"`
	Seed               *uint64        `mapstructure:"seed"`
	StartingDeckRecipe []string       `mapstructure:"startingDeckRecipe"`
}

// LoggingConfig mirrors the logging section of the teacher's config
// shape: a level and an output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the full on-disk/env configuration surface.
type Config struct {
	Game      GameConfig    `mapstructure:"game"`
	Logging   LoggingConfig `mapstructure:"logging"`
	SessionID uuid.UUID     `mapstructure:"-"`
}

// Load reads configuration from path (if non-empty) and the
// DOMINIONEER_-prefixed environment, falling back to the zero value
// (which command.StartGame treats as "use standard-rules defaults")
// when nothing is set.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOMINIONEER")
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}
	cfg.SessionID = uuid.New()
	return &cfg, nil
}

// NewLogger builds a zap.Logger from the logging section: "json" for a
// production encoder, anything else for a colorized development one.
func (c LoggingConfig) NewLogger() (*zap.Logger, error) {
	var level zapcore.Level
	switch c.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if c.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// StartGameParams converts the loaded game section into the params
// command.Handler.StartGame expects.
func (c *Config) StartGameParams() command.StartGameParams {
	return command.StartGameParams{
		Players:            c.Game.Players,
		KingdomCards:       c.Game.KingdomCards,
		Supply:             c.Game.Supply,
		Seed:               c.Game.Seed,
		StartingDeckRecipe: c.Game.StartingDeckRecipe,
	}
}
