// Package config loads rampage settings from the environment, with command
// line flags taking precedence.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/borkshop/rampage/internal/game"
)

// Prefix is prepended to every environment variable name.
const Prefix = "RAMPAGE_"

// Config holds the executable's settings.
type Config struct {
	Seed     uint64 `env:"SEED"      envDefault:"12345"`
	SavePath string `env:"SAVE_PATH" envDefault:"rampage.db"`
	SaveSlot string `env:"SAVE_SLOT" envDefault:"autosave"`
	LogFile  string `env:"LOG_FILE"`
	FPS      int    `env:"FPS"       envDefault:"60"`
	Load     bool   `env:"LOAD"      envDefault:"true"`

	// Rules start out as game.DefaultRules; RAMPAGE_RULES_* variables
	// override single numbers.
	Rules game.Rules `envPrefix:"RULES_"`
}

// Parse reads the environment, then flags from args.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Rules: game.DefaultRules()}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "map generation seed for a new game")
	fs.StringVar(&cfg.SavePath, "save", cfg.SavePath, "save database path; empty disables saving")
	fs.StringVar(&cfg.SaveSlot, "slot", cfg.SaveSlot, "save slot name")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "file to write the game log to")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.BoolVar(&cfg.Load, "load", cfg.Load, "resume from the save slot when it exists")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.FPS <= 0 {
		return Config{}, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	return cfg, nil
}
