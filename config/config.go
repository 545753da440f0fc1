package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

var ErrInvalidConfig = errors.New("invalid config")

// GameConfig holds the session tunables exposed to players
type GameConfig struct {
	Width             int    `toml:"width"`
	Height            int    `toml:"height"`
	StartX            int    `toml:"start_x"`
	StartY            int    `toml:"start_y"`
	StartLength       int    `toml:"start_length"`
	StartDirection    string `toml:"start_direction"`
	InitialIntervalMs int    `toml:"initial_interval_ms"`
	MinIntervalMs     int    `toml:"min_interval_ms"`
	RampThreshold     int    `toml:"ramp_threshold"`
	TailChase         bool   `toml:"tail_chase"`
	Seed              uint64 `toml:"seed"` // 0 seeds from the clock
}

// AppConfig holds process-level settings
type AppConfig struct {
	Keymap string `toml:"keymap"`
	Debug  bool   `toml:"debug"`
	Mute   bool   `toml:"mute"`
}

// Config is the merged result of defaults, config file and environment
type Config struct {
	Game GameConfig `toml:"game"`
	App  AppConfig  `toml:"app"`
}

// Default returns the classic board settings
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Width:             constants.GridWidth,
			Height:            constants.GridHeight,
			StartX:            constants.StartX,
			StartY:            constants.StartY,
			StartLength:       constants.StartLength,
			StartDirection:    engine.DirRight.String(),
			InitialIntervalMs: int(constants.InitialTickInterval / time.Millisecond),
			MinIntervalMs:     int(constants.MinTickInterval / time.Millisecond),
			RampThreshold:     constants.RampThreshold,
		},
	}
}

// Load builds the config: defaults, .env, optional TOML file at path, then VI_SNAKE_* overrides
// An empty path skips the file; a missing .env is ignored
func Load(path string) (*Config, error) {
	return load(path, constants.EnvFileName)
}

func load(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from VI_SNAKE_* variables
func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WIDTH", &c.Game.Width},
		{"HEIGHT", &c.Game.Height},
		{"START_LENGTH", &c.Game.StartLength},
		{"INITIAL_INTERVAL_MS", &c.Game.InitialIntervalMs},
		{"MIN_INTERVAL_MS", &c.Game.MinIntervalMs},
		{"RAMP_THRESHOLD", &c.Game.RampThreshold},
	}
	for _, f := range ints {
		v, ok := os.LookupEnv(constants.EnvPrefix + f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, constants.EnvPrefix, f.key, v, err)
		}
		*f.dst = n
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"TAIL_CHASE", &c.Game.TailChase},
		{"DEBUG", &c.App.Debug},
		{"MUTE", &c.App.Mute},
	}
	for _, f := range bools {
		v, ok := os.LookupEnv(constants.EnvPrefix + f.key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, constants.EnvPrefix, f.key, v, err)
		}
		*f.dst = b
	}

	if v := os.Getenv(constants.EnvPrefix + "SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q: %v", ErrInvalidConfig, constants.EnvPrefix, v, err)
		}
		c.Game.Seed = n
	}
	if v := os.Getenv(constants.EnvPrefix + "START_DIRECTION"); v != "" {
		c.Game.StartDirection = v
	}
	if v := os.Getenv(constants.EnvPrefix + "KEYMAP"); v != "" {
		c.App.Keymap = v
	}

	return nil
}

// Validate checks the config produces playable rules
func (c *Config) Validate() error {
	rules, err := c.Rules()
	if err != nil {
		return err
	}
	if err := rules.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Rules converts the game section to engine rules
// Sessions built from config open on the start overlay
func (c *Config) Rules() (engine.Rules, error) {
	dir, ok := engine.ParseDirection(c.Game.StartDirection)
	if !ok {
		return engine.Rules{}, fmt.Errorf("%w: start direction %q", ErrInvalidConfig, c.Game.StartDirection)
	}

	r := engine.DefaultRules()
	r.Grid = engine.Grid{Width: c.Game.Width, Height: c.Game.Height}
	r.Start = engine.Coord{X: c.Game.StartX, Y: c.Game.StartY}
	r.StartLength = c.Game.StartLength
	r.StartDirection = dir
	r.InitialInterval = time.Duration(c.Game.InitialIntervalMs) * time.Millisecond
	r.MinInterval = time.Duration(c.Game.MinIntervalMs) * time.Millisecond
	r.RampThreshold = c.Game.RampThreshold
	r.TailChase = c.Game.TailChase
	r.StartPaused = true
	return r, nil
}
