package porkbelly

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every configuration variable.
const EnvPrefix = "PORKBELLY_"

// Config holds the gameplay tunables and host settings. The defaults are the
// values the game was tuned with; override them with PORKBELLY_* variables.
type Config struct {
	WalkSpeed   float64 `env:"WALK_SPEED" envDefault:"150"`
	JumpImpulse float64 `env:"JUMP_IMPULSE" envDefault:"280"`
	// JumpAnimThreshold is the time off the floor before the jump pose shows.
	JumpAnimThreshold time.Duration `env:"JUMP_ANIM_THRESHOLD" envDefault:"250ms"`
	// FootstepThreshold is the minimum time between footstep sounds.
	FootstepThreshold time.Duration `env:"FOOTSTEP_THRESHOLD" envDefault:"250ms"`
	InteractDistance  float64       `env:"INTERACT_DISTANCE" envDefault:"150"`
	// FallLimit is the Y below which the player is snapped back to spawn height.
	FallLimit float64 `env:"FALL_LIMIT" envDefault:"1200"`
	Gravity   float64 `env:"GRAVITY" envDefault:"500"`

	MusicVolume    float64 `env:"MUSIC_VOLUME" envDefault:"0.5"`
	SFXVolume      float64 `env:"SFX_VOLUME" envDefault:"0.09"`
	TulipVolume    float64 `env:"TULIP_VOLUME" envDefault:"0.04"`
	DialogueVolume float64 `env:"DIALOGUE_VOLUME" envDefault:"1.0"`
	Mute           bool    `env:"MUTE"`

	AssetDir string  `env:"ASSET_DIR" envDefault:"assets"`
	Width    int     `env:"WIDTH" envDefault:"1920"`
	Height   int     `env:"HEIGHT" envDefault:"1080"`
	Zoom     float64 `env:"ZOOM" envDefault:"3"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Debug     bool   `env:"DEBUG"`
	// Script is an optional path to a JSON input script played instead of
	// the keyboard.
	Script string `env:"SCRIPT"`
	// Seed fixes the random source; 0 seeds from the runtime.
	Seed uint64 `env:"SEED"`
}

// DefaultConfig returns the configuration with every default applied and no
// environment overrides.
func DefaultConfig() *Config {
	cfg := &Config{}
	err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: map[string]string{},
	})
	if err != nil {
		panic(fmt.Sprintf("porkbelly: bad config defaults: %v", err))
	}
	return cfg
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(envFiles ...string) (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that would break the controller or the window.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("walk speed", c.WalkSpeed)
	positive("jump impulse", c.JumpImpulse)
	positive("interact distance", c.InteractDistance)
	positive("zoom", c.Zoom)
	if c.JumpAnimThreshold <= 0 {
		errs = append(errs, fmt.Errorf("jump animation threshold must be positive, got %v", c.JumpAnimThreshold))
	}
	if c.FootstepThreshold <= 0 {
		errs = append(errs, fmt.Errorf("footstep threshold must be positive, got %v", c.FootstepThreshold))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	volumes := []struct {
		name string
		v    float64
	}{
		{"music volume", c.MusicVolume},
		{"sfx volume", c.SFXVolume},
		{"tulip volume", c.TulipVolume},
		{"dialogue volume", c.DialogueVolume},
	}
	for _, vol := range volumes {
		if vol.v < 0 || vol.v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", vol.name, vol.v))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("porkbelly: invalid config: %w", err)
	}
	return nil
}
