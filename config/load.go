package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the tuning groups. Groups missing from the file keep
// their current values; fields missing from a group do too.
type overrides struct {
	Physics *PhysicsConfig `yaml:"physics"`
	Player  *PlayerConfig  `yaml:"player"`
	Jump    *JumpConfig    `yaml:"jump"`
	Dash    *DashConfig    `yaml:"dash"`
	Stamina *StaminaConfig `yaml:"stamina"`
	Effects *EffectsConfig `yaml:"effects"`
	Death   *DeathConfig   `yaml:"death"`
	Level   *LevelConfig   `yaml:"level"`
}

// LoadFile applies tuning overrides from a YAML file on top of the current
// values.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML overrides from data. Unknown keys are rejected so typos
// don't silently fall back to defaults.
func Apply(data []byte) error {
	// Decode into copies so a bad file leaves the globals untouched.
	physics, pl, jump, dash := Physics, Player, Jump, Dash
	stamina, effects, death, level := Stamina, Effects, Death, Level
	o := overrides{
		Physics: &physics,
		Player:  &pl,
		Jump:    &jump,
		Dash:    &dash,
		Stamina: &stamina,
		Effects: &effects,
		Death:   &death,
		Level:   &level,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	if err := validate(&pl, &jump, &dash, &level); err != nil {
		return err
	}

	Physics, Player, Jump, Dash = physics, pl, jump, dash
	Stamina, Effects, Death, Level = stamina, effects, death, level
	return nil
}

func validate(pl *PlayerConfig, jump *JumpConfig, dash *DashConfig, level *LevelConfig) error {
	if level.TileSize <= 0 {
		return fmt.Errorf("level.tile_size must be positive, got %d", level.TileSize)
	}
	if dash.ActiveTicks <= 0 || dash.ActiveTicks > dash.Duration {
		return fmt.Errorf("dash.active_ticks must be in 1..%d, got %d", dash.Duration, dash.ActiveTicks)
	}
	if jump.MaxHoldTicks <= 0 {
		return fmt.Errorf("jump.max_hold_ticks must be positive, got %d", jump.MaxHoldTicks)
	}
	if pl.Width <= 0 || pl.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %vx%v", pl.Width, pl.Height)
	}
	return nil
}
