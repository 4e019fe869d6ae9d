/*
Package game
File: config.go
Description:
    Loads and validates stage.yaml. Zero values fall back to sensible
    defaults so a minimal stage file still boots; validation catches the
    mistakes defaults cannot paper over (duplicate capsule ids, zero-sized
    ship).
*/

package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the stage file, applies defaults, and validates it.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse stage config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stage config: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults fills zero-valued tuning fields.
func (c *Config) ApplyDefaults() {
	if c.Stage.Width <= 0 {
		c.Stage.Width = 960
	}
	if c.Stage.Height <= 0 {
		c.Stage.Height = 640
	}
	if c.Loop.StepMS <= 0 {
		c.Loop.StepMS = 1000.0 / 60.0
	}
	if c.Loop.MaxFrameMS <= 0 {
		c.Loop.MaxFrameMS = 250
	}
	if c.Ship.Width <= 0 {
		c.Ship.Width = 48
	}
	if c.Ship.Height <= 0 {
		c.Ship.Height = 48
	}
	if c.Ship.MaxFuel <= 0 {
		c.Ship.MaxFuel = 100
	}
	if c.Ship.DrainRate <= 0 {
		c.Ship.DrainRate = 5
	}
	if c.Ship.SpriteKey == "" {
		c.Ship.SpriteKey = "ship"
	}
	if c.Collision.HitboxShrink <= 0 {
		c.Collision.HitboxShrink = 0.75
	}
	if c.Collision.KnockbackDistance <= 0 {
		c.Collision.KnockbackDistance = 60
	}
	if c.Collision.FuelPenalty <= 0 {
		c.Collision.FuelPenalty = 10
	}
	if c.Collision.CooldownMS <= 0 {
		c.Collision.CooldownMS = 500
	}
}

// Validate rejects stages the simulation cannot run.
func (c *Config) Validate() error {
	if c.Collision.HitboxShrink > 1 {
		return fmt.Errorf("collision.hitbox_shrink %v exceeds 1", c.Collision.HitboxShrink)
	}
	seen := make(map[string]bool, len(c.Capsules))
	for i, capsule := range c.Capsules {
		if capsule.ID == "" {
			return fmt.Errorf("capsule %d has no id", i)
		}
		if seen[capsule.ID] {
			return fmt.Errorf("duplicate capsule id %q", capsule.ID)
		}
		seen[capsule.ID] = true
	}
	for i, station := range c.Stations {
		if station.RefuelAmount <= 0 {
			return fmt.Errorf("station %d has no refuel_amount", i)
		}
	}
	return nil
}
