// Package config provides YAML-based simulation configuration loading.
package config

import "fmt"

// SimConfig contains all tunables for a sandbox session.
type SimConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Movement MovementConfig `yaml:"movement"`
	Entity   EntityConfig   `yaml:"entity"`
	Preview  PreviewConfig  `yaml:"preview"`
	Overlay  OverlayConfig  `yaml:"overlay"`
}

// ArenaConfig defines the bounded region the entity moves in, in physics
// units, not screen cells; the renderer scales.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig parameterizes the motion model owned by the entity.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // units/s², downward magnitude
	AccelX    float64 `yaml:"accel_x"`    // units/s² along X
	InitialVX float64 `yaml:"initial_vx"` // units/s
	InitialVY float64 `yaml:"initial_vy"` // units/s
}

// MovementConfig defines discrete stepping: the displacement of one step
// per axis and how many steps a single key press performs.
type MovementConfig struct {
	StepX       float64 `yaml:"step_x"`
	StepY       float64 `yaml:"step_y"`
	Steps       int     `yaml:"steps"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// EntityConfig defines the entity's start position and appearance.
type EntityConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// PreviewConfig controls the projected-trajectory overlay toggled by the
// launch key.
type PreviewConfig struct {
	Horizon float64 `yaml:"horizon"` // seconds of trajectory to sample
	Samples int     `yaml:"samples"` // number of sample points
}

// OverlayConfig controls the HUD text overlay.
type OverlayConfig struct {
	ShowHUD bool `yaml:"show_hud"`
}

// Validate checks the config for values the sim cannot run with.
func (c SimConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("config: arena size %gx%g must be positive", c.Arena.Width, c.Arena.Height)
	}
	if c.Movement.StepX <= 0 || c.Movement.StepY <= 0 {
		return fmt.Errorf("config: step sizes must be positive")
	}
	if c.Movement.Steps <= 0 {
		return fmt.Errorf("config: steps per key press must be positive")
	}
	if c.Movement.JumpImpulse < 0 {
		return fmt.Errorf("config: jump impulse must be non-negative")
	}
	if c.Preview.Horizon <= 0 || c.Preview.Samples <= 0 {
		return fmt.Errorf("config: preview horizon and samples must be positive")
	}
	if c.Entity.StartX < 0 || c.Entity.StartX > c.Arena.Width ||
		c.Entity.StartY < 0 || c.Entity.StartY > c.Arena.Height {
		return fmt.Errorf("config: start position (%g, %g) outside arena",
			c.Entity.StartX, c.Entity.StartY)
	}
	return nil
}
