package config

import (
	_ "embed"
)

//go:embed defaults/sim.yaml
var defaultSimYAML []byte

// DefaultSimConfig returns the built-in simulation configuration, used as
// the last-resort fallback when no YAML source can be read.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Arena: ArenaConfig{
			Width:  600,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:   9.81,
			AccelX:    0,
			InitialVX: 10,
			InitialVY: 10,
		},
		Movement: MovementConfig{
			StepX:       5,
			StepY:       5,
			Steps:       3,
			JumpImpulse: 50,
		},
		Entity: EntityConfig{
			StartX: 20,
			StartY: 20,
		},
		Preview: PreviewConfig{
			Horizon: 5.0,
			Samples: 60,
		},
		Overlay: OverlayConfig{
			ShowHUD: true,
		},
	}
}
