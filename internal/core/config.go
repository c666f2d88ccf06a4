package core

// RuntimeConfig contains configuration passed to the sim at initialization.
// The sim uses this to adapt to screen size and for deterministic stepping.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Seed for anything randomized (0 = platform picks one)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// SimState represents the externally observable state of the simulation.
// Returned by Sim.State() to communicate status to the platform.
type SimState struct {
	Position      Vec2    // Entity position in physics coordinates
	TrailLen      int     // Number of recorded trail points
	Elapsed       float64 // Simulation time in seconds
	Paused        bool    // Whether the sim is paused
	LaunchPreview bool    // Whether the trajectory preview is on
	Tracking      bool    // Whether the target tracking line is on
}

// StepResult is returned by Sim.Step() after each simulation tick.
type StepResult struct {
	State SimState
}
