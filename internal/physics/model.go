// Package physics implements closed-form constant-acceleration kinematics
// for the sandbox. A Model is immutable: initial conditions and
// accelerations are fixed at construction, and every query is a pure
// function of elapsed time, safe to call repeatedly or concurrently.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/kvistgaard/kinbox/internal/core"
)

// ErrNegativeTime is returned when a query is made for t < 0.
// Negative elapsed time is a caller bug, not a state the model can reach.
var ErrNegativeTime = errors.New("physics: elapsed time must be non-negative")

// Model holds the initial conditions of a body under constant acceleration.
// Positions are in physics coordinates (Y up), velocities in units/s and
// accelerations in units/s². A downward gravity is a negative AY.
type Model struct {
	pos0 core.Vec2 // initial position
	vel0 core.Vec2 // initial velocity
	acc  core.Vec2 // constant acceleration per axis
}

// NewModel creates a motion model from initial position, initial velocity
// and per-axis constant acceleration.
func NewModel(pos0, vel0, acc core.Vec2) Model {
	return Model{pos0: pos0, vel0: vel0, acc: acc}
}

// NewGravityModel is a convenience constructor for the common case of a
// body accelerated straight down: gravity is the magnitude in units/s².
func NewGravityModel(pos0, vel0 core.Vec2, gravity float64) Model {
	return NewModel(pos0, vel0, core.Vec2{X: 0, Y: -gravity})
}

// Initial returns the model's initial position.
func (m Model) Initial() core.Vec2 {
	return m.pos0
}

// InitialVelocity returns the model's initial velocity.
func (m Model) InitialVelocity() core.Vec2 {
	return m.vel0
}

// Acceleration returns the model's per-axis acceleration.
func (m Model) Acceleration() core.Vec2 {
	return m.acc
}

// Position returns the body's position after t seconds:
// 0.5·a·t² + v0·t + p0 per axis.
func (m Model) Position(t float64) (core.Vec2, error) {
	if t < 0 {
		return core.Vec2{}, fmt.Errorf("position at t=%v: %w", t, ErrNegativeTime)
	}
	return core.Vec2{
		X: 0.5*m.acc.X*t*t + m.vel0.X*t + m.pos0.X,
		Y: 0.5*m.acc.Y*t*t + m.vel0.Y*t + m.pos0.Y,
	}, nil
}

// Velocity returns the body's velocity after t seconds: a·t + v0 per axis.
func (m Model) Velocity(t float64) (core.Vec2, error) {
	if t < 0 {
		return core.Vec2{}, fmt.Errorf("velocity at t=%v: %w", t, ErrNegativeTime)
	}
	return core.Vec2{
		X: m.acc.X*t + m.vel0.X,
		Y: m.acc.Y*t + m.vel0.Y,
	}, nil
}

// Speed returns the Euclidean norm of the velocity after t seconds.
// For t <= 0 it returns the norm of the initial velocity vector, using
// both components squared.
func (m Model) Speed(t float64) float64 {
	if t <= 0 {
		return math.Sqrt(m.vel0.X*m.vel0.X + m.vel0.Y*m.vel0.Y)
	}
	v := core.Vec2{
		X: m.acc.X*t + m.vel0.X,
		Y: m.acc.Y*t + m.vel0.Y,
	}
	return v.Len()
}
