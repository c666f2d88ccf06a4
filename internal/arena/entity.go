// Package arena implements the bounded entity: a single controllable body
// whose discrete position lives inside a rectangular arena. The entity owns
// a closed-form motion model for trajectory queries, but its step-wise
// movement is an independent discrete system: the model's output reaches
// the position only through an explicit Launch.
package arena

import (
	"errors"
	"fmt"

	"github.com/kvistgaard/kinbox/internal/core"
	"github.com/kvistgaard/kinbox/internal/physics"
)

// Direction enumerates the discrete movement directions.
type Direction int

const (
	// Up steps toward the y=0 edge; Down steps toward y=height.
	// This matches the arena's step convention; the render boundary is
	// where the vertical flip happens.
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ErrInvalidDirection is returned for a direction outside the enumerated set.
var ErrInvalidDirection = errors.New("arena: invalid direction")

// ErrImpulseSign is returned when a jump impulse contradicts its direction:
// up requires a non-negative impulse, down a non-positive one.
var ErrImpulseSign = errors.New("arena: jump impulse sign does not match direction")

// Entity is the mutable simulation body: current position, an append-only
// trail of accepted positions, explicit arena bounds, and an owned motion
// model for trajectory projection. It has exactly one caller per session
// and is not safe for concurrent use.
type Entity struct {
	pos    core.Vec2
	trail  []core.Vec2
	bounds core.Bounds
	model  physics.Model
}

// New creates an entity at the given position inside bounds. The initial
// velocity and gravity parameterize the owned motion model; they do not
// affect discrete movement.
func New(initial core.Vec2, bounds core.Bounds, vel0 core.Vec2, gravity float64) *Entity {
	return NewWithModel(initial, bounds, physics.NewGravityModel(initial, vel0, gravity))
}

// NewWithModel creates an entity with an explicit motion model, for callers
// that need acceleration beyond plain gravity.
func NewWithModel(initial core.Vec2, bounds core.Bounds, model physics.Model) *Entity {
	return &Entity{
		pos:    initial,
		bounds: bounds,
		model:  model,
	}
}

// Position returns the entity's current position.
func (e *Entity) Position() core.Vec2 {
	return e.pos
}

// Bounds returns the arena bounds the entity was created with.
func (e *Entity) Bounds() core.Bounds {
	return e.bounds
}

// Model returns the owned motion model.
func (e *Entity) Model() physics.Model {
	return e.model
}

// Trail returns a copy of the recorded position history, in accept order.
func (e *Entity) Trail() []core.Vec2 {
	out := make([]core.Vec2, len(e.trail))
	copy(out, e.trail)
	return out
}

// TrailLen returns the number of recorded trail points.
func (e *Entity) TrailLen() int {
	return len(e.trail)
}

// Move advances the entity steps times by stepSize along direction.
//
// The call is admitted or vetoed as a whole: if the first step would leave
// the arena, nothing happens and Move reports moved=false with a nil error
// (the boundary veto is a defined no-op, not a failure). Once admitted,
// every individual step that reaches an edge wraps to the opposite edge.
// Each applied step appends the new position to the trail.
func (e *Entity) Move(dir Direction, stepSize float64, steps int) (bool, error) {
	switch dir {
	case Up, Down, Left, Right:
	default:
		return false, fmt.Errorf("move %s: %w", dir, ErrInvalidDirection)
	}

	if steps <= 0 {
		return false, nil
	}

	if e.firstStepExits(dir, stepSize) {
		return false, nil
	}

	for i := 0; i < steps; i++ {
		e.step(dir, stepSize)
	}
	return true, nil
}

// firstStepExits reports whether one stepSize advance along dir would cross
// the arena boundary. Landing exactly on an edge is not an exit; the step
// is admitted and wraps.
func (e *Entity) firstStepExits(dir Direction, stepSize float64) bool {
	switch dir {
	case Up:
		return e.pos.Y-stepSize < 0
	case Down:
		return e.pos.Y+stepSize > e.bounds.H
	case Left:
		return e.pos.X-stepSize < 0
	case Right:
		return e.pos.X+stepSize > e.bounds.W
	}
	return false
}

// step applies a single displacement, wrapping to the opposite edge when
// the step reaches the bound, and records the new position.
func (e *Entity) step(dir Direction, stepSize float64) {
	switch dir {
	case Up:
		if e.pos.Y-stepSize <= 0 {
			e.pos.Y = e.bounds.H
		} else {
			e.pos.Y -= stepSize
		}
	case Down:
		if e.pos.Y+stepSize >= e.bounds.H {
			e.pos.Y = 0
		} else {
			e.pos.Y += stepSize
		}
	case Left:
		if e.pos.X-stepSize <= 0 {
			e.pos.X = e.bounds.W
		} else {
			e.pos.X -= stepSize
		}
	case Right:
		if e.pos.X+stepSize >= e.bounds.W {
			e.pos.X = 0
		} else {
			e.pos.X += stepSize
		}
	}
	e.trail = append(e.trail, e.pos)
}

// Jump applies exactly one vertical displacement of impulse. Up requires a
// non-negative impulse and moves toward y=0; Down requires a non-positive
// impulse. Unlike Move, Jump performs no boundary check and never wraps:
// the position may leave the arena. The landing position is recorded in
// the trail.
func (e *Entity) Jump(impulse float64, dir Direction) error {
	switch dir {
	case Up:
		if impulse < 0 {
			return fmt.Errorf("jump up with impulse %v: %w", impulse, ErrImpulseSign)
		}
		e.pos.Y -= impulse
	case Down:
		if impulse > 0 {
			return fmt.Errorf("jump down with impulse %v: %w", impulse, ErrImpulseSign)
		}
		e.pos.Y += impulse
	default:
		return fmt.Errorf("jump %s: %w", dir, ErrInvalidDirection)
	}
	e.trail = append(e.trail, e.pos)
	return nil
}

// Project returns the position the owned motion model predicts after t
// seconds. It never mutates the entity.
func (e *Entity) Project(t float64) (core.Vec2, error) {
	p, err := e.model.Position(t)
	if err != nil {
		return core.Vec2{}, fmt.Errorf("project: %w", err)
	}
	return p, nil
}

// ProjectVelocity returns the model's predicted velocity after t seconds.
func (e *Entity) ProjectVelocity(t float64) (core.Vec2, error) {
	v, err := e.model.Velocity(t)
	if err != nil {
		return core.Vec2{}, fmt.Errorf("project velocity: %w", err)
	}
	return v, nil
}

// Launch commits the model's projected position at time t to the entity.
// This is the single place model output becomes entity state; it performs
// no boundary check and does not extend the trail.
func (e *Entity) Launch(t float64) error {
	p, err := e.Project(t)
	if err != nil {
		return fmt.Errorf("launch: %w", err)
	}
	e.pos = p
	return nil
}
