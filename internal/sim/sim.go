// Package sim implements the sandbox simulation: one controllable entity
// stepping around a bounded arena, with a gravity-driven trajectory preview
// and a pointer tracking overlay. The package is pure (no Bubble Tea, no
// I/O) so stepping is deterministic and testable; the platform layer maps
// raw input to InputFrames and presents the screen buffer.
package sim

import (
	"fmt"
	"math"

	"github.com/kvistgaard/kinbox/internal/arena"
	"github.com/kvistgaard/kinbox/internal/config"
	"github.com/kvistgaard/kinbox/internal/core"
	"github.com/kvistgaard/kinbox/internal/physics"
)

// Visual characters for rendering
const (
	EntityChar  = '●'
	TrailChar   = '·'
	PreviewChar = '∘'
	TrackChar   = '·'
	TargetChar  = '✛'
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Sandbox implements the simulation logic behind the platform's Sim
// interface.
type Sandbox struct {
	entity  *arena.Entity
	cfg     config.SimConfig
	runtime core.RuntimeConfig

	paused        bool
	launchPreview bool // trajectory preview toggled by the launch key
	tracking      bool // pointer tracking line

	pointerX, pointerY int  // last pointer position, screen cells
	pointerValid       bool
	target             core.Vec2 // clicked target, physics coordinates
	targetValid        bool

	tickCount int
}

// New creates a new sandbox instance.
func New() *Sandbox {
	return &Sandbox{}
}

// ID returns the unique identifier for this simulation.
func (s *Sandbox) ID() string {
	return "sandbox"
}

// Title returns the display name for this simulation.
func (s *Sandbox) Title() string {
	return "Kinematics Sandbox"
}

// Config returns the loaded simulation configuration.
// Only valid after Reset.
func (s *Sandbox) Config() config.SimConfig {
	return s.cfg
}

// Entity exposes the bounded entity. Only valid after Reset.
func (s *Sandbox) Entity() *arena.Entity {
	return s.entity
}

// Reset initializes or restarts the simulation.
func (s *Sandbox) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime

	cfg, err := config.LoadSim(configPath)
	if err != nil {
		cfg = config.DefaultSimConfig()
	}
	s.cfg = cfg

	start := core.Vec2{X: cfg.Entity.StartX, Y: cfg.Entity.StartY}
	model := physics.NewModel(
		start,
		core.Vec2{X: cfg.Physics.InitialVX, Y: cfg.Physics.InitialVY},
		core.Vec2{X: cfg.Physics.AccelX, Y: -cfg.Physics.Gravity},
	)
	s.entity = arena.NewWithModel(
		start,
		core.Bounds{W: cfg.Arena.Width, H: cfg.Arena.Height},
		model,
	)

	s.paused = false
	s.launchPreview = false
	s.tracking = false
	s.pointerValid = false
	s.targetValid = false
	s.tickCount = 0
}

// Elapsed returns the simulation time in seconds. Paused ticks do not
// advance it, which keeps stepping deterministic under scripted input.
func (s *Sandbox) Elapsed() float64 {
	if s.runtime.TickRate <= 0 {
		return 0
	}
	return float64(s.tickCount) / float64(s.runtime.TickRate)
}

// Step advances the simulation by one tick.
func (s *Sandbox) Step(in core.InputFrame) core.StepResult {
	// Pause toggles even while paused, everything else waits.
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	s.tickCount++

	// Pointer state is sticky; the tracking target follows it.
	if in.PointerValid {
		s.pointerX = in.PointerX
		s.pointerY = in.PointerY
		s.pointerValid = true
	}
	if in.Clicked {
		s.target = s.physicsAt(in.PointerX, in.PointerY)
		s.targetValid = true
	}

	// Discrete movement. A vetoed move is a defined no-op; direction
	// values here are always valid, so errors cannot occur.
	mv := s.cfg.Movement
	if in.Has(core.ActionMoveUp) {
		s.entity.Move(arena.Up, mv.StepY, mv.Steps) //nolint:errcheck
	}
	if in.Has(core.ActionMoveDown) {
		s.entity.Move(arena.Down, mv.StepY, mv.Steps) //nolint:errcheck
	}
	if in.Has(core.ActionMoveLeft) {
		s.entity.Move(arena.Left, mv.StepX, mv.Steps) //nolint:errcheck
	}
	if in.Has(core.ActionMoveRight) {
		s.entity.Move(arena.Right, mv.StepX, mv.Steps) //nolint:errcheck
	}
	if in.Has(core.ActionJump) {
		s.entity.Jump(mv.JumpImpulse, arena.Up) //nolint:errcheck
	}

	// Toggles. The launch key only toggles the preview: the live loop
	// never commits a projection to the entity.
	if in.Has(core.ActionLaunch) {
		s.launchPreview = !s.launchPreview
	}
	if in.Has(core.ActionTrack) {
		s.tracking = !s.tracking
	}

	return core.StepResult{State: s.State()}
}

// State returns the externally observable simulation state.
func (s *Sandbox) State() core.SimState {
	return core.SimState{
		Position:      s.entity.Position(),
		TrailLen:      s.entity.TrailLen(),
		Elapsed:       s.Elapsed(),
		Paused:        s.paused,
		LaunchPreview: s.launchPreview,
		Tracking:      s.tracking,
	}
}

// Trail returns the entity's recorded position history for flushing at
// session end.
func (s *Sandbox) Trail() []core.Vec2 {
	return s.entity.Trail()
}

// cellOf maps a physics position to a screen cell. The arena is scaled to
// the full screen and the vertical axis flipped at this boundary only.
func (s *Sandbox) cellOf(p core.Vec2) (int, int) {
	flipped := core.FlipY(p, s.cfg.Arena.Height)
	x := int(math.Round(flipped.X / s.cfg.Arena.Width * float64(s.runtime.ScreenW-1)))
	y := int(math.Round(flipped.Y / s.cfg.Arena.Height * float64(s.runtime.ScreenH-1)))
	return x, y
}

// physicsAt is the inverse of cellOf: screen cell to physics position.
func (s *Sandbox) physicsAt(cx, cy int) core.Vec2 {
	flipped := core.Vec2{
		X: float64(cx) / float64(s.runtime.ScreenW-1) * s.cfg.Arena.Width,
		Y: float64(cy) / float64(s.runtime.ScreenH-1) * s.cfg.Arena.Height,
	}
	return core.FlipY(flipped, s.cfg.Arena.Height)
}

// Render draws the current simulation state to the screen.
func (s *Sandbox) Render(dst *core.Screen) {
	dst.Clear()

	// Trail first so the entity draws over it
	for _, p := range s.entity.Trail() {
		if !s.entity.Bounds().Inside(p) {
			continue
		}
		x, y := s.cellOf(p)
		dst.SetCell(x, y, TrailChar, core.ColorGray)
	}

	if s.launchPreview {
		s.drawPreview(dst)
	}

	if s.tracking && s.pointerValid {
		ex, ey := s.cellOf(s.entity.Position())
		dst.DrawLine(ex, ey, s.pointerX, s.pointerY, TrackChar, core.ColorBlue)
	}

	if s.targetValid {
		tx, ty := s.cellOf(s.target)
		dst.SetCell(tx, ty, TargetChar, core.ColorYellow)
	}

	// Entity
	ex, ey := s.cellOf(s.entity.Position())
	dst.SetCell(ex, ey, EntityChar, core.ColorRed)

	if s.cfg.Overlay.ShowHUD {
		s.drawHUD(dst)
	}

	if s.paused {
		s.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawPreview samples the projected trajectory and draws the points that
// fall inside the arena. Projection is read-only: the entity never moves.
func (s *Sandbox) drawPreview(dst *core.Screen) {
	pv := s.cfg.Preview
	for i := 1; i <= pv.Samples; i++ {
		t := pv.Horizon * float64(i) / float64(pv.Samples)
		p, err := s.entity.Project(t)
		if err != nil {
			return
		}
		if !s.entity.Bounds().Inside(p) {
			continue
		}
		x, y := s.cellOf(p)
		dst.SetCell(x, y, PreviewChar, core.ColorCyan)
	}
}

// drawHUD renders the text overlay along the top edge.
func (s *Sandbox) drawHUD(dst *core.Screen) {
	pos := s.entity.Position()

	cursor := "Cursor: (-, -)"
	if s.pointerValid {
		c := s.physicsAt(s.pointerX, s.pointerY)
		cursor = fmt.Sprintf("Cursor: (%.0f, %.0f)", c.X, c.Y)
	}

	dst.DrawText(0, 0, cursor)
	dst.DrawText(0, 1, fmt.Sprintf("Entity: (%.1f, %.1f)", pos.X, pos.Y))
	dst.DrawText(0, 2, fmt.Sprintf("Time: %.2f [s]", s.Elapsed()))
	acc := s.entity.Model().Acceleration()
	dst.DrawText(0, 3, fmt.Sprintf("a: (%.2f, %.2f) [u/s²]", acc.X, acc.Y))

	var flags string
	if s.launchPreview {
		flags += " [LAUNCH]"
	}
	if s.tracking {
		flags += " [TRACK]"
	}
	if flags != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(flags)), 0, flags, core.ColorBrightGreen)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (s *Sandbox) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
