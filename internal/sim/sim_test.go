package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kvistgaard/kinbox/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

// writeTestConfig points the package at a throwaway config file and
// registers cleanup back to the default search order.
func writeTestConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestStepMovesEntity(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	start := s.State().Position
	result := s.Step(frame(core.ActionMoveRight))

	cfg := s.Config()
	wantX := start.X + cfg.Movement.StepX*float64(cfg.Movement.Steps)
	if result.State.Position.X != wantX || result.State.Position.Y != start.Y {
		t.Errorf("Position = %v, expected (%v, %v)", result.State.Position, wantX, start.Y)
	}
	if result.State.TrailLen != cfg.Movement.Steps {
		t.Errorf("TrailLen = %d, expected %d (one per step)", result.State.TrailLen, cfg.Movement.Steps)
	}
}

func TestStepBoundaryVeto(t *testing.T) {
	writeTestConfig(t, `
arena: {width: 600, height: 600}
physics: {gravity: 9.81, initial_vx: 10, initial_vy: 10}
movement: {step_x: 5, step_y: 5, steps: 3, jump_impulse: 50}
entity: {start_x: 2, start_y: 300}
preview: {horizon: 5, samples: 60}
overlay: {show_hud: true}
`)

	s := New()
	s.Reset(testRuntime())

	// From x=2 a 5-unit step left crosses x=0: whole call vetoed.
	result := s.Step(frame(core.ActionMoveLeft))
	if result.State.Position.X != 2 {
		t.Errorf("Position.X = %v, expected veto to keep 2", result.State.Position.X)
	}
	if result.State.TrailLen != 0 {
		t.Errorf("TrailLen = %d, expected 0 after veto", result.State.TrailLen)
	}
}

func TestStepJump(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	start := s.State().Position
	result := s.Step(frame(core.ActionJump))

	wantY := start.Y - s.Config().Movement.JumpImpulse
	if result.State.Position.Y != wantY {
		t.Errorf("Position.Y = %v, expected %v after jump", result.State.Position.Y, wantY)
	}
	if result.State.TrailLen != 1 {
		t.Errorf("TrailLen = %d, expected 1 after jump", result.State.TrailLen)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	s.Step(frame(core.ActionPause))
	if !s.State().Paused {
		t.Fatal("Pause action should pause the sim")
	}

	before := s.State()
	s.Step(frame(core.ActionMoveRight))
	s.Step(frame(core.ActionJump))

	after := s.State()
	if after.Position != before.Position || after.TrailLen != before.TrailLen {
		t.Error("Paused ticks must not mutate the entity")
	}
	if after.Elapsed != before.Elapsed {
		t.Error("Paused ticks must not advance simulation time")
	}

	// Unpause resumes stepping.
	s.Step(frame(core.ActionPause))
	s.Step(frame(core.ActionMoveRight))
	if s.State().Position == before.Position {
		t.Error("Sim should move again after unpausing")
	}
}

func TestLaunchTogglesPreviewOnly(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	start := s.State().Position
	s.Step(frame(core.ActionLaunch))

	if !s.State().LaunchPreview {
		t.Fatal("Launch action should enable the preview")
	}

	// Ticking with the preview on must never move the entity: the loop
	// projects but never launches.
	for i := 0; i < 120; i++ {
		s.Step(core.NewInputFrame())
	}
	if s.State().Position != start {
		t.Errorf("Preview moved the entity from %v to %v", start, s.State().Position)
	}

	s.Step(frame(core.ActionLaunch))
	if s.State().LaunchPreview {
		t.Error("Second launch action should disable the preview")
	}
}

func TestElapsedFollowsTickRate(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	for i := 0; i < 90; i++ {
		s.Step(core.NewInputFrame())
	}

	if got := s.State().Elapsed; got != 1.5 {
		t.Errorf("Elapsed = %v, expected 1.5 after 90 ticks at 60 Hz", got)
	}
}

func TestDeterminism(t *testing.T) {
	// Two runs over the same scripted input land in the same state.
	script := make([]core.InputFrame, 300)
	for i := range script {
		script[i] = core.NewInputFrame()
		switch {
		case i%7 == 0:
			script[i].Set(core.ActionMoveRight)
		case i%11 == 0:
			script[i].Set(core.ActionMoveUp)
		case i%13 == 0:
			script[i].Set(core.ActionJump)
		case i%17 == 0:
			script[i].Set(core.ActionLaunch)
		}
	}

	run := func() core.SimState {
		s := New()
		s.Reset(testRuntime())
		var st core.StepResult
		for _, f := range script {
			st = s.Step(f)
		}
		return st.State
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("Runs diverged: %+v vs %+v", a, b)
	}
}

func TestRenderShowsEntityAndHUD(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	if !screenContains(screen, EntityChar) {
		t.Error("Render should draw the entity glyph")
	}
	if !strings.Contains(screen.Row(1), "Entity:") {
		t.Errorf("Row(1) = %q, expected the entity HUD line", screen.Row(1))
	}
	if !strings.Contains(screen.Row(2), "Time:") {
		t.Errorf("Row(2) = %q, expected the time HUD line", screen.Row(2))
	}
}

func TestClickMarksTarget(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	f := core.NewInputFrame()
	f.SetClick(40, 12)
	s.Step(f)

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	if !screenContains(screen, TargetChar) {
		t.Error("Render should mark the clicked target")
	}
}

func TestTrackingLineDrawn(t *testing.T) {
	s := New()
	s.Reset(testRuntime())

	f := core.NewInputFrame()
	f.Set(core.ActionTrack)
	f.SetPointer(60, 5)
	s.Step(f)

	if !s.State().Tracking {
		t.Fatal("Track action should enable tracking")
	}

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	if !screenContains(screen, TrackChar) {
		t.Error("Render should draw the tracking line")
	}
}

func TestRenderPreviewSamplesTrajectory(t *testing.T) {
	s := New()
	s.Reset(testRuntime())
	s.Step(frame(core.ActionLaunch))

	screen := core.NewScreen(80, 24)
	s.Render(screen)

	if !screenContains(screen, PreviewChar) {
		t.Error("Render with preview on should draw trajectory samples")
	}
}

func screenContains(s *core.Screen, r rune) bool {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) == r {
				return true
			}
		}
	}
	return false
}
