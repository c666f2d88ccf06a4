package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvistgaard/kinbox/internal/core"
	"github.com/kvistgaard/kinbox/internal/storage"
)

// Sim is the interface the platform drives. The simulation contains pure
// logic with no Bubble Tea dependencies; the platform handles input
// mapping, timing and rendering.
type Sim interface {
	// ID returns a unique identifier for this simulation.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the simulation state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current simulation state.
	State() core.SimState

	// Trail returns the recorded position history for the session flush.
	Trail() []core.Vec2
}

// Model is the Bubble Tea model for running a sandbox session.
type Model struct {
	sim        Sim
	screen     *core.Screen
	store      *storage.Store
	trailPath  string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	simState   core.SimState
	keyMapper  *KeyMapper
	quitting   bool
	flushed    bool
	flushErr   error
}

// NewModel creates a new Bubble Tea model for the given simulation.
// trailPath is the plain-text position log appended at session end; store
// may be nil, in which case only the file flush happens.
func NewModel(sim Sim, store *storage.Store, cfg core.RuntimeConfig, trailPath string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		sim:        sim,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		trailPath:  trailPath,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the simulation.
func (m Model) Init() tea.Cmd {
	m.sim.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		// Quit: flush the trail once, then stop the loop. The file is
		// the session's only durable output, so the error is carried
		// out of the program rather than dropped.
		m.flushTrail()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Restart the session at the new scale
	m.sim.Reset(m.config)
	m.simState = m.sim.State()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.sim.Step(m.inputFrame)
	m.simState = result.State

	// Clear per-frame input (the pointer position is sticky)
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// flushTrail writes the session trail exactly once: to the plain-text log
// (errors propagate) and best-effort to the store.
func (m *Model) flushTrail() {
	if m.flushed {
		return
	}
	m.flushed = true

	trail := m.sim.Trail()

	if m.trailPath != "" {
		m.flushErr = storage.AppendTrail(m.trailPath, trail)
	}

	if m.store != nil && len(trail) > 0 {
		//nolint:errcheck // Best-effort save, the file log is the artifact
		m.store.SaveTrail(m.sim.ID(), trail)
	}
}

// FlushErr returns the error from the end-of-session trail flush, if any.
func (m Model) FlushErr() error {
	return m.flushErr
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the session ends.
// It returns the trail-flush error if the session's position log could
// not be written.
func Run(sim Sim, store *storage.Store, cfg core.RuntimeConfig, trailPath string) error {
	model := NewModel(sim, store, cfg, trailPath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer tracking needs motion events
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(Model); ok {
		return m.FlushErr()
	}
	return nil
}
