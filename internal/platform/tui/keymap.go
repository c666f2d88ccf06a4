package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvistgaard/kinbox/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to simulation
// actions. This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "up", "w":
		return core.ActionMoveUp, false
	case "down", "s":
		return core.ActionMoveDown, false
	case "left", "a":
		return core.ActionMoveLeft, false
	case "right", "d":
		return core.ActionMoveRight, false
	case "j":
		return core.ActionJump, false
	case " ":
		return core.ActionLaunch, false
	case "t":
		return core.ActionTrack, false
	case "p", "esc":
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame updates an input frame based on a mouse message:
// motion moves the pointer, a left press records a click.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	switch msg.Action {
	case tea.MouseActionMotion:
		frame.SetPointer(msg.X, msg.Y)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.SetClick(msg.X, msg.Y)
		}
	}
}
