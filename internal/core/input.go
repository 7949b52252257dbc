package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow - move left while held
	ActionRight            // Right arrow - move right while held
	ActionJump             // Up arrow - jump from the ground
	ActionSuperJump        // Space - jump 1.5x higher from the ground
	ActionConfirm          // Enter - start the game, play again after game over
	ActionPause            // P, Escape - pause/resume
	ActionRestart          // R - reset to a fresh game
	ActionHelp             // ?, H - show instructions
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionSuperJump:
		return "SuperJump"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsHeld reports whether the action is a movement action that stays active
// while its key is down, as opposed to a one-shot control press.
func (a Action) IsHeld() bool {
	switch a {
	case ActionLeft, ActionRight, ActionJump, ActionSuperJump:
		return true
	}
	return false
}

// InputFrame represents the input state for a single simulation tick:
// every movement key currently held plus any control key pressed since the last tick.
type InputFrame struct {
	// Actions maps action types to whether they are active this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active (key down).
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Unset marks an action as inactive (key up).
func (f *InputFrame) Unset(a Action) {
	if f.Actions == nil {
		return
	}
	f.Actions[a] = false
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// DefaultHoldWindow is how long a key counts as held after its last press
// when the input source never reports key releases.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldTracker turns a stream of key presses into a held-key set for input
// sources (terminals) that report presses and auto-repeats but no releases.
// A key is released once it has not repeated within the hold window.
type HoldTracker struct {
	window time.Duration
	last   map[Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
// A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window: window,
		last:   make(map[Action]time.Time),
	}
}

// Press records a key-down (or auto-repeat) for the action at time now.
func (h *HoldTracker) Press(a Action, now time.Time) {
	h.last[a] = now
}

// Release forgets the action immediately.
func (h *HoldTracker) Release(a Action) {
	delete(h.last, a)
}

// Expire releases every action whose last press is older than the hold window.
// Returns the released actions.
func (h *HoldTracker) Expire(now time.Time) []Action {
	var released []Action
	for a, t := range h.last {
		if now.Sub(t) > h.window {
			delete(h.last, a)
			released = append(released, a)
		}
	}
	return released
}

// Held returns true if the action is currently held.
func (h *HoldTracker) Held(a Action) bool {
	_, ok := h.last[a]
	return ok
}

// Apply writes the held set into frame: held actions are set, others unset.
func (h *HoldTracker) Apply(frame *InputFrame) {
	for _, a := range []Action{ActionLeft, ActionRight, ActionJump, ActionSuperJump} {
		if h.Held(a) {
			frame.Set(a)
		} else {
			frame.Unset(a)
		}
	}
}
