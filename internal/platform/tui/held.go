package tui

import "github.com/vovakirdan/letter-workshop/internal/core"

// DefaultHoldTicks keeps an action alive across the gap between terminal key
// repeats at the default tick rate.
const DefaultHoldTicks = 8

// heldActions are the actions that behave like keys held down. Everything
// else fires for exactly one tick.
var heldActions = map[core.Action]bool{
	core.ActionUp:    true,
	core.ActionDown:  true,
	core.ActionLeft:  true,
	core.ActionRight: true,
	core.ActionJump:  true,
}

// HeldKeys approximates key-down state. Terminals only report presses and
// auto-repeats, never releases, so a press is treated as held for a few
// ticks and each repeat renews it.
type HeldKeys struct {
	ticks     int
	remaining map[core.Action]int
}

// NewHeldKeys creates a latch that holds each press for the given ticks.
func NewHeldKeys(ticks int) *HeldKeys {
	if ticks < 1 {
		ticks = 1
	}
	return &HeldKeys{
		ticks:     ticks,
		remaining: make(map[core.Action]int),
	}
}

// Press records a key press. Returns false for actions that are not latched.
func (h *HeldKeys) Press(a core.Action) bool {
	if !heldActions[a] {
		return false
	}
	h.remaining[a] = h.ticks
	// Opposite directions release each other so turning around is immediate
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	case core.ActionUp:
		delete(h.remaining, core.ActionDown)
	case core.ActionDown:
		delete(h.remaining, core.ActionUp)
	}
	return true
}

// Apply sets every held action on the frame and ages the latch by one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.remaining)
}

// Held reports whether an action is currently latched.
func (h *HeldKeys) Held(a core.Action) bool {
	return h.remaining[a] > 0
}
