package tui

import "github.com/vovakirdan/arcade-sketches/internal/core"

// HoldTicks is how long a movement key counts as held after its last press.
// Terminals report key repeats but never key releases.
const HoldTicks = 7

// heldKeys latches movement keys across ticks so that holding an arrow keeps
// the body running instead of moving one tick per repeat event.
type heldKeys struct {
	until map[core.Action]uint64
}

func newHeldKeys() heldKeys {
	return heldKeys{until: make(map[core.Action]uint64)}
}

// holdable reports whether a press should persist across ticks.
// One-shot actions like pause fire exactly once.
func holdable(a core.Action) bool {
	return a.IsDirection() || a == core.ActionJump
}

// press records a key press seen during tick. Only one direction is held at a
// time, the latest one.
func (h heldKeys) press(a core.Action, tick uint64) {
	if !holdable(a) {
		return
	}
	if a.IsDirection() {
		for held := range h.until {
			if held.IsDirection() {
				delete(h.until, held)
			}
		}
	}
	h.until[a] = tick + HoldTicks
}

// apply adds every action still held at tick to frame and forgets the
// expired ones.
func (h heldKeys) apply(frame *core.InputFrame, tick uint64) {
	for a, until := range h.until {
		if tick >= until {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// reset forgets every latch.
func (h heldKeys) reset() {
	clear(h.until)
}
