package physics

import (
	"fmt"
	"math"
	"strings"
)

// Params holds the tuning constants of the tick pipeline. Units are pixels
// and pixels per tick.
type Params struct {
	Gravity       float64 // Subtracted from vertical velocity after every move
	RunSpeed      float64 // Horizontal speed set by left/right intent
	JumpImpulse   float64 // Vertical speed set by up intent
	GroundY       float64 // Body is grounded at or below this y
	TopSnapOffset float64 // Body y after landing = obstacle y + this
}

// DefaultParams returns the reference platformer constants.
func DefaultParams() Params {
	return Params{
		Gravity:       0.1,
		RunSpeed:      2.0,
		JumpImpulse:   3.0,
		GroundY:       -105,
		TopSnapOffset: 15,
	}
}

// Validate checks that every constant is finite and that speeds are not negative.
func (p Params) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"gravity", p.Gravity},
		{"run_speed", p.RunSpeed},
		{"jump_impulse", p.JumpImpulse},
		{"ground_y", p.GroundY},
		{"top_snap_offset", p.TopSnapOffset},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParams, f.name)
		}
	}
	if p.Gravity < 0 || p.RunSpeed < 0 || p.JumpImpulse < 0 {
		return fmt.Errorf("%w: gravity, run_speed and jump_impulse must not be negative", ErrInvalidParams)
	}
	return nil
}

// Intent is the set of directional inputs active during one tick.
type Intent uint8

const (
	IntentLeft Intent = 1 << iota
	IntentRight
	IntentUp
	IntentDown

	IntentNone Intent = 0
)

// Has reports whether every direction in d is active.
func (i Intent) Has(d Intent) bool {
	return d != IntentNone && i&d == d
}

// With returns the intent with d added.
func (i Intent) With(d Intent) Intent {
	return i | d
}

// String lists the active directions, e.g. "left+up".
func (i Intent) String() string {
	if i == IntentNone {
		return "none"
	}
	var parts []string
	for _, d := range []struct {
		bit  Intent
		name string
	}{
		{IntentLeft, "left"},
		{IntentRight, "right"},
		{IntentUp, "up"},
		{IntentDown, "down"},
	} {
		if i.Has(d.bit) {
			parts = append(parts, d.name)
		}
	}
	return strings.Join(parts, "+")
}

// IsGrounded reports whether a body at height y stands on the floor plane at
// groundY. Terrain geometry is not consulted.
func IsGrounded(y, groundY float64) bool {
	return y <= groundY
}

// ApplyIntent sets velocity from directional intent. Intent replaces the
// affected components instead of adding to them, and is ignored entirely
// while airborne. Down is accepted but has no effect.
func ApplyIntent(b *Body, in Intent, grounded bool, p Params) {
	if !grounded {
		return
	}
	if in.Has(IntentLeft) {
		b.Velocity[0] = -p.RunSpeed
	}
	if in.Has(IntentRight) {
		b.Velocity[0] = p.RunSpeed
	}
	if in.Has(IntentUp) {
		b.Velocity[1] = p.JumpImpulse
	}
}

// Move displaces the body by its velocity, then applies gravity. The
// displacement of a tick therefore uses the previous tick's vertical speed.
func Move(b *Body, p Params) {
	b.Position[0] += b.Velocity.X()
	b.Position[1] += b.Velocity.Y()
	b.Velocity[1] -= p.Gravity
}
