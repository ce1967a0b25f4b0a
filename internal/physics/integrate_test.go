package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func newTestBody(t *testing.T, x, y float64) *Body {
	t.Helper()
	b, err := NewBody(mgl64.Vec3{x, y, 0}, mgl64.Vec2{10, 20})
	require.NoError(t, err)
	return b
}

func TestIsGrounded(t *testing.T) {
	tests := []struct {
		y        float64
		expected bool
	}{
		{-110, true},
		{-105, true},
		{-104.9, false},
		{-50, false},
		{0, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, IsGrounded(tc.y, -105), "IsGrounded(%v)", tc.y)
	}
}

func TestApplyIntentGroundedOverrides(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name     string
		prior    mgl64.Vec2
		in       Intent
		expected mgl64.Vec2
	}{
		{"left from rest", mgl64.Vec2{0, 0}, IntentLeft, mgl64.Vec2{-2, 0}},
		{"left replaces rightward speed", mgl64.Vec2{7.5, 0}, IntentLeft, mgl64.Vec2{-2, 0}},
		{"right replaces leftward speed", mgl64.Vec2{-7.5, -1}, IntentRight, mgl64.Vec2{2, -1}},
		{"up sets jump impulse", mgl64.Vec2{1, -4}, IntentUp, mgl64.Vec2{1, 3}},
		{"down does nothing", mgl64.Vec2{1, -4}, IntentDown, mgl64.Vec2{1, -4}},
		{"no intent keeps velocity", mgl64.Vec2{1, -4}, IntentNone, mgl64.Vec2{1, -4}},
		{"left and right: right applied last", mgl64.Vec2{0, 0}, IntentLeft | IntentRight, mgl64.Vec2{2, 0}},
		{"run and jump together", mgl64.Vec2{0, 0}, IntentLeft | IntentUp, mgl64.Vec2{-2, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBody(t, 0, -110)
			b.Velocity = tc.prior
			ApplyIntent(b, tc.in, true, p)
			assert.Equal(t, tc.expected, b.Velocity)
		})
	}
}

func TestApplyIntentAirborneLockout(t *testing.T) {
	p := DefaultParams()
	for _, in := range []Intent{IntentLeft, IntentRight, IntentUp, IntentDown, IntentLeft | IntentUp} {
		b := newTestBody(t, 0, -50)
		b.Velocity = mgl64.Vec2{0.5, 1.5}
		ApplyIntent(b, in, false, p)
		assert.Equal(t, mgl64.Vec2{0.5, 1.5}, b.Velocity, "intent %s", in)
	}
}

func TestMoveUsesPreviousVerticalSpeed(t *testing.T) {
	b := newTestBody(t, 3, -50)
	b.Velocity = mgl64.Vec2{1, 5}

	Move(b, DefaultParams())

	assert.InDelta(t, 4, b.Position.X(), eps)
	assert.InDelta(t, -45, b.Position.Y(), eps)
	assert.InDelta(t, 1, b.Velocity.X(), eps)
	assert.InDelta(t, 4.9, b.Velocity.Y(), eps)
}

func TestMoveLeavesZAlone(t *testing.T) {
	b, err := NewBody(mgl64.Vec3{0, 0, 2}, mgl64.Vec2{10, 20})
	require.NoError(t, err)
	b.Velocity = mgl64.Vec2{1, 1}
	Move(b, DefaultParams())
	assert.Equal(t, 2.0, b.Position.Z())
}

func TestGravityHasNoTerminalVelocity(t *testing.T) {
	p := DefaultParams()
	b := newTestBody(t, 0, 100000)

	prev := b.Velocity.Y()
	for i := 0; i < 500; i++ {
		ApplyIntent(b, IntentLeft|IntentUp, b.Grounded(p), p)
		Move(b, p)
		assert.InDelta(t, prev-p.Gravity, b.Velocity.Y(), eps, "tick %d", i)
		prev = b.Velocity.Y()
	}
	assert.InDelta(t, -50, b.Velocity.Y(), 1e-6)
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "none", IntentNone.String())
	assert.Equal(t, "left+up", (IntentUp | IntentLeft).String())
	assert.True(t, IntentLeft.With(IntentDown).Has(IntentDown))
	assert.False(t, IntentLeft.Has(IntentNone))
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	p := DefaultParams()
	p.Gravity = -0.1
	assert.ErrorIs(t, p.Validate(), ErrInvalidParams)
}

func TestNewBodyRejectsInvalidExtent(t *testing.T) {
	_, err := NewBody(mgl64.Vec3{}, mgl64.Vec2{10, 0})
	assert.ErrorIs(t, err, ErrInvalidExtent)

	_, err = NewObstacle(mgl64.Vec3{}, mgl64.Vec2{-1, 10})
	assert.ErrorIs(t, err, ErrInvalidExtent)
}
