package physics

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Contact records that the body touched an obstacle during a tick.
type Contact struct {
	Obstacle int       // Index into the world's obstacle list
	Side     Collision // Side of the obstacle that was struck
	Tick     uint64    // Tick that produced the contact
}

// GroundObserver is notified with the ground check of every tick.
type GroundObserver func(y float64, grounded bool)

// ContactObserver is notified of every contact as it is resolved.
type ContactObserver func(c Contact)

// Option configures a World.
type Option func(*World)

// WithGroundObserver installs a ground-check hook.
func WithGroundObserver(fn GroundObserver) Option {
	return func(w *World) {
		w.onGround = fn
	}
}

// WithContactObserver installs a contact hook.
func WithContactObserver(fn ContactObserver) Option {
	return func(w *World) {
		w.onContact = fn
	}
}

// World is the simulation state of one platformer session: a single body and
// the static terrain around it. It is not safe for concurrent use.
type World struct {
	params    Params
	body      *Body
	obstacles []Obstacle

	tick        uint64
	grounded    bool
	contacts    []Contact
	lastContact Contact
	hasContact  bool

	onGround  GroundObserver
	onContact ContactObserver
}

// NewWorld validates and assembles a world. The body and the obstacle slice
// are copied; afterwards only Step changes the body.
func NewWorld(p Params, body *Body, obstacles []Obstacle, opts ...Option) (*World, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, ErrNoBody
	}
	if !validExtent(body.size) {
		return nil, fmt.Errorf("%w: body size %v", ErrInvalidExtent, body.size)
	}
	for i, o := range obstacles {
		if !validExtent(o.size) {
			return nil, fmt.Errorf("%w: obstacle %d size %v", ErrInvalidExtent, i, o.size)
		}
	}
	for i := range obstacles {
		for j := i + 1; j < len(obstacles); j++ {
			if Collide(obstacles[i].Box(), obstacles[j].Box()) != CollisionNone {
				return nil, fmt.Errorf("%w: %d and %d", ErrObstacleOverlap, i, j)
			}
		}
	}

	owned := *body
	w := &World{
		params:    p,
		body:      &owned,
		obstacles: slices.Clone(obstacles),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.grounded = owned.Grounded(p)
	return w, nil
}

// Step advances the world by one tick: velocity from intent, then movement,
// then collision resolution.
func (w *World) Step(in Intent) error {
	if w.body == nil {
		return ErrNoBody
	}
	w.tick++
	w.contacts = w.contacts[:0]

	w.grounded = w.body.Grounded(w.params)
	if w.onGround != nil {
		w.onGround(w.body.Position.Y(), w.grounded)
	}

	ApplyIntent(w.body, in, w.grounded, w.params)
	Move(w.body, w.params)
	Resolve(w.body, w.obstacles, w.params, w.recordContact)
	return nil
}

func (w *World) recordContact(index int, side Collision) {
	c := Contact{Obstacle: index, Side: side, Tick: w.tick}
	w.contacts = append(w.contacts, c)
	w.lastContact = c
	w.hasContact = true
	if w.onContact != nil {
		w.onContact(c)
	}
}

// Params returns the world's tuning constants.
func (w *World) Params() Params {
	return w.params
}

// Body returns a copy of the controlled body.
func (w *World) Body() Body {
	if w.body == nil {
		return Body{}
	}
	return *w.body
}

// Position returns the body position.
func (w *World) Position() mgl64.Vec3 {
	if w.body == nil {
		return mgl64.Vec3{}
	}
	return w.body.Position
}

// Velocity returns the body velocity.
func (w *World) Velocity() mgl64.Vec2 {
	if w.body == nil {
		return mgl64.Vec2{}
	}
	return w.body.Velocity
}

// Obstacles returns a copy of the static terrain.
func (w *World) Obstacles() []Obstacle {
	return slices.Clone(w.obstacles)
}

// Grounded returns the ground check made at the start of the last tick.
func (w *World) Grounded() bool {
	return w.grounded
}

// Contacts returns the contacts produced by the last tick, in obstacle order.
func (w *World) Contacts() []Contact {
	return slices.Clone(w.contacts)
}

// LastContact returns the most recent contact, if any tick produced one.
func (w *World) LastContact() (Contact, bool) {
	return w.lastContact, w.hasContact
}

// Tick returns the number of completed ticks.
func (w *World) Tick() uint64 {
	return w.tick
}
