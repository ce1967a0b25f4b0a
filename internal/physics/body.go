// Package physics implements the platformer's tick pipeline: velocity from
// directional intent, position integration with gravity, and axis-aligned
// collision resolution against static terrain.
//
// The package is pure and single-threaded. A World owns exactly one Body and
// an immutable set of Obstacles; the platform calls World.Step once per fixed
// simulation tick.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrInvalidExtent is returned for rectangles whose width or height is not
	// strictly positive.
	ErrInvalidExtent = errors.New("physics: rectangle extent must be positive")

	// ErrNoBody is returned when a world is built or stepped without its body.
	ErrNoBody = errors.New("physics: world has no controlled body")

	// ErrObstacleOverlap is returned when two static obstacles overlap.
	ErrObstacleOverlap = errors.New("physics: obstacles overlap")

	// ErrInvalidParams is returned by Params.Validate.
	ErrInvalidParams = errors.New("physics: invalid parameters")
)

// Box is an axis-aligned rectangle given by its center and full size.
// The z component of Center only orders drawing; collision ignores it.
type Box struct {
	Center mgl64.Vec3
	Size   mgl64.Vec2
}

// Min returns the lower-left corner.
func (b Box) Min() mgl64.Vec2 {
	return b.Center.Vec2().Sub(b.Size.Mul(0.5))
}

// Max returns the upper-right corner.
func (b Box) Max() mgl64.Vec2 {
	return b.Center.Vec2().Add(b.Size.Mul(0.5))
}

func validExtent(size mgl64.Vec2) bool {
	// NaN fails both comparisons.
	return size.X() > 0 && size.Y() > 0 && !math.IsInf(size.X(), 0) && !math.IsInf(size.Y(), 0)
}

// Body is the controlled body. Position and Velocity are mutated by the tick
// stages; the collision extent is fixed at construction.
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec2
	size     mgl64.Vec2
}

// NewBody creates a body at rest.
func NewBody(pos mgl64.Vec3, size mgl64.Vec2) (*Body, error) {
	if !validExtent(size) {
		return nil, fmt.Errorf("%w: body size %v", ErrInvalidExtent, size)
	}
	return &Body{Position: pos, size: size}, nil
}

// Size returns the body's full width and height.
func (b Body) Size() mgl64.Vec2 {
	return b.size
}

// Box returns the body's current collision rectangle.
func (b Body) Box() Box {
	return Box{Center: b.Position, Size: b.size}
}

// Grounded reports whether the body rests on the nominal floor plane.
func (b Body) Grounded(p Params) bool {
	return IsGrounded(b.Position.Y(), p.GroundY)
}

// Obstacle is a static piece of terrain. It never moves after creation.
type Obstacle struct {
	position mgl64.Vec3
	size     mgl64.Vec2
}

// NewObstacle creates a static obstacle.
func NewObstacle(pos mgl64.Vec3, size mgl64.Vec2) (Obstacle, error) {
	if !validExtent(size) {
		return Obstacle{}, fmt.Errorf("%w: obstacle size %v", ErrInvalidExtent, size)
	}
	return Obstacle{position: pos, size: size}, nil
}

// Position returns the obstacle center.
func (o Obstacle) Position() mgl64.Vec3 {
	return o.position
}

// Size returns the obstacle's full width and height.
func (o Obstacle) Size() mgl64.Vec2 {
	return o.size
}

// Box returns the obstacle's collision rectangle.
func (o Obstacle) Box() Box {
	return Box{Center: o.position, Size: o.size}
}
