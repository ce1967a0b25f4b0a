package physics

import (
	"fmt"
	"math"
)

// Collision classifies which side of the second rectangle the first one hit.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
	CollisionInside
)

// String returns a human-readable name for the collision side.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Collide tests body rectangle a against obstacle rectangle b.
//
// Rectangles that only touch do not collide. On overlap each axis is
// classified on its own: an edge of a crossing into b gives a side and a
// penetration depth, anything else (a spans b, or b spans a) gives Inside with
// unbounded depth. The axis with the strictly smaller depth wins; otherwise
// the horizontal classification is returned, so full containment on both axes
// is Inside.
//
// Collide panics if either rectangle has a non-positive extent.
func Collide(a, b Box) Collision {
	if !validExtent(a.Size) || !validExtent(b.Size) {
		panic(fmt.Sprintf("physics: Collide with invalid extent %v / %v", a.Size, b.Size))
	}

	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	if aMin.X() >= bMax.X() || aMax.X() <= bMin.X() ||
		aMin.Y() >= bMax.Y() || aMax.Y() <= bMin.Y() {
		return CollisionNone
	}

	xSide, xDepth := CollisionInside, math.Inf(-1)
	switch {
	case aMin.X() < bMin.X() && aMax.X() > bMin.X() && aMax.X() < bMax.X():
		xSide, xDepth = CollisionLeft, bMin.X()-aMax.X()
	case aMin.X() > bMin.X() && aMin.X() < bMax.X() && aMax.X() > bMax.X():
		xSide, xDepth = CollisionRight, aMin.X()-bMax.X()
	}

	ySide, yDepth := CollisionInside, math.Inf(-1)
	switch {
	case aMin.Y() < bMin.Y() && aMax.Y() > bMin.Y() && aMax.Y() < bMax.Y():
		ySide, yDepth = CollisionBottom, bMin.Y()-aMax.Y()
	case aMin.Y() > bMin.Y() && aMin.Y() < bMax.Y() && aMax.Y() > bMax.Y():
		ySide, yDepth = CollisionTop, aMin.Y()-bMax.Y()
	}

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return ySide
	}
	return xSide
}
