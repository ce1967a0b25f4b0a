package physics

// Resolve tests the body against every obstacle in order and corrects it on
// contact. Each test sees the body as left by the previous correction, so with
// several contacts in one tick the last one wins.
//
// Top contacts stop the body and snap it to obstacle y + TopSnapOffset.
// Bottom contacts stop the body without moving it. Left, Right and Inside
// contacts are reported but change nothing. emit may be nil.
func Resolve(b *Body, obstacles []Obstacle, p Params, emit func(index int, side Collision)) {
	for i, o := range obstacles {
		side := Collide(b.Box(), o.Box())
		if side == CollisionNone {
			continue
		}
		if emit != nil {
			emit(i, side)
		}

		switch side {
		case CollisionTop:
			b.Velocity[0], b.Velocity[1] = 0, 0
			b.Position[1] = o.position.Y() + p.TopSnapOffset
		case CollisionBottom:
			b.Velocity[0], b.Velocity[1] = 0, 0
		}
	}
}
