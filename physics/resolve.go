package physics

// MoveX applies dx and pushes the body out of any solid it now overlaps.
// Velocity is left alone; walls only stop position.
func MoveX(b *Body, dx float64, world RectSource) {
	b.Pos.X += dx
	if dx == 0 {
		return
	}

	for _, r := range world.PhysicsRectsAround(b.Pos) {
		if !b.Rect().Overlaps(r) {
			continue
		}
		if dx > 0 {
			b.Pos.X = r.Left() - b.Size.X
			b.Collisions.Right = true
		} else {
			b.Pos.X = r.Right()
			b.Collisions.Left = true
		}
	}
}

// MoveY applies dy and pushes the body out of any solid it now overlaps.
// Any vertical contact zeroes vertical velocity.
func MoveY(b *Body, dy float64, world RectSource) {
	b.Pos.Y += dy
	if dy == 0 {
		return
	}

	for _, r := range world.PhysicsRectsAround(b.Pos) {
		if !b.Rect().Overlaps(r) {
			continue
		}
		if dy > 0 {
			b.Pos.Y = r.Top() - b.Size.Y
			b.Collisions.Down = true
		} else {
			b.Pos.Y = r.Bottom()
			b.Collisions.Up = true
		}
		b.Vel.Y = 0
	}
}

// Move clears the collision flags and integrates velocity one tick,
// horizontal axis first so corners resolve the same way every time.
func Move(b *Body, world RectSource) {
	b.Collisions = Flags{}
	MoveX(b, b.Vel.X, world)
	MoveY(b, b.Vel.Y, world)
}
