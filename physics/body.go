package physics

import "github.com/automoto/summit/gamemath"

// Flags records which sides of a body hit solid geometry this tick.
type Flags struct {
	Up, Down, Left, Right bool
}

// Horizontal reports a wall contact on either side.
func (f Flags) Horizontal() bool {
	return f.Left || f.Right
}

// Body is an axis-aligned box moving through the tile world.
type Body struct {
	Pos        gamemath.Vec2
	Vel        gamemath.Vec2
	Size       gamemath.Vec2
	Collisions Flags
}

func (b *Body) Rect() gamemath.Rect {
	return gamemath.NewRect(b.Pos, b.Size)
}

// RectSource supplies the solid rectangles near a position.
type RectSource interface {
	PhysicsRectsAround(pos gamemath.Vec2) []gamemath.Rect
}
