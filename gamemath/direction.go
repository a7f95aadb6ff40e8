package gamemath

// Direction is one of the eight compass directions (or zero). Components are
// -1, 0 or 1; up is negative Y.
type Direction struct {
	X, Y int
}

var DirectionNone = Direction{}

// ResolveDirection builds a direction from held movement input. Opposite
// inputs cancel.
func ResolveDirection(moveX, moveY int) Direction {
	return Direction{X: sign(moveX), Y: sign(moveY)}
}

func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

func (d Direction) IsDiagonal() bool {
	return d.X != 0 && d.Y != 0
}

// Scaled returns the direction as a velocity of the given magnitude.
// Diagonal components are multiplied by diagonalScale.
func (d Direction) Scaled(speed, diagonalScale float64) Vec2 {
	if d.IsDiagonal() {
		speed *= diagonalScale
	}
	return Vec2{X: float64(d.X) * speed, Y: float64(d.Y) * speed}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
