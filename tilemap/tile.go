package tilemap

import "github.com/automoto/summit/gamemath"

// Kind names a tile type. Unknown kinds are carried through load/save untouched.
type Kind string

const (
	Grass      Kind = "grass"
	Stone      Kind = "stone"
	Spikes     Kind = "spikes"
	Spawn      Kind = "spawn"
	Finish     Kind = "finish"
	Decor      Kind = "decor"
	LargeDecor Kind = "large_decor"
	Checkpoint Kind = "checkpoint"
)

var physicsKinds = map[Kind]struct{}{
	Grass: {},
	Stone: {},
}

var autotileKinds = map[Kind]struct{}{
	Grass:  {},
	Stone:  {},
	Spikes: {},
}

// IsPhysics reports whether tiles of this kind are solid.
func (k Kind) IsPhysics() bool {
	_, ok := physicsKinds[k]
	return ok
}

// IsAutotile reports whether Autotile recomputes variants for this kind.
func (k Kind) IsAutotile() bool {
	_, ok := autotileKinds[k]
	return ok
}

// Coord is a grid cell position.
type Coord struct {
	X, Y int
}

func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Tile is a grid-aligned tile.
type Tile struct {
	Kind    Kind
	Variant int
	Pos     Coord
}

// OffgridTile is a decorative tile placed at a pixel position. It is never
// collision checked.
type OffgridTile struct {
	Kind    Kind
	Variant int
	Pos     gamemath.Vec2
}

// KindVariant selects tiles for Extract.
type KindVariant struct {
	Kind    Kind
	Variant int
}
