package tilemap

import "github.com/automoto/summit/gamemath"

// neighborOffsets is the 3x3 window around a cell, self included.
var neighborOffsets = [9][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// TilesAround returns the existing tiles in the 3x3 window around the cell
// containing pos.
func (tm *Tilemap) TilesAround(pos gamemath.Vec2) []Tile {
	center := tm.CoordAt(pos)
	out := make([]Tile, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		if t, ok := tm.tiles[center.Add(off[0], off[1])]; ok {
			out = append(out, t)
		}
	}
	return out
}

// PhysicsRectsAround returns the world rectangles of solid tiles near pos.
func (tm *Tilemap) PhysicsRectsAround(pos gamemath.Vec2) []gamemath.Rect {
	var rects []gamemath.Rect
	for _, t := range tm.TilesAround(pos) {
		if t.Kind.IsPhysics() {
			rects = append(rects, tm.CellRect(t.Pos))
		}
	}
	return rects
}

// SolidCheck returns the solid tile in the cell containing pos, if any.
func (tm *Tilemap) SolidCheck(pos gamemath.Vec2) (Tile, bool) {
	t, ok := tm.tiles[tm.CoordAt(pos)]
	if !ok || !t.Kind.IsPhysics() {
		return Tile{}, false
	}
	return t, true
}

// SpikeCheck reports whether r overlaps any spikes tile.
func (tm *Tilemap) SpikeCheck(r gamemath.Rect) bool {
	return tm.overlapsKind(r, Spikes)
}

// FinishlineCheck reports whether r overlaps any finish tile.
func (tm *Tilemap) FinishlineCheck(r gamemath.Rect) bool {
	return tm.overlapsKind(r, Finish)
}

// overlapsKind only visits the cells under r.
func (tm *Tilemap) overlapsKind(r gamemath.Rect, kind Kind) bool {
	x1 := gamemath.FloorDiv(r.Left(), tm.TileSize)
	y1 := gamemath.FloorDiv(r.Top(), tm.TileSize)
	x2 := gamemath.FloorDiv(r.Right(), tm.TileSize)
	y2 := gamemath.FloorDiv(r.Bottom(), tm.TileSize)

	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			t, ok := tm.tiles[Coord{X: x, Y: y}]
			if !ok || t.Kind != kind {
				continue
			}
			if r.Overlaps(tm.CellRect(t.Pos)) {
				return true
			}
		}
	}
	return false
}
