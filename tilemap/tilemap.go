package tilemap

import (
	"sort"

	"github.com/automoto/summit/config"
	"github.com/automoto/summit/gamemath"
)

// Tilemap stores grid tiles keyed by cell plus an ordered list of off-grid
// decorations. It is not safe for concurrent mutation; the simulation only
// reads it.
type Tilemap struct {
	TileSize int

	tiles   map[Coord]Tile
	offgrid []OffgridTile
}

// New returns an empty map. A non-positive tileSize falls back to
// config.Level.TileSize so cell lookups never divide by zero.
func New(tileSize int) *Tilemap {
	if tileSize <= 0 {
		tileSize = config.Level.TileSize
	}
	return &Tilemap{
		TileSize: tileSize,
		tiles:    make(map[Coord]Tile),
	}
}

// Place inserts t, replacing whatever occupied its cell.
func (tm *Tilemap) Place(t Tile) {
	tm.tiles[t.Pos] = t
}

// PlaceUnique removes every other grid tile of the same kind before placing t.
// Used for single markers such as the spawn point.
func (tm *Tilemap) PlaceUnique(t Tile) {
	for c, existing := range tm.tiles {
		if existing.Kind == t.Kind {
			delete(tm.tiles, c)
		}
	}
	tm.Place(t)
}

// Remove deletes the tile at c and reports whether one was there.
func (tm *Tilemap) Remove(c Coord) bool {
	if _, ok := tm.tiles[c]; !ok {
		return false
	}
	delete(tm.tiles, c)
	return true
}

func (tm *Tilemap) At(c Coord) (Tile, bool) {
	t, ok := tm.tiles[c]
	return t, ok
}

func (tm *Tilemap) Len() int {
	return len(tm.tiles)
}

// Tiles returns a copy of every grid tile sorted row-major.
func (tm *Tilemap) Tiles() []Tile {
	out := make([]Tile, 0, len(tm.tiles))
	for _, t := range tm.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos.Y != out[j].Pos.Y {
			return out[i].Pos.Y < out[j].Pos.Y
		}
		return out[i].Pos.X < out[j].Pos.X
	})
	return out
}

func (tm *Tilemap) AddOffgrid(t OffgridTile) {
	tm.offgrid = append(tm.offgrid, t)
}

// Offgrid returns a copy of the off-grid list in insertion order.
func (tm *Tilemap) Offgrid() []OffgridTile {
	out := make([]OffgridTile, len(tm.offgrid))
	copy(out, tm.offgrid)
	return out
}

// RemoveOffgridAt deletes off-grid tiles whose tile-sized box contains p and
// returns how many were removed.
func (tm *Tilemap) RemoveOffgridAt(p gamemath.Vec2) int {
	size := float64(tm.TileSize)
	kept := tm.offgrid[:0]
	removed := 0
	for _, t := range tm.offgrid {
		box := gamemath.Rect{X: t.Pos.X, Y: t.Pos.Y, W: size, H: size}
		if box.Contains(p) {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	tm.offgrid = kept
	return removed
}

// CoordAt returns the cell containing the pixel position p.
func (tm *Tilemap) CoordAt(p gamemath.Vec2) Coord {
	return Coord{
		X: gamemath.FloorDiv(p.X, tm.TileSize),
		Y: gamemath.FloorDiv(p.Y, tm.TileSize),
	}
}

// CellRect returns the world rectangle of cell c.
func (tm *Tilemap) CellRect(c Coord) gamemath.Rect {
	size := float64(tm.TileSize)
	return gamemath.Rect{X: float64(c.X) * size, Y: float64(c.Y) * size, W: size, H: size}
}

// Bounds returns the pixel rectangle enclosing every grid and off-grid tile.
// The second result is false for an empty map.
func (tm *Tilemap) Bounds() (gamemath.Rect, bool) {
	if len(tm.tiles) == 0 && len(tm.offgrid) == 0 {
		return gamemath.Rect{}, false
	}

	size := float64(tm.TileSize)
	first := true
	var minX, minY, maxX, maxY float64
	grow := func(x, y float64) {
		if first {
			minX, minY, maxX, maxY = x, y, x+size, y+size
			first = false
			return
		}
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x+size > maxX {
			maxX = x + size
		}
		if y+size > maxY {
			maxY = y + size
		}
	}

	for c := range tm.tiles {
		grow(float64(c.X)*size, float64(c.Y)*size)
	}
	for _, t := range tm.offgrid {
		grow(t.Pos.X, t.Pos.Y)
	}
	return gamemath.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}
