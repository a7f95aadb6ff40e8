package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variantAt(t *testing.T, tm *Tilemap, c Coord) int {
	t.Helper()
	tile, ok := tm.At(c)
	require.True(t, ok, "no tile at %v", c)
	return tile.Variant
}

func TestAutotileCross(t *testing.T) {
	tm := New(16)
	for _, c := range []Coord{{1, 1}, {0, 1}, {2, 1}, {1, 0}, {1, 2}} {
		tm.Place(Tile{Kind: Grass, Variant: 5, Pos: c})
	}

	tm.Autotile()

	assert.Equal(t, 8, variantAt(t, tm, Coord{1, 1}))
}

func TestAutotileIsolatedKeepsVariant(t *testing.T) {
	tm := New(16)
	tm.Place(Tile{Kind: Stone, Variant: 6, Pos: Coord{0, 0}})
	// Diagonal neighbours never count.
	tm.Place(Tile{Kind: Stone, Variant: 2, Pos: Coord{5, 5}})
	tm.Place(Tile{Kind: Stone, Variant: 2, Pos: Coord{6, 6}})

	tm.Autotile()

	assert.Equal(t, 6, variantAt(t, tm, Coord{0, 0}))
	assert.Equal(t, 2, variantAt(t, tm, Coord{5, 5}))
	assert.Equal(t, 2, variantAt(t, tm, Coord{6, 6}))
}

func TestAutotileTable(t *testing.T) {
	tests := []struct {
		name      string
		neighbors []Coord
		expect    int
	}{
		{"right down", []Coord{{1, 0}, {0, 1}}, 0},
		{"right down left", []Coord{{1, 0}, {0, 1}, {-1, 0}}, 1},
		{"left down", []Coord{{-1, 0}, {0, 1}}, 2},
		{"left up down", []Coord{{-1, 0}, {0, -1}, {0, 1}}, 3},
		{"left up", []Coord{{-1, 0}, {0, -1}}, 4},
		{"left up right", []Coord{{-1, 0}, {0, -1}, {1, 0}}, 5},
		{"right up", []Coord{{1, 0}, {0, -1}}, 6},
		{"right up down", []Coord{{1, 0}, {0, -1}, {0, 1}}, 7},
		{"horizontal line unchanged", []Coord{{1, 0}, {-1, 0}}, 42},
		{"single neighbour unchanged", []Coord{{0, 1}}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := New(16)
			tm.Place(Tile{Kind: Grass, Variant: 42, Pos: Coord{0, 0}})
			for _, n := range tt.neighbors {
				tm.Place(Tile{Kind: Grass, Variant: 42, Pos: n})
			}
			tm.Autotile()
			assert.Equal(t, tt.expect, variantAt(t, tm, Coord{0, 0}))
		})
	}
}

func TestAutotileIgnoresOtherKinds(t *testing.T) {
	tm := New(16)
	tm.Place(Tile{Kind: Grass, Variant: 3, Pos: Coord{0, 0}})
	tm.Place(Tile{Kind: Stone, Pos: Coord{1, 0}})
	tm.Place(Tile{Kind: Stone, Pos: Coord{0, 1}})
	tm.Place(Tile{Kind: Decor, Variant: 1, Pos: Coord{5, 0}})
	tm.Place(Tile{Kind: Decor, Variant: 1, Pos: Coord{6, 0}})
	tm.Place(Tile{Kind: Decor, Variant: 1, Pos: Coord{5, 1}})

	tm.Autotile()

	assert.Equal(t, 3, variantAt(t, tm, Coord{0, 0}))
	assert.Equal(t, 1, variantAt(t, tm, Coord{5, 0}), "decor is not autotiled")
}

func TestAutotileSpikes(t *testing.T) {
	tm := New(16)
	tm.Place(Tile{Kind: Spikes, Variant: 9, Pos: Coord{0, 0}})
	tm.Place(Tile{Kind: Spikes, Variant: 9, Pos: Coord{1, 0}})
	tm.Place(Tile{Kind: Spikes, Variant: 9, Pos: Coord{0, 1}})
	// Grass neighbours do not join a spike strip.
	tm.Place(Tile{Kind: Grass, Variant: 9, Pos: Coord{-1, 0}})

	tm.Autotile()

	assert.Equal(t, 0, variantAt(t, tm, Coord{0, 0}))
}

func TestAutotileIdempotent(t *testing.T) {
	tm := New(16)
	for x := 0; x < 6; x++ {
		for y := 0; y < 4; y++ {
			if (x+y)%5 == 0 {
				continue
			}
			kind := Grass
			if x > 3 {
				kind = Stone
			}
			tm.Place(Tile{Kind: kind, Variant: 9, Pos: Coord{x, y}})
		}
	}

	tm.Autotile()
	once := tm.Tiles()
	tm.Autotile()
	assert.Equal(t, once, tm.Tiles())
}
