package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/summit/components"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/tilemap"
)

func TestCreateSpaceCoversLevel(t *testing.T) {
	tm := tilemap.New(16)
	tm.Place(tilemap.Tile{Kind: tilemap.Grass, Pos: tilemap.Coord{X: -2, Y: 0}})
	tm.Place(tilemap.Tile{Kind: tilemap.Grass, Pos: tilemap.Coord{X: 3, Y: 1}})

	w, h := SpaceSize(tm)
	assert.Equal(t, 6*16+2*spaceMarginTiles*16, w)
	assert.Equal(t, 2*16+2*spaceMarginTiles*16, h)
	assert.Equal(t, gamemath.Vec2{X: -32 - 128, Y: -128}, SpaceOrigin(tm))

	world := ecs.NewECS(donburi.NewWorld())
	entry := CreateSpace(world, tm)
	require.NotNil(t, entry)
	space := components.Space.Get(entry)
	assert.Equal(t, 16, space.CellWidth)
	assert.Equal(t, w/16, space.Width(), "width in cells")
	assert.Equal(t, h/16, space.Height(), "height in cells")
}

func TestSpaceEmptyLevel(t *testing.T) {
	tm := tilemap.New(16)

	w, h := SpaceSize(tm)
	assert.Equal(t, 2*spaceMarginTiles*16, w)
	assert.Equal(t, w, h)
	assert.Equal(t, gamemath.Vec2{X: -128, Y: -128}, SpaceOrigin(tm))
}
