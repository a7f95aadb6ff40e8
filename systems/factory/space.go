package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/logger"
	"github.com/automoto/summit/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceMarginTiles pads the resolv space around the map so a player slightly
// outside the tiles still registers.
const spaceMarginTiles = 8

// CreateSpace builds the trigger space covering tm plus a margin, with one
// space cell per tile. Objects in it use coordinates relative to SpaceOrigin(tm).
func CreateSpace(ecs *ecs.ECS, tm *tilemap.Tilemap) *donburi.Entry {
	w, h := SpaceSize(tm)
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(w, h, tm.TileSize, tm.TileSize))

	logger.Log.Debugw("Created trigger space", "width", w, "height", h, "cell", tm.TileSize)
	return space
}

// SpaceSize returns the pixel size of the resolv space covering the level.
func SpaceSize(tm *tilemap.Tilemap) (w, h int) {
	margin := 2 * spaceMarginTiles * tm.TileSize
	bounds, ok := tm.Bounds()
	if !ok {
		return margin, margin
	}
	return int(bounds.W) + margin, int(bounds.H) + margin
}

// SpaceOrigin is the world position of the space's (0,0).
func SpaceOrigin(tm *tilemap.Tilemap) gamemath.Vec2 {
	margin := float64(spaceMarginTiles * tm.TileSize)
	if bounds, ok := tm.Bounds(); ok {
		return gamemath.Vec2{X: bounds.X - margin, Y: bounds.Y - margin}
	}
	return gamemath.Vec2{X: -margin, Y: -margin}
}
