package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/logger"
	"github.com/automoto/summit/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel takes ownership of tm. Spawn markers are extracted so they
// never act as level geometry; the first one becomes the spawn point.
func CreateLevel(ecs *ecs.ECS, tm *tilemap.Tilemap) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	spawn := gamemath.Vec2{X: cfg.Level.DefaultSpawnX, Y: cfg.Level.DefaultSpawnY}
	markers := tm.Extract(tilemap.VariantsOf(tilemap.Spawn, cfg.Level.SpawnVariants...), false)
	if len(markers) > 0 {
		spawn = markers[0].Pos
	}

	components.Level.SetValue(level, components.LevelData{
		Tilemap:     tm,
		Spawn:       spawn,
		SpaceOrigin: SpaceOrigin(tm),
	})

	logger.Log.Infow("Loaded level",
		"tiles", tm.Len(),
		"offgrid", len(tm.Offgrid()),
		"spawnX", spawn.X,
		"spawnY", spawn.Y,
	)
	return level
}
