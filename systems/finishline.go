package systems

import (
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/logger"
	"github.com/automoto/summit/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFinishLine marks the level complete once the player touches a finish tile
func UpdateFinishLine(ecs *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(ecs)
	if levelComplete.IsComplete {
		return
	}

	level := GetLevel(ecs)
	if level == nil {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}

	p := components.Player.Get(playerEntry)
	if !level.Tilemap.FinishlineCheck(p.Rect()) {
		return
	}

	levelComplete.IsComplete = true
	levelComplete.Tick = level.Tick

	logger.Log.Infow("Level complete",
		"tick", level.Tick,
		"deaths", level.Deaths,
	)
}
