package systems

import (
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/logger"
	"github.com/automoto/summit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints checks for player collision with checkpoints and activates them
func UpdateCheckpoints(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}

	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvCheckpoint)
	if check == nil {
		return
	}

	// Check works on space cells; keep only true overlaps.
	playerRect := objectRect(playerObj.Object)
	var checkpointEntry *donburi.Entry
	for _, obj := range check.ObjectsByTags(tags.ResolvCheckpoint) {
		if !playerRect.Overlaps(objectRect(obj)) {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry != nil {
			checkpointEntry = entry
			break
		}
	}
	if checkpointEntry == nil {
		return
	}

	checkpoint := components.Checkpoint.Get(checkpointEntry)
	if checkpoint.Activated {
		return
	}
	checkpoint.Activated = true

	level := GetLevel(ecs)
	if level == nil {
		return
	}
	level.ActiveCheckpoint = &components.ActiveCheckpointData{
		SpawnX:       checkpoint.SpawnX,
		SpawnY:       checkpoint.SpawnY,
		CheckpointID: checkpoint.CheckpointID,
	}

	p := components.Player.Get(playerEntry)
	p.SetOrigin(gamemath.Vec2{X: checkpoint.SpawnX, Y: checkpoint.SpawnY})

	logger.Log.Infow("Checkpoint activated",
		"id", checkpoint.CheckpointID,
		"tick", level.Tick,
	)
}

func objectRect(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}
