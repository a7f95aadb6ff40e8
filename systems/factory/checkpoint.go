package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint trigger. x/y are world pixels; the
// resolv object lives in space coordinates relative to origin.
func CreateCheckpoint(ecs *ecs.ECS, origin gamemath.Vec2, x, y, w, h float64, checkpointID int) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := resolv.NewObject(x-origin.X, y-origin.Y, w, h, tags.ResolvCheckpoint)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = checkpoint

	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	// Respawn standing on the checkpoint's tile
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		CheckpointID: checkpointID,
		Activated:    false,
		SpawnX:       x,
		SpawnY:       y,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return checkpoint
}
