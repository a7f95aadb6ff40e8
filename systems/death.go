package systems

import (
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/logger"
	"github.com/automoto/summit/player"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateDeaths(ecs *ecs.ECS) {
	// Collect first; removing a component during Each moves the entry
	// between archetypes.
	var respawn []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			respawn = append(respawn, e)
		}
	})

	for _, e := range respawn {
		donburi.Remove[components.DeathData](e, components.Death)
		RespawnPlayer(ecs, e)
	}
}

// RespawnPlayer puts the player back at its origin, which tracks the last
// activated checkpoint.
func RespawnPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	p := components.Player.Get(e)
	p.Reset()

	input := components.Input.Get(e)
	input.Intent = player.Intent{}

	logger.Log.Debugw("Player respawned", "x", p.Pos.X, "y", p.Pos.Y)
}
