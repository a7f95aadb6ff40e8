package systems

import (
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/player"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		// Dying players are frozen until the death system respawns them.
		if playerEntry.HasComponent(components.Death) {
			return
		}

		p := components.Player.Get(playerEntry)
		input := components.Input.Get(playerEntry)

		p.Apply(input.Intent)
		consumePresses(input)

		p.Update(level.Tilemap)
	})
}

// consumePresses clears one-shot flags so a press is applied exactly once.
func consumePresses(input *components.InputData) {
	input.Intent.JumpPressed = false
	input.Intent.JumpReleased = false
	input.Intent.DashPressed = false
}

// SetPlayerInput stores the intent for the next tick.
func SetPlayerInput(ecs *ecs.ECS, intent player.Intent) {
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		components.Input.Get(e).Intent = intent
	})
}
