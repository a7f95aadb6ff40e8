package systems

import (
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each player's resolv body to the simulated position and
// re-registers every object with the space.
func UpdateObjects(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		obj := components.Object.Get(e)
		obj.X = p.Pos.X - level.SpaceOrigin.X
		obj.Y = p.Pos.Y - level.SpaceOrigin.Y
	})

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		obj.Update()
	})
}
