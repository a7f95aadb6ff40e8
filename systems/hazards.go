package systems

import (
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/logger"
	"github.com/automoto/summit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards starts the death sequence for a player touching spikes.
func UpdateHazards(ecs *ecs.ECS) {
	level := GetLevel(ecs)
	if level == nil {
		return
	}

	var killed []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		p := components.Player.Get(e)
		if level.Tilemap.SpikeCheck(p.Rect()) {
			killed = append(killed, e)
		}
	})

	for _, e := range killed {
		p := components.Player.Get(e)
		p.EmitDeath()
		donburi.Add(e, components.Death, &components.DeathData{
			Timer: cfg.Death.RespawnDelay,
		})
		level.Deaths++

		logger.Log.Infow("Player died",
			"tick", level.Tick,
			"x", p.Pos.X,
			"y", p.Pos.Y,
			"deaths", level.Deaths,
		)
	}
}
