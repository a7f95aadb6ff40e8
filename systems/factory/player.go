package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/player"
	"github.com/automoto/summit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at origin. Effect requests go to sink.
func CreatePlayer(ecs *ecs.ECS, origin, spaceOrigin gamemath.Vec2, sink player.EffectSink, seed int64) *donburi.Entry {
	p := archetypes.Player.Spawn(ecs)

	pl := player.New(origin, sink, seed)
	components.Player.SetValue(p, components.PlayerData{Player: pl})

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(origin.X-spaceOrigin.X, origin.Y-spaceOrigin.Y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return p
}
