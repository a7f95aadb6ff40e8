package systems

import (
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/player"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the level data, or nil before the level exists.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// UpdateClock advances the level tick counter. It runs first so every other
// system sees the tick being simulated.
func UpdateClock(e *ecs.ECS) {
	if level := GetLevel(e); level != nil {
		level.Tick++
	}
}

// DrainEffects returns and clears the effect requests raised so far.
func DrainEffects(e *ecs.ECS) []player.Effect {
	entry, ok := components.Effects.First(e.World)
	if !ok {
		return nil
	}
	return components.Effects.Get(entry).Drain()
}
