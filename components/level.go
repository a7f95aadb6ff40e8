package components

import (
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/player"
	"github.com/automoto/summit/tilemap"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Tilemap          *tilemap.Tilemap
	Spawn            gamemath.Vec2
	SpaceOrigin      gamemath.Vec2         // World position of the resolv space's (0,0)
	ActiveCheckpoint *ActiveCheckpointData // Last activated checkpoint for respawn
	Tick             int
	Deaths           int
}

var Level = donburi.NewComponentType[LevelData]()

// Effects buffers effect requests raised during a tick until the host drains them.
var Effects = donburi.NewComponentType[player.EffectQueue]()

// LevelCompleteData records whether the finish line was reached
type LevelCompleteData struct {
	IsComplete bool
	Tick       int // Tick the finish line was touched
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
