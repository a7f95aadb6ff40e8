package components

import (
	"github.com/automoto/summit/player"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	*player.Player
}

var Player = donburi.NewComponentType[PlayerData]()

// InputData holds the intent for the next tick. Press/release flags are
// consumed once applied; held movement persists until replaced.
type InputData struct {
	Intent player.Intent
}

var Input = donburi.NewComponentType[InputData]()
