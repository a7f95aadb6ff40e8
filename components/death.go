package components

import "github.com/yohamta/donburi"

// DeathData marks a player that hit a hazard. Timer counts down each tick;
// at 0 the player respawns at its origin.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
