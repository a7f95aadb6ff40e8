package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
)

// Resolv tags for trigger overlap checks
const (
	ResolvPlayer     = "Player"
	ResolvCheckpoint = "checkpoint"
)
