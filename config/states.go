package config

// StateID identifies the player's action state for animation selection.
type StateID int

const (
	StateIdle StateID = iota
	StateRunning
	StateJump
	StateWallSlide
)

// StateToFileName maps StateID to the animation name a renderer resolves once at setup.
var StateToFileName = map[StateID]string{
	StateIdle:      "idle",
	StateRunning:   "run",
	StateJump:      "jump",
	StateWallSlide: "wall_slide",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "none"
}
