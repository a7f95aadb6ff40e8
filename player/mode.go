package player

// Mode is the player's movement mode. It replaces a pile of independent
// booleans so contradictory combinations can't be represented.
type Mode int

const (
	Grounded Mode = iota
	Airborne
	WallSliding
	Dashing
)

var modeNames = map[Mode]string{
	Grounded:    "grounded",
	Airborne:    "airborne",
	WallSliding: "wall_sliding",
	Dashing:     "dashing",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

type transition struct {
	from, to Mode
}

// transitions lists the mode changes that carry a side effect. Any other
// change is allowed and silent.
var transitions = map[transition]func(p *Player){
	{Grounded, WallSliding}: (*Player).emitWallContact,
	{Airborne, WallSliding}: (*Player).emitWallContact,
	{Dashing, WallSliding}:  (*Player).emitWallContact,
	{Airborne, Grounded}:    (*Player).emitLand,
	{WallSliding, Grounded}: (*Player).emitLand,
}

// deriveMode picks the mode from this tick's results. Dashing wins over
// everything while the dash drives velocity.
func (p *Player) deriveMode() Mode {
	switch {
	case p.DashActive():
		return Dashing
	case p.WallSliding:
		return WallSliding
	case !p.IsAirborne():
		return Grounded
	default:
		return Airborne
	}
}

func (p *Player) setMode(next Mode) {
	if next == p.Mode {
		return
	}
	if hook, ok := transitions[transition{from: p.Mode, to: next}]; ok {
		hook(p)
	}
	p.Mode = next
}
