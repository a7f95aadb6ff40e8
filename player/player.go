package player

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/physics"
)

// Player is the controllable character. Exported counters are readable by the
// host; mutate them only through the action methods.
type Player struct {
	physics.Body

	Origin gamemath.Vec2

	AirTime     int
	JumpCharges int
	WallJumps   int // Wall jumps used this air time
	Stamina     float64

	// DashTimer counts down to zero. Its sign is the committed horizontal
	// direction, its magnitude the remaining ticks.
	DashTimer   int
	DashCharges int
	DashDir     gamemath.Direction
	usedDashes  map[gamemath.Direction]struct{}

	FacingLeft  bool
	WallSliding bool
	wallDir     int // -1 wall on the left, 1 wall on the right

	Action cfg.StateID
	Mode   Mode

	// Variable jump
	jumpHeld       bool
	JumpHoldTicks  int
	JumpMultiplier float64
	holdTween      *gween.Tween

	// Held intent
	moveX, moveY int
	Grab         bool

	effects EffectSink
	rng     *rand.Rand
}

// New creates a player standing at origin. effects may be nil. seed drives
// the particle randomness so runs are reproducible.
func New(origin gamemath.Vec2, effects EffectSink, seed int64) *Player {
	if effects == nil {
		effects = discardSink{}
	}
	p := &Player{
		Origin:     origin,
		usedDashes: make(map[gamemath.Direction]struct{}),
		effects:    effects,
		rng:        rand.New(rand.NewSource(seed)),
	}
	p.restore()
	return p
}

// restore puts every counter back to its spawn value without emitting effects.
func (p *Player) restore() {
	p.Body = physics.Body{
		Pos:  p.Origin,
		Size: gamemath.Vec2{X: cfg.Player.Width, Y: cfg.Player.Height},
	}
	p.AirTime = 0
	p.JumpCharges = cfg.Player.JumpCharges
	p.WallJumps = 0
	p.Stamina = cfg.Stamina.Max
	p.DashTimer = 0
	p.DashCharges = cfg.Dash.Charges
	p.DashDir = gamemath.Direction{X: 1}
	clear(p.usedDashes)
	p.FacingLeft = false
	p.WallSliding = false
	p.wallDir = 0
	p.Action = cfg.StateIdle
	p.Mode = Grounded
	p.moveX, p.moveY = 0, 0
	p.Grab = false
	p.holdTween = gween.New(1.0, float32(cfg.Jump.MinMultiplier), float32(cfg.Jump.MaxHoldTicks), ease.Linear)
	p.resetHold()
}

// Reset returns the player to its origin state and requests the reset burst.
func (p *Player) Reset() {
	p.restore()
	p.emitReset()
}

// SetOrigin changes where Reset puts the player.
func (p *Player) SetOrigin(pos gamemath.Vec2) {
	p.Origin = pos
}

// SetEffects swaps the effect sink. nil discards effects.
func (p *Player) SetEffects(sink EffectSink) {
	if sink == nil {
		sink = discardSink{}
	}
	p.effects = sink
}

func (p *Player) Center() gamemath.Vec2 {
	return p.Rect().Center()
}

// IsAirborne reports whether the player has been off the ground long enough
// to count as in the air.
func (p *Player) IsAirborne() bool {
	return p.AirTime > cfg.Player.AirTimeThreshold
}

// DashActive reports whether the dash currently drives velocity.
func (p *Player) DashActive() bool {
	return gamemath.AbsInt(p.DashTimer) > cfg.Dash.Duration-cfg.Dash.ActiveTicks
}

// JumpHeld reports whether the variable jump boost is still armed.
func (p *Player) JumpHeld() bool {
	return p.jumpHeld
}

// UsedDash reports whether dir was already dashed this air time.
func (p *Player) UsedDash(dir gamemath.Direction) bool {
	_, ok := p.usedDashes[dir]
	return ok
}

// UsedDashCount is the number of distinct dash directions this air time.
func (p *Player) UsedDashCount() int {
	return len(p.usedDashes)
}

// Movement returns the held movement intent.
func (p *Player) Movement() (x, y int) {
	return p.moveX, p.moveY
}

func (p *Player) resetHold() {
	p.jumpHeld = false
	p.JumpHoldTicks = 0
	p.JumpMultiplier = 1.0
	p.holdTween.Reset()
}

func (p *Player) facingSign() float64 {
	if p.FacingLeft {
		return cfg.DirectionLeft
	}
	return cfg.DirectionRight
}
