package player

import (
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/gamemath"
)

// Intent is one tick of player input.
type Intent struct {
	MoveX, MoveY int

	JumpPressed  bool
	JumpReleased bool
	DashPressed  bool
	Grab         bool
}

// Apply feeds one tick of input: held movement first, then jump release,
// jump press and dash in that order.
func (p *Player) Apply(in Intent) {
	p.SetMovement(in.MoveX, in.MoveY)
	p.SetGrab(in.Grab)
	if in.JumpReleased {
		p.EndJump()
	}
	if in.JumpPressed {
		p.Jump()
	}
	if in.DashPressed {
		p.Dash()
	}
}

// SetMovement sets the held direction. Values are clamped to -1..1.
func (p *Player) SetMovement(x, y int) {
	dir := gamemath.ResolveDirection(x, y)
	p.moveX, p.moveY = dir.X, dir.Y
}

// SetGrab records the grab intent. Nothing consumes it yet.
func (p *Player) SetGrab(active bool) {
	p.Grab = active
}

// Jump performs a wall jump when sliding with enough stamina, else a regular
// jump if a charge is left. It reports whether anything happened.
func (p *Player) Jump() bool {
	if p.canWallJump() {
		away := float64(-p.wallDir)
		p.Vel.X = away * cfg.Player.WallJumpHorizontal
		p.Vel.Y = -cfg.Player.WallJumpVertical
		p.FacingLeft = away < 0
		p.Stamina -= cfg.Stamina.WallJumpCost
		p.WallJumps++
		if p.JumpCharges > 0 {
			p.JumpCharges--
		}
		p.launch()
		return true
	}

	if p.JumpCharges > 0 {
		p.Vel.Y = -cfg.Player.JumpPower
		if p.moveX != 0 {
			p.Vel.X = float64(p.moveX) * cfg.Player.Speed * cfg.Player.JumpHorizontalBias
		}
		p.JumpCharges--
		p.launch()
		return true
	}

	return false
}

func (p *Player) canWallJump() bool {
	return p.WallSliding &&
		p.wallDir != 0 &&
		p.Stamina >= cfg.Stamina.WallJumpCost &&
		p.WallJumps < cfg.Player.MaxWallJumps
}

// launch marks the player airborne and arms the variable jump boost.
func (p *Player) launch() {
	p.AirTime = cfg.Player.AirTimeThreshold + 1
	p.WallSliding = false
	p.resetHold()
	p.jumpHeld = true
}

// EndJump stops the variable jump boost.
func (p *Player) EndJump() {
	p.resetHold()
}

// Dash starts a dash in the held direction, or the facing direction when
// nothing is held. Repeating a direction is refused once more than one
// direction has been used this air time.
func (p *Player) Dash() bool {
	if p.DashCharges <= 0 {
		return false
	}

	dir := gamemath.ResolveDirection(p.moveX, p.moveY)
	if dir.IsZero() {
		dir = gamemath.Direction{X: int(p.facingSign())}
	}
	if p.UsedDash(dir) && len(p.usedDashes) > 1 {
		return false
	}

	p.DashDir = dir
	p.usedDashes[dir] = struct{}{}
	switch {
	case dir.X < 0:
		p.FacingLeft = true
	case dir.X > 0:
		p.FacingLeft = false
	}
	p.DashTimer = int(p.facingSign()) * cfg.Dash.Duration
	p.DashCharges--

	p.emitDashBurst(dir)
	return true
}
