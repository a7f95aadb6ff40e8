package player

import (
	"math"

	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/physics"
)

// Update advances the player one tick against world. The step order matters
// for feel: each step sees the results of the ones before it.
func (p *Player) Update(world physics.RectSource) {
	p.Collisions = physics.Flags{}

	p.applyHorizontalIntent()
	physics.MoveX(&p.Body, p.Vel.X, world)
	p.faceInput()

	p.applyGravity()
	physics.MoveY(&p.Body, p.Vel.Y, world)

	p.updateGroundState()
	p.updateWallSlide()
	p.updateVariableJump()
	p.updateDash()

	p.Action = p.deriveAction()
	p.setMode(p.deriveMode())
}

func (p *Player) applyHorizontalIntent() {
	if p.DashActive() {
		return
	}
	if p.moveX != 0 {
		p.Vel.X = float64(p.moveX) * cfg.Player.Speed
		return
	}
	p.Vel.X = gamemath.ApplyFriction(p.Vel.X, cfg.Physics.Friction)
}

// faceInput follows held input, not velocity.
func (p *Player) faceInput() {
	if p.moveX > 0 {
		p.FacingLeft = false
	} else if p.moveX < 0 {
		p.FacingLeft = true
	}
}

func (p *Player) applyGravity() {
	p.Vel.Y = math.Min(p.Vel.Y+cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed)
}

func (p *Player) updateGroundState() {
	p.AirTime++
	if p.Collisions.Down {
		p.AirTime = 0
		p.JumpCharges = cfg.Player.JumpCharges
		p.WallJumps = 0
		p.DashCharges = cfg.Dash.Charges
		clear(p.usedDashes)
		p.resetHold()
	}

	if p.Collisions.Down {
		p.Stamina += cfg.Stamina.RegenPerTick
	} else if p.IsAirborne() {
		p.Stamina -= cfg.Stamina.AirDrainPerTick
	}
	p.Stamina = gamemath.ClampFloat(p.Stamina, 0, cfg.Stamina.Max)
}

func (p *Player) updateWallSlide() {
	p.WallSliding = false
	if !p.Collisions.Horizontal() || !p.IsAirborne() || p.Vel.Y < 0 || p.Stamina <= 0 {
		return
	}

	p.WallSliding = true
	p.Vel.Y = math.Min(p.Vel.Y, cfg.Physics.WallSlideSpeed)
	if p.Collisions.Right {
		p.wallDir = 1
		p.FacingLeft = true
	} else {
		p.wallDir = -1
		p.FacingLeft = false
	}
	p.Stamina = gamemath.ClampFloat(p.Stamina-cfg.Stamina.WallSlideDrainPerTick, 0, cfg.Stamina.Max)
}

// updateVariableJump keeps pushing upward while jump is held. The push fades
// from full strength to MinMultiplier over MaxHoldTicks.
func (p *Player) updateVariableJump() {
	if !p.jumpHeld || p.JumpHoldTicks >= cfg.Jump.MaxHoldTicks {
		return
	}
	p.Vel.Y -= cfg.Jump.HoldImpulse * p.JumpMultiplier
	p.JumpHoldTicks++
	m, _ := p.holdTween.Update(1)
	p.JumpMultiplier = float64(m)
}

// updateDash counts the dash timer down and drives velocity during the active
// window. The dash ends with a hard stop rather than a slowdown.
func (p *Player) updateDash() {
	if p.DashTimer == 0 {
		return
	}
	p.DashTimer = gamemath.StepToward(p.DashTimer)
	if !p.DashActive() {
		return
	}

	vel := p.DashDir.Scaled(cfg.Dash.Speed, cfg.Dash.DiagonalScale)
	vel.Y = math.Min(vel.Y, cfg.Physics.MaxFallSpeed)
	p.Vel = vel

	if gamemath.AbsInt(p.DashTimer) == cfg.Dash.Duration-cfg.Dash.ActiveTicks+1 {
		p.Vel = gamemath.Vec2{}
	}

	if cfg.Effects.DashTrailInterval > 0 && p.DashTimer%cfg.Effects.DashTrailInterval == 0 {
		p.emitDashTrail()
	}
}

func (p *Player) deriveAction() cfg.StateID {
	switch {
	case p.WallSliding:
		return cfg.StateWallSlide
	case p.IsAirborne():
		return cfg.StateJump
	case p.Vel.X != 0:
		return cfg.StateRunning
	default:
		return cfg.StateIdle
	}
}
