package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/tilemap"
)

const floorY = 32.0

// floorWorld has a grass floor whose top edge is at y=32.
func floorWorld() *tilemap.Tilemap {
	tm := tilemap.New(16)
	for x := -20; x <= 20; x++ {
		tm.Place(tilemap.Tile{Kind: tilemap.Grass, Pos: tilemap.Coord{X: x, Y: 2}})
	}
	return tm
}

// wallWorld has a stone wall column whose left face is at x=32 and no floor.
func wallWorld() *tilemap.Tilemap {
	tm := tilemap.New(16)
	for y := -20; y <= 20; y++ {
		tm.Place(tilemap.Tile{Kind: tilemap.Stone, Pos: tilemap.Coord{X: 2, Y: y}})
	}
	return tm
}

func standingPlayer(t *testing.T, q *EffectQueue) (*Player, *tilemap.Tilemap) {
	t.Helper()
	world := floorWorld()
	p := New(gamemath.Vec2{X: 0, Y: floorY - cfg.Player.Height}, q, 1)
	p.Update(world)
	require.True(t, p.Collisions.Down)
	return p, world
}

func airbornePlayer(t *testing.T) (*Player, *tilemap.Tilemap) {
	t.Helper()
	world := tilemap.New(16)
	p := New(gamemath.Vec2{X: 0, Y: 0}, nil, 1)
	for !p.IsAirborne() {
		p.Update(world)
	}
	return p, world
}

func countKind(effects []Effect, kind EffectKind) int {
	n := 0
	for _, e := range effects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestGroundedAtRest(t *testing.T) {
	p, world := standingPlayer(t, nil)

	for i := 0; i < 5; i++ {
		p.Update(world)
		assert.Equal(t, gamemath.Vec2{}, p.Vel, "tick %d", i)
		assert.Equal(t, 0, p.AirTime, "tick %d", i)
		assert.Equal(t, cfg.StateIdle, p.Action, "tick %d", i)
		assert.Equal(t, Grounded, p.Mode)
	}
	assert.Equal(t, floorY-cfg.Player.Height, p.Pos.Y)
}

func TestAirborneJumpConsumesCharge(t *testing.T) {
	p, _ := airbornePlayer(t)
	require.Equal(t, 1, p.JumpCharges)

	require.True(t, p.Jump())
	assert.Equal(t, 0, p.JumpCharges)
	assert.Equal(t, -cfg.Player.JumpPower, p.Vel.Y)
	assert.True(t, p.JumpHeld())

	before := *p
	assert.False(t, p.Jump())
	assert.Equal(t, before.Vel, p.Vel)
	assert.Equal(t, before.AirTime, p.AirTime)
}

func TestJumpHorizontalBias(t *testing.T) {
	p, _ := standingPlayer(t, nil)
	p.SetMovement(-1, 0)

	require.True(t, p.Jump())
	assert.InDelta(t, -cfg.Player.Speed*cfg.Player.JumpHorizontalBias, p.Vel.X, 1e-9)
	assert.Equal(t, cfg.Player.AirTimeThreshold+1, p.AirTime)
}

func TestLandingRestoresCharges(t *testing.T) {
	p, world := standingPlayer(t, nil)
	p.SetMovement(1, 0)
	require.True(t, p.Jump())
	require.True(t, p.Dash())

	landed := false
	for i := 0; i < 120; i++ {
		p.Update(world)
		if p.Collisions.Down {
			landed = true
			assert.Equal(t, cfg.Dash.Charges, p.DashCharges)
			assert.Equal(t, cfg.Player.JumpCharges, p.JumpCharges)
			assert.Equal(t, 0, p.UsedDashCount())
			assert.False(t, p.JumpHeld())
		}
	}
	assert.True(t, landed)
}

func TestHorizontalMovementAndFriction(t *testing.T) {
	p, world := standingPlayer(t, nil)

	p.SetMovement(1, 0)
	p.Update(world)
	assert.Equal(t, cfg.Player.Speed, p.Vel.X)
	assert.Equal(t, cfg.StateRunning, p.Action)
	assert.False(t, p.FacingLeft)

	p.SetMovement(-1, 0)
	p.Update(world)
	assert.Equal(t, -cfg.Player.Speed, p.Vel.X)
	assert.True(t, p.FacingLeft)

	p.SetMovement(0, 0)
	prev := p.Vel.X
	for i := 0; i < 30; i++ {
		p.Update(world)
		assert.LessOrEqual(t, p.Vel.X, 0.0, "friction never overshoots")
		assert.GreaterOrEqual(t, p.Vel.X, prev)
		prev = p.Vel.X
	}
	assert.Equal(t, 0.0, p.Vel.X)
	assert.Equal(t, cfg.StateIdle, p.Action)
	assert.True(t, p.FacingLeft, "facing stays with last input")
}

func TestFallSpeedNeverExceedsMax(t *testing.T) {
	world := tilemap.New(16)
	p := New(gamemath.Vec2{}, nil, 1)

	for i := 0; i < 200; i++ {
		p.Update(world)
		require.LessOrEqual(t, p.Vel.Y, cfg.Physics.MaxFallSpeed)
	}
	assert.Equal(t, cfg.Physics.MaxFallSpeed, p.Vel.Y)
	assert.Equal(t, cfg.StateJump, p.Action)
	assert.Equal(t, Airborne, p.Mode)
}

// Drives a long scripted session and checks the per-tick invariants.
func TestTickInvariants(t *testing.T) {
	world := floorWorld()
	for y := -10; y <= 1; y++ {
		world.Place(tilemap.Tile{Kind: tilemap.Stone, Pos: tilemap.Coord{X: 6, Y: y}})
		world.Place(tilemap.Tile{Kind: tilemap.Stone, Pos: tilemap.Coord{X: -6, Y: y}})
	}
	p := New(gamemath.Vec2{X: 0, Y: floorY - cfg.Player.Height}, &EffectQueue{}, 7)

	script := []Intent{
		{MoveX: 1},
		{MoveX: 1, JumpPressed: true},
		{MoveX: 1},
		{MoveX: 1, DashPressed: true},
		{MoveX: 1, MoveY: -1, DashPressed: true},
		{MoveX: -1, JumpReleased: true},
		{MoveX: -1, JumpPressed: true},
		{MoveY: 1, DashPressed: true},
		{},
		{MoveX: -1, MoveY: -1, JumpPressed: true, DashPressed: true},
	}

	for tick := 0; tick < 600; tick++ {
		p.Apply(script[(tick/7)%len(script)])
		p.Update(world)

		require.LessOrEqual(t, p.Vel.Y, cfg.Physics.MaxFallSpeed, "tick %d", tick)
		require.GreaterOrEqual(t, p.Stamina, 0.0, "tick %d", tick)
		require.LessOrEqual(t, p.Stamina, cfg.Stamina.Max, "tick %d", tick)
		if p.Collisions.Down {
			require.Equal(t, cfg.Dash.Charges, p.DashCharges, "tick %d", tick)
			require.Equal(t, cfg.Player.JumpCharges, p.JumpCharges, "tick %d", tick)
		}
		if p.WallSliding {
			require.Equal(t, cfg.StateWallSlide, p.Action, "tick %d", tick)
		}
	}
}

func TestVariableJump(t *testing.T) {
	held, world := standingPlayer(t, nil)
	released, _ := standingPlayer(t, nil)

	require.True(t, held.Jump())
	require.True(t, released.Jump())
	released.EndJump()

	for i := 0; i < 10; i++ {
		held.Update(world)
		released.Update(world)
	}

	assert.Equal(t, 10, held.JumpHoldTicks)
	assert.InDelta(t, 0.75, held.JumpMultiplier, 1e-5)
	assert.Equal(t, 0, released.JumpHoldTicks)
	assert.Equal(t, 1.0, released.JumpMultiplier)
	assert.Less(t, held.Pos.Y, released.Pos.Y, "holding jump goes higher")
}

func TestVariableJumpMultiplierFloor(t *testing.T) {
	p, _ := airbornePlayer(t)
	world := tilemap.New(16)
	require.True(t, p.Jump())

	for i := 0; i < cfg.Jump.MaxHoldTicks+5; i++ {
		p.Update(world)
	}
	assert.Equal(t, cfg.Jump.MaxHoldTicks, p.JumpHoldTicks)
	assert.InDelta(t, cfg.Jump.MinMultiplier, p.JumpMultiplier, 1e-5)
	assert.True(t, p.JumpHeld())

	p.EndJump()
	assert.False(t, p.JumpHeld())
	assert.Equal(t, 0, p.JumpHoldTicks)
	assert.Equal(t, 1.0, p.JumpMultiplier)
}

func TestStaminaDrainsInAir(t *testing.T) {
	p, world := airbornePlayer(t)
	start := p.Stamina

	for i := 0; i < 6; i++ {
		p.Update(world)
	}
	assert.InDelta(t, start-6*cfg.Stamina.AirDrainPerTick, p.Stamina, 1e-9)

	p.Stamina = 0
	p.Update(world)
	assert.Equal(t, 0.0, p.Stamina)
}

func TestStaminaRefillsOnGround(t *testing.T) {
	p, world := standingPlayer(t, nil)
	p.Stamina = 3

	p.Update(world)
	assert.Equal(t, cfg.Stamina.Max, p.Stamina)
}

func TestReset(t *testing.T) {
	q := &EffectQueue{}
	p, world := standingPlayer(t, q)
	p.SetMovement(1, 0)
	require.True(t, p.Jump())
	require.True(t, p.Dash())
	for i := 0; i < 5; i++ {
		p.Update(world)
	}
	q.Drain()

	p.Reset()

	assert.Equal(t, p.Origin, p.Pos)
	assert.Equal(t, gamemath.Vec2{}, p.Vel)
	assert.Equal(t, cfg.Stamina.Max, p.Stamina)
	assert.Equal(t, 0, p.DashTimer)
	assert.Equal(t, cfg.Dash.Charges, p.DashCharges)
	assert.Equal(t, 0, p.UsedDashCount())
	assert.Equal(t, cfg.StateIdle, p.Action)
	assert.Equal(t, Grounded, p.Mode)
	x, y := p.Movement()
	assert.Zero(t, x)
	assert.Zero(t, y)

	effects := q.Drain()
	assert.Len(t, effects, cfg.Effects.ResetCount)
	assert.Equal(t, cfg.Effects.ResetCount, countKind(effects, Reset))
}

func TestSetOrigin(t *testing.T) {
	p := New(gamemath.Vec2{X: 10, Y: 10}, nil, 1)
	p.SetOrigin(gamemath.Vec2{X: 64, Y: -32})
	p.Reset()

	assert.Equal(t, gamemath.Vec2{X: 64, Y: -32}, p.Pos)
	assert.Equal(t, gamemath.Rect{X: 64, Y: -32, W: cfg.Player.Width, H: cfg.Player.Height}, p.Rect())
	assert.Equal(t, gamemath.Vec2{X: 68, Y: -32 + cfg.Player.Height/2}, p.Center())
}

func TestLandEffect(t *testing.T) {
	q := &EffectQueue{}
	p, world := standingPlayer(t, q)
	require.True(t, p.Jump())

	p.Update(world)
	require.Equal(t, Airborne, p.Mode)
	for i := 0; i < 60 && p.Mode != Grounded; i++ {
		p.Update(world)
	}
	require.Equal(t, Grounded, p.Mode)
	assert.Equal(t, cfg.Effects.LandCount, countKind(q.Drain(), Land))
}

func TestApplyOrder(t *testing.T) {
	p, _ := standingPlayer(t, nil)

	p.Apply(Intent{MoveX: 1, JumpReleased: true, JumpPressed: true, Grab: true})

	assert.True(t, p.JumpHeld(), "press after release leaves the boost armed")
	assert.Equal(t, 0, p.JumpCharges)
	assert.True(t, p.Grab)
	x, _ := p.Movement()
	assert.Equal(t, 1, x)
}

func TestEffectsAreDeterministic(t *testing.T) {
	run := func() []Effect {
		q := &EffectQueue{}
		p, world := standingPlayer(t, q)
		p.Dash()
		for i := 0; i < 12; i++ {
			p.Update(world)
		}
		p.EmitDeath()
		p.Reset()
		return q.Drain()
	}

	first := run()
	require.NotEmpty(t, first)
	assert.Equal(t, first, run())
}

func TestDeathEffect(t *testing.T) {
	q := &EffectQueue{}
	p := New(gamemath.Vec2{}, q, 3)

	p.EmitDeath()

	effects := q.Drain()
	require.Len(t, effects, cfg.Effects.DeathCount)
	for _, e := range effects {
		assert.Equal(t, Death, e.Kind)
		assert.Equal(t, p.Center(), e.Pos)
		assert.LessOrEqual(t, e.Vel.X, cfg.Effects.DeathSpeed)
		assert.GreaterOrEqual(t, e.Vel.X, -cfg.Effects.DeathSpeed)
		assert.GreaterOrEqual(t, e.Frame, 0)
		assert.Less(t, e.Frame, cfg.Effects.FrameVariants)
	}
	assert.Equal(t, 0, q.Len())
}
