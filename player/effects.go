package player

import (
	"math"

	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/gamemath"
)

// EffectKind identifies a visual effect request.
type EffectKind int

const (
	DashBurst EffectKind = iota
	DashTrail
	WallContact
	Land
	Death
	Reset
)

var effectKindNames = map[EffectKind]string{
	DashBurst:   "dash_burst",
	DashTrail:   "dash_trail",
	WallContact: "wall_contact",
	Land:        "land",
	Death:       "death",
	Reset:       "reset",
}

func (k EffectKind) String() string {
	if name, ok := effectKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Effect asks the renderer for one particle. Frame picks an animation start
// frame so particles in a burst don't move in lockstep.
type Effect struct {
	Kind  EffectKind
	Pos   gamemath.Vec2
	Vel   gamemath.Vec2
	Frame int
}

// EffectSink receives effect requests. The simulation never reads them back.
type EffectSink interface {
	Spawn(e Effect)
}

// EffectQueue buffers effect requests until the host drains them.
type EffectQueue struct {
	pending []Effect
}

func (q *EffectQueue) Spawn(e Effect) {
	q.pending = append(q.pending, e)
}

// Drain returns and clears the buffered requests.
func (q *EffectQueue) Drain() []Effect {
	out := q.pending
	q.pending = nil
	return out
}

func (q *EffectQueue) Len() int {
	return len(q.pending)
}

type discardSink struct{}

func (discardSink) Spawn(Effect) {}

func (p *Player) frame() int {
	return p.rng.Intn(cfg.Effects.FrameVariants)
}

func (p *Player) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}

// radial returns a velocity with a random heading.
func (p *Player) radial(speed float64) gamemath.Vec2 {
	angle := p.rng.Float64() * math.Pi * 2
	return gamemath.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
}

func (p *Player) emitDashBurst(dir gamemath.Direction) {
	center := p.Center()
	pos := gamemath.Vec2{
		X: center.X + float64(dir.X)*cfg.Effects.DashBurstOffset,
		Y: center.Y + float64(dir.Y)*cfg.Effects.DashBurstOffset,
	}
	maxSpeed := cfg.Effects.ParticleSpeedMax * 1.5
	for i := 0; i < cfg.Effects.DashBurstCount; i++ {
		p.effects.Spawn(Effect{
			Kind:  DashBurst,
			Pos:   pos,
			Vel:   p.radial(p.uniform(cfg.Effects.ParticleSpeedMin, maxSpeed)),
			Frame: p.frame(),
		})
	}
}

func (p *Player) emitDashTrail() {
	p.effects.Spawn(Effect{
		Kind: DashTrail,
		Pos:  p.Center(),
		Vel: gamemath.Vec2{
			X: -float64(p.DashDir.X) * p.rng.Float64() * cfg.Effects.DashTrailSpeed,
			Y: -float64(p.DashDir.Y) * p.rng.Float64() * cfg.Effects.DashTrailSpeed,
		},
		Frame: p.frame(),
	})
}

func (p *Player) emitWallContact() {
	r := p.Rect()
	pos := gamemath.Vec2{X: r.Right(), Y: r.Center().Y}
	if p.wallDir < 0 {
		pos.X = r.Left()
	}
	away := -float64(p.wallDir)
	for i := 0; i < cfg.Effects.WallContactCount; i++ {
		p.effects.Spawn(Effect{
			Kind:  WallContact,
			Pos:   pos,
			Vel:   gamemath.Vec2{X: away * p.uniform(cfg.Effects.ParticleSpeedMin, cfg.Effects.ParticleSpeedMax), Y: p.uniform(-0.5, 0.5)},
			Frame: p.frame(),
		})
	}
}

func (p *Player) emitLand() {
	r := p.Rect()
	pos := gamemath.Vec2{X: r.Center().X, Y: r.Bottom()}
	for i := 0; i < cfg.Effects.LandCount; i++ {
		p.effects.Spawn(Effect{
			Kind:  Land,
			Pos:   pos,
			Vel:   gamemath.Vec2{X: p.uniform(-cfg.Effects.ParticleSpeedMax, cfg.Effects.ParticleSpeedMax), Y: -p.uniform(0, cfg.Effects.ParticleSpeedMin)},
			Frame: p.frame(),
		})
	}
}

func (p *Player) emitReset() {
	center := p.Center()
	for i := 0; i < cfg.Effects.ResetCount; i++ {
		p.effects.Spawn(Effect{
			Kind:  Reset,
			Pos:   center,
			Vel:   p.radial(p.uniform(cfg.Effects.ResetSpeedMin, cfg.Effects.ResetSpeedMax)),
			Frame: p.frame(),
		})
	}
}

// EmitDeath requests the death burst at the player's current center.
func (p *Player) EmitDeath() {
	center := p.Center()
	speed := cfg.Effects.DeathSpeed
	for i := 0; i < cfg.Effects.DeathCount; i++ {
		p.effects.Spawn(Effect{
			Kind:  Death,
			Pos:   center,
			Vel:   gamemath.Vec2{X: p.uniform(-speed, speed), Y: p.uniform(-speed, speed)},
			Frame: p.frame(),
		})
	}
}
