package scenes

import (
	"sync"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/gamemath"
	"github.com/automoto/summit/physics"
	"github.com/automoto/summit/player"
	"github.com/automoto/summit/systems"
	"github.com/automoto/summit/systems/factory"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Snapshot is what the host reads back after each tick.
type Snapshot struct {
	Tick        int
	Pos         gamemath.Vec2
	Vel         gamemath.Vec2
	Collisions  physics.Flags
	Action      cfg.StateID
	Mode        player.Mode
	FacingLeft  bool
	Stamina     float64
	DashCharges int
	Effects     []player.Effect
	Dying       bool
	Finished    bool
	Deaths      int
	Checkpoint  int // ID of the last activated checkpoint, -1 before any
}

// PlatformerScene runs the simulation for one level.
type PlatformerScene struct {
	ecs     *ecs.ECS
	tilemap *tilemap.Tilemap
	seed    int64
	once    sync.Once
}

// NewPlatformerScene creates a scene for tm. The scene owns tm from here on:
// spawn markers are extracted from it on the first Update.
func NewPlatformerScene(tm *tilemap.Tilemap) *PlatformerScene {
	return &PlatformerScene{tilemap: tm, seed: 1}
}

// WithSeed sets the particle randomness seed. Call before the first Update.
func (ps *PlatformerScene) WithSeed(seed int64) *PlatformerScene {
	ps.seed = seed
	return ps
}

// SetInput stores the intent applied on the next Update.
func (ps *PlatformerScene) SetInput(intent player.Intent) {
	ps.once.Do(ps.configure)
	systems.SetPlayerInput(ps.ecs, intent)
}

// Update advances the simulation one tick.
func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

// Snapshot reports the player state and drains pending effect requests.
func (ps *PlatformerScene) Snapshot() Snapshot {
	ps.once.Do(ps.configure)

	snap := Snapshot{Checkpoint: -1}
	if level := systems.GetLevel(ps.ecs); level != nil {
		snap.Tick = level.Tick
		snap.Deaths = level.Deaths
		if level.ActiveCheckpoint != nil {
			snap.Checkpoint = level.ActiveCheckpoint.CheckpointID
		}
	}
	snap.Finished = systems.IsLevelComplete(ps.ecs)
	snap.Effects = systems.DrainEffects(ps.ecs)

	if e, ok := tags.Player.First(ps.ecs.World); ok {
		p := components.Player.Get(e)
		snap.Pos = p.Pos
		snap.Vel = p.Vel
		snap.Collisions = p.Collisions
		snap.Action = p.Action
		snap.Mode = p.Mode
		snap.FacingLeft = p.FacingLeft
		snap.Stamina = p.Stamina
		snap.DashCharges = p.DashCharges
		snap.Dying = e.HasComponent(components.Death)
	}
	return snap
}

// Player returns the simulated player, mostly for tests and tooling.
func (ps *PlatformerScene) Player() *player.Player {
	ps.once.Do(ps.configure)
	e, ok := tags.Player.First(ps.ecs.World)
	if !ok {
		return nil
	}
	return components.Player.Get(e).Player
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateHazards))
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateCheckpoints))
	ecs.AddSystem(systems.UpdateFinishLine)
	ecs.AddSystem(systems.WithLevelCompleteCheck(systems.UpdateDeaths))

	ps.ecs = ecs

	// Create the level entity first; it extracts the spawn markers.
	level := factory.CreateLevel(ps.ecs, ps.tilemap)
	levelData := components.Level.Get(level)

	// Now create the space for trigger checks using the level's dimensions.
	factory.CreateSpace(ps.ecs, ps.tilemap)

	checkpoints := ps.tilemap.Extract(tilemap.VariantsOf(tilemap.Checkpoint, cfg.Level.CheckpointVariants...), true)
	size := float64(ps.tilemap.TileSize)
	for i, c := range checkpoints {
		factory.CreateCheckpoint(ps.ecs, levelData.SpaceOrigin, c.Pos.X, c.Pos.Y, size, size, i)
	}

	effects := components.Effects.Get(level)
	factory.CreatePlayer(ps.ecs, levelData.Spawn, levelData.SpaceOrigin, effects, ps.seed)
}
