package config

import "github.com/yohamta/donburi/ecs"

// TPS is the fixed simulation rate. All durations below are counted in ticks.
const TPS = 60

// Default is the only ECS layer the simulation uses.
const Default ecs.LayerID = 0

// PhysicsConfig contains world physics shared by every body
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	Friction       float64 `yaml:"friction"`
	WallSlideSpeed float64 `yaml:"wall_slide_speed"`
}

// PlayerConfig contains player movement and dimension values
type PlayerConfig struct {
	// Movement
	Speed              float64 `yaml:"speed"`
	JumpPower          float64 `yaml:"jump_power"`
	JumpHorizontalBias float64 `yaml:"jump_horizontal_bias"` // Multiplier on Speed applied when jumping with input held
	AirTimeThreshold   int     `yaml:"air_time_threshold"`   // Ticks of air time before the player counts as airborne
	JumpCharges        int     `yaml:"jump_charges"`

	// Wall jump
	WallJumpHorizontal float64 `yaml:"wall_jump_horizontal"`
	WallJumpVertical   float64 `yaml:"wall_jump_vertical"`
	MaxWallJumps       int     `yaml:"max_wall_jumps"` // Per air time

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumpConfig controls the variable-height boost while jump is held
type JumpConfig struct {
	MaxHoldTicks  int     `yaml:"max_hold_ticks"`
	HoldImpulse   float64 `yaml:"hold_impulse"`   // Upward velocity added per held tick at multiplier 1.0
	MinMultiplier float64 `yaml:"min_multiplier"` // Multiplier reached at MaxHoldTicks
}

// DashConfig contains dash timing and speed
type DashConfig struct {
	Duration      int     `yaml:"duration"`
	ActiveTicks   int     `yaml:"active_ticks"` // Ticks at the start of the countdown that drive velocity
	Speed         float64 `yaml:"speed"`
	DiagonalScale float64 `yaml:"diagonal_scale"`
	Charges       int     `yaml:"charges"`
}

// StaminaConfig contains the stamina resource values
type StaminaConfig struct {
	Max                   float64 `yaml:"max"`
	RegenPerTick          float64 `yaml:"regen_per_tick"`
	AirDrainPerTick       float64 `yaml:"air_drain_per_tick"`
	WallSlideDrainPerTick float64 `yaml:"wall_slide_drain_per_tick"`
	WallJumpCost          float64 `yaml:"wall_jump_cost"`
}

// EffectsConfig controls how many particles each effect request carries
type EffectsConfig struct {
	FrameVariants int `yaml:"frame_variants"`

	DashBurstCount   int     `yaml:"dash_burst_count"`
	DashBurstOffset  float64 `yaml:"dash_burst_offset"`
	ParticleSpeedMin float64 `yaml:"particle_speed_min"`
	ParticleSpeedMax float64 `yaml:"particle_speed_max"`

	DashTrailInterval int     `yaml:"dash_trail_interval"` // Emit a trail particle every N dash ticks
	DashTrailSpeed    float64 `yaml:"dash_trail_speed"`

	WallContactCount int `yaml:"wall_contact_count"`
	LandCount        int `yaml:"land_count"`

	ResetCount    int     `yaml:"reset_count"`
	ResetSpeedMin float64 `yaml:"reset_speed_min"`
	ResetSpeedMax float64 `yaml:"reset_speed_max"`

	DeathCount int     `yaml:"death_count"`
	DeathSpeed float64 `yaml:"death_speed"`
}

// DeathConfig contains death/respawn timing
type DeathConfig struct {
	RespawnDelay int `yaml:"respawn_delay"`
}

// LevelConfig contains level document defaults
type LevelConfig struct {
	TileSize           int     `yaml:"tile_size"`
	DefaultMapPath     string  `yaml:"default_map_path"`
	DefaultSpawnX      float64 `yaml:"default_spawn_x"`
	DefaultSpawnY      float64 `yaml:"default_spawn_y"`
	SpawnVariants      []int   `yaml:"spawn_variants"`
	CheckpointVariants []int   `yaml:"checkpoint_variants"`
}

// Global configuration instances
var Physics PhysicsConfig
var Player PlayerConfig
var Jump JumpConfig
var Dash DashConfig
var Stamina StaminaConfig
var Effects EffectsConfig
var Death DeathConfig
var Level LevelConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every tuning group to its built-in defaults.
func Reset() {
	Physics = PhysicsConfig{
		Gravity:        0.25,
		MaxFallSpeed:   6.0,
		Friction:       0.1,
		WallSlideSpeed: 0.5,
	}

	Player = PlayerConfig{
		// Movement
		Speed:              1.5,
		JumpPower:          1.8,
		JumpHorizontalBias: 1.1,
		AirTimeThreshold:   4,
		JumpCharges:        1,

		// Wall jump
		WallJumpHorizontal: 2.1, // 3.5 tuned down to 60% so walls can be climbed
		WallJumpVertical:   2.5,
		MaxWallJumps:       3,

		// Dimensions
		Width:  8,
		Height: 15,
	}

	Jump = JumpConfig{
		MaxHoldTicks:  20,
		HoldImpulse:   0.1,
		MinMultiplier: 0.5,
	}

	Dash = DashConfig{
		Duration:      30,
		ActiveTicks:   10,
		Speed:         3.6,
		DiagonalScale: 0.7071, // 1/sqrt(2)
		Charges:       2,
	}

	Stamina = StaminaConfig{
		Max:                   110,
		RegenPerTick:          110, // Full refill on the first grounded tick
		AirDrainPerTick:       1.0 / 6,
		WallSlideDrainPerTick: 1.0 / 6,
		WallJumpCost:          30,
	}

	Effects = EffectsConfig{
		FrameVariants: 8,

		DashBurstCount:   8,
		DashBurstOffset:  5,
		ParticleSpeedMin: 0.5,
		ParticleSpeedMax: 1.0,

		DashTrailInterval: 2,
		DashTrailSpeed:    3,

		WallContactCount: 4,
		LandCount:        3,

		ResetCount:    15,
		ResetSpeedMin: 0.5,
		ResetSpeedMax: 2,

		DeathCount: 20,
		DeathSpeed: 2,
	}

	Death = DeathConfig{
		RespawnDelay: 45,
	}

	Level = LevelConfig{
		TileSize:           16,
		DefaultMapPath:     "map.json",
		DefaultSpawnX:      10,
		DefaultSpawnY:      10,
		SpawnVariants:      []int{0, 1},
		CheckpointVariants: []int{0, 1, 2, 3},
	}
}
