package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	HUD
)

// Config holds general game configuration
type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	TPS       int     `yaml:"tps"`
	TileSize  float64 `yaml:"tile_size"`
	ArenaCols int     `yaml:"arena_cols"`
	ArenaRows int     `yaml:"arena_rows"`
}

// TickMs is the simulated duration of one update.
func (c *Config) TickMs() float64 {
	return 1000.0 / float64(c.TPS)
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed    float64 `yaml:"speed"`
	Friction float64 `yaml:"friction"` // velocity kept per 16ms without input

	// Dash
	DashSpeed      float64 `yaml:"dash_speed"`
	DashMs         float64 `yaml:"dash_ms"`
	DashCooldownMs float64 `yaml:"dash_cooldown_ms"`

	// Combat
	Health         int     `yaml:"health"`
	InvulnMs       float64 `yaml:"invuln_ms"`
	FireCooldownMs float64 `yaml:"fire_cooldown_ms"`

	// DetectionRange is the starting enemy perception multiplier.
	DetectionRange float64 `yaml:"detection_range"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyTypeConfig contains the values every species shares
type EnemyTypeConfig struct {
	Name            string     `yaml:"name"`
	Health          int        `yaml:"health"`
	Speed           float64    `yaml:"speed"`
	DetectionRadius float64    `yaml:"detection_radius"`
	ContactDamage   int        `yaml:"contact_damage"`
	Width           float64    `yaml:"width"`
	Height          float64    `yaml:"height"`
	TintColor       color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	// Types is keyed by species name ("basic", "drifter", ...). An overlay
	// entry replaces the whole type.
	Types map[string]EnemyTypeConfig `yaml:"types"`

	InvulnMs    float64 `yaml:"invuln_ms"`
	MinionLimit int     `yaml:"minion_limit"`
}

// BasicConfig tunes the patrolling melee enemy.
type BasicConfig struct {
	PatrolSpeed      float64 `yaml:"patrol_speed"`
	PatrolRange      float64 `yaml:"patrol_range"`
	DashSpeed        float64 `yaml:"dash_speed"`
	ChaseSpeed       float64 `yaml:"chase_speed"`
	StallDistance    float64 `yaml:"stall_distance"`
	ContactRadius    float64 `yaml:"contact_radius"`
	ContactTimerMs   float64 `yaml:"contact_timer_ms"`
	ContactDamage    int     `yaml:"contact_damage"`
	KnockbackDecay   float64 `yaml:"knockback_decay"`
	KnockbackMs      float64 `yaml:"knockback_ms"`
	KnockbackImpulse float64 `yaml:"knockback_impulse"`
}

// DrifterConfig tunes the floating enemy that runs from the player.
type DrifterConfig struct {
	IntervalMs  float64 `yaml:"interval_ms"`
	FloatFactor float64 `yaml:"float_factor"`
}

// OrbiterConfig tunes the enemy that rings the player.
type OrbiterConfig struct {
	RingRadius     float64 `yaml:"ring_radius"`
	FarDistance    float64 `yaml:"far_distance"`
	NearDistance   float64 `yaml:"near_distance"`
	SnapDistance   float64 `yaml:"snap_distance"`
	CrawlSpeed     float64 `yaml:"crawl_speed"`
	HomingGain     float64 `yaml:"homing_gain"`
	DriftSpeed     float64 `yaml:"drift_speed"`
	DriftPeriodMs  float64 `yaml:"drift_period_ms"`
	IdleDecay      float64 `yaml:"idle_decay"`
	TurnRate       float64 `yaml:"turn_rate"`
	RampMs         float64 `yaml:"ramp_ms"`
	StartingFactor float64 `yaml:"starting_factor"`
}

// ChargerConfig tunes the charge-and-shoot enemy.
type ChargerConfig struct {
	ChargeMs         float64 `yaml:"charge_ms"`
	PierceSpeed      float64 `yaml:"pierce_speed"`
	PierceMs         float64 `yaml:"pierce_ms"`
	ShootWindowMs    float64 `yaml:"shoot_window_ms"`
	ShootCooldownMs  float64 `yaml:"shoot_cooldown_ms"`
	TurnRate         float64 `yaml:"turn_rate"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileDamage int     `yaml:"projectile_damage"`
}

// BossConfig tunes the mid boss.
type BossConfig struct {
	IdleCooldownMs   float64 `yaml:"idle_cooldown_ms"`
	ParadeDurationMs float64 `yaml:"parade_duration_ms"`
	ParadeIntervalMs float64 `yaml:"parade_interval_ms"`
	ParadeStep       float64 `yaml:"parade_step"` // degrees between ring projectiles
	RumbleChargeMs   float64 `yaml:"rumble_charge_ms"`
	RumbleDurationMs float64 `yaml:"rumble_duration_ms"`
	RumbleMultiplier float64 `yaml:"rumble_multiplier"`
	FleeDurationMs   float64 `yaml:"flee_duration_ms"`
	FleeMultiplier   float64 `yaml:"flee_multiplier"`
	FleeThreshold    float64 `yaml:"flee_threshold"` // health ratio below which flee unlocks
	TurnRate         float64 `yaml:"turn_rate"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileDamage int     `yaml:"projectile_damage"`
}

// FinalBossConfig tunes the three phase final boss. Per-phase slices are
// indexed by phase-1.
type FinalBossConfig struct {
	ContourThickness []int     `yaml:"contour_thickness"`
	SpawnChance      []float64 `yaml:"spawn_chance"`
	SpiralDurationMs float64   `yaml:"spiral_duration_ms"`
	SpiralIntervalMs float64   `yaml:"spiral_interval_ms"`
	RingCount        int       `yaml:"ring_count"`
	TiredCooldownMs  float64   `yaml:"tired_cooldown_ms"`
	FlankOffset      float64   `yaml:"flank_offset"`
	ProjectileSpeed  float64   `yaml:"projectile_speed"`
	HomingSpeed      float64   `yaml:"homing_speed"`
	ProjectileDamage int       `yaml:"projectile_damage"`
}

// AIConfig groups the per-species state machine tuning.
type AIConfig struct {
	Basic     BasicConfig     `yaml:"basic"`
	Drifter   DrifterConfig   `yaml:"drifter"`
	Orbiter   OrbiterConfig   `yaml:"orbiter"`
	Charger   ChargerConfig   `yaml:"charger"`
	Boss      BossConfig      `yaml:"boss"`
	FinalBoss FinalBossConfig `yaml:"final_boss"`
}

// CollisionConfig contains wall resolution and broad phase values
type CollisionConfig struct {
	// Margin is the gap left between a resolved rectangle and the wall edge.
	Margin   float64 `yaml:"margin"`
	CellSize int     `yaml:"cell_size"`
}

// ProjectileConfig contains values for player-fired and enemy projectiles
type ProjectileConfig struct {
	PlayerSpeed    float64 `yaml:"player_speed"`
	PlayerDamage   int     `yaml:"player_damage"`
	Size           float64 `yaml:"size"`
	LifetimeMs     float64 `yaml:"lifetime_ms"`
	HomingTurnRate float64 `yaml:"homing_turn_rate"` // degrees per second
	KnockbackForce float64 `yaml:"knockback_force"`
}

// CombatConfig contains hit feedback values
type CombatConfig struct {
	HealthBarMs       float64 `yaml:"health_bar_ms"`
	FlashMs           float64 `yaml:"flash_ms"`
	PlayerDeathMs     float64 `yaml:"player_death_ms"`
	EnemyDeathMs      float64 `yaml:"enemy_death_ms"`
	PlayerKnockback   float64 `yaml:"player_knockback"`
	MaxKnockback      float64 `yaml:"max_knockback"` // cap on the summed knockback of one tick
	ContactCooldownMs float64 `yaml:"contact_cooldown_ms"`
}

// IndicatorConfig contains the boss arrow values
type IndicatorConfig struct {
	Margin   float64 `yaml:"margin"`
	Size     float64 `yaml:"size"`
	PulseMs  float32 `yaml:"pulse_ms"`
	PulseMin float32 `yaml:"pulse_min"`
	PulseMax float32 `yaml:"pulse_max"`
}

// GameOverConfig contains end of run banner values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	WinColor        color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	StatsY          float64
	LineHeight      float64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var AI AIConfig
var Collision CollisionConfig
var Projectile ProjectileConfig
var Combat CombatConfig
var Indicator IndicatorConfig
var GameOver GameOverConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	WallGray     = color.RGBA{R: 70, G: 70, B: 90, A: 255}
	PortalCyan   = color.RGBA{R: 0, G: 220, B: 220, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every tuning value to its built-in default.
func Reset() {
	C = &Config{
		Width:     640,
		Height:    360,
		TPS:       60,
		TileSize:  32,
		ArenaCols: 40,
		ArenaRows: 30,
	}

	Player = PlayerConfig{
		Speed:    200,
		Friction: 0.8,

		DashSpeed:      560,
		DashMs:         220,
		DashCooldownMs: 700,

		Health:         100,
		InvulnMs:       800,
		FireCooldownMs: 220,

		DetectionRange: 1.0,

		Width:  22,
		Height: 22,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"basic": {
				Name: "Basic", Health: 30, Speed: 60, DetectionRadius: 160,
				ContactDamage: 8, Width: 20, Height: 20,
				TintColor: LightGreen,
			},
			"drifter": {
				Name: "Drifter", Health: 20, Speed: 120, DetectionRadius: 140,
				ContactDamage: 4, Width: 18, Height: 18,
				TintColor: LightBlue,
			},
			"orbiter": {
				Name: "Orbiter", Health: 25, Speed: 180, DetectionRadius: 200,
				ContactDamage: 6, Width: 16, Height: 24,
				TintColor: Purple,
			},
			"charger": {
				Name: "Charger", Health: 45, Speed: 0, DetectionRadius: 220,
				ContactDamage: 12, Width: 24, Height: 32,
				TintColor: Orange,
			},
			"boss": {
				Name: "Boss", Health: 300, Speed: 90, DetectionRadius: 320,
				ContactDamage: 15, Width: 56, Height: 56,
				TintColor: Red,
			},
			"finalboss": {
				Name: "Final Boss", Health: 600, Speed: 0, DetectionRadius: 400,
				ContactDamage: 20, Width: 72, Height: 72,
				TintColor: Magenta,
			},
		},
		InvulnMs:    120,
		MinionLimit: 64,
	}

	AI = AIConfig{
		Basic: BasicConfig{
			PatrolSpeed:      60,
			PatrolRange:      96,
			DashSpeed:        170,
			ChaseSpeed:       110,
			StallDistance:    0.1,
			ContactRadius:    24,
			ContactTimerMs:   400,
			ContactDamage:    15,
			KnockbackDecay:   0.85,
			KnockbackMs:      250,
			KnockbackImpulse: 260,
		},
		Drifter: DrifterConfig{
			IntervalMs:  3000,
			FloatFactor: 0.5,
		},
		Orbiter: OrbiterConfig{
			RingRadius:     96,
			FarDistance:    150,
			NearDistance:   30,
			SnapDistance:   5,
			CrawlSpeed:     30,
			HomingGain:     2.0,
			DriftSpeed:     20,
			DriftPeriodMs:  2400,
			IdleDecay:      0.92,
			TurnRate:       0.15,
			RampMs:         600,
			StartingFactor: 0.5,
		},
		Charger: ChargerConfig{
			ChargeMs:         900,
			PierceSpeed:      520,
			PierceMs:         450,
			ShootWindowMs:    2400,
			ShootCooldownMs:  600,
			TurnRate:         0.1,
			ProjectileSpeed:  260,
			ProjectileDamage: 8,
		},
		Boss: BossConfig{
			IdleCooldownMs:   1200,
			ParadeDurationMs: 2400,
			ParadeIntervalMs: 400,
			ParadeStep:       30,
			RumbleChargeMs:   700,
			RumbleDurationMs: 600,
			RumbleMultiplier: 5,
			FleeDurationMs:   900,
			FleeMultiplier:   3,
			FleeThreshold:    0.4,
			TurnRate:         0.1,
			ProjectileSpeed:  200,
			ProjectileDamage: 10,
		},
		FinalBoss: FinalBossConfig{
			ContourThickness: []int{2, 3, 4},
			SpawnChance:      []float64{0.4, 0.6, 0.85},
			SpiralDurationMs: 4000,
			SpiralIntervalMs: 350,
			RingCount:        12,
			TiredCooldownMs:  2500,
			FlankOffset:      48,
			ProjectileSpeed:  180,
			HomingSpeed:      150,
			ProjectileDamage: 12,
		},
	}

	Collision = CollisionConfig{
		Margin:   2,
		CellSize: 16,
	}

	Projectile = ProjectileConfig{
		PlayerSpeed:    480,
		PlayerDamage:   10,
		Size:           8,
		LifetimeMs:     3000,
		HomingTurnRate: 120,
		KnockbackForce: 260,
	}

	Combat = CombatConfig{
		HealthBarMs:       1500,
		FlashMs:           100,
		PlayerDeathMs:     1000,
		EnemyDeathMs:      250,
		PlayerKnockback:   180,
		MaxKnockback:      320,
		ContactCooldownMs: 500,
	}

	GameOver = GameOverConfig{
		BackgroundColor: color.RGBA{R: 20, G: 10, B: 30, A: 200},
		TitleColor:      LightRed,
		WinColor:        PortalCyan,
		TextColor:       White,
		TitleY:          110,
		StatsY:          180,
		LineHeight:      18,
	}

	Indicator = IndicatorConfig{
		Margin:   16,
		Size:     10,
		PulseMs:  450,
		PulseMin: 0.8,
		PulseMax: 1.3,
	}
}
