// internal/config/config.go
package config

import "image/color"

// Host constants. The simulation never reads these; only cmd/ and state/ do.
const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TickRate     = 60
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	WallColor       = color.RGBA{90, 90, 110, 255}
	RoomColor       = color.RGBA{40, 60, 70, 120}
	CorridorColor   = color.RGBA{60, 50, 40, 120}
	PlayerColor     = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	OrbColor        = color.RGBA{70, 130, 230, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)

// Config carries every tunable of the simulation. It is built once and
// passed by value or pointer to the systems that need it; nothing in the
// core reads settings from package state.
type Config struct {
	Seed       int64            `json:"seed"`
	Player     PlayerConfig     `json:"player"`
	Enemy      EnemyConfig      `json:"enemy"`
	Spawn      SpawnConfig      `json:"spawn"`
	Flow       FlowConfig       `json:"flow"`
	Projectile ProjectileConfig `json:"projectile"`
	Orb        OrbConfig        `json:"orb"`
	Pools      PoolConfig       `json:"pools"`
}

type PlayerConfig struct {
	MaxHP            int     `json:"max_hp"`
	Armor            int     `json:"armor"`
	Force            float64 `json:"force"`
	Speed            float64 `json:"speed"`
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	ImmunityDuration float64 `json:"immunity_duration"`
	RegenInterval    float64 `json:"regen_interval"`
	RegenAmount      int     `json:"regen_amount"`
	BaseXPToNext     int     `json:"base_xp_to_next"`
	XPGrowth         float64 `json:"xp_growth"`
	DifficultyFactor float64 `json:"difficulty_factor"`
	StartWeapon      string  `json:"start_weapon"`
}

type EnemyConfig struct {
	SpeedMultiplier  float64 `json:"speed_multiplier"`
	ImmunityDuration float64 `json:"immunity_duration"`
	SeparationWeight float64 `json:"separation_weight"`
	MaxNeighbors     int     `json:"max_neighbors"`
}

type SpawnConfig struct {
	GraceSeconds float64 `json:"grace_seconds"`
	BaseInterval float64 `json:"base_interval"`
	MinInterval  float64 `json:"min_interval"`
	RampEvery    float64 `json:"ramp_every"`
	RampFactor   float64 `json:"ramp_factor"`
	MinBatch     int     `json:"min_batch"`
	MaxBatch     int     `json:"max_batch"`
	MaxAttempts  int     `json:"max_attempts"`
}

type FlowConfig struct {
	// RecalcInterval forces a recompute even if the player stays in one cell.
	RecalcInterval float64 `json:"recalc_interval"`
}

type ProjectileConfig struct {
	BaseSize float64 `json:"base_size"`
}

type OrbConfig struct {
	MagnetRadius float64 `json:"magnet_radius"`
	Speed        float64 `json:"speed"`
}

type PoolConfig struct {
	MaxEnemies     int `json:"max_enemies"`
	MaxProjectiles int `json:"max_projectiles"`
	MaxOrbs        int `json:"max_orbs"`
}

// Default returns the tuning the game ships with.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			MaxHP:            100,
			Armor:            0,
			Force:            1.0,
			Speed:            160,
			Width:            14,
			Height:           20,
			ImmunityDuration: 0.5,
			RegenInterval:    10,
			RegenAmount:      5,
			BaseXPToNext:     10,
			XPGrowth:         1.25,
			DifficultyFactor: 1.0,
			StartWeapon:      "stick",
		},
		Enemy: EnemyConfig{
			SpeedMultiplier:  1.0,
			ImmunityDuration: 0.15,
			SeparationWeight: 1.0,
			MaxNeighbors:     5,
		},
		Spawn: SpawnConfig{
			GraceSeconds: 2,
			BaseInterval: 3,
			MinInterval:  0.8,
			RampEvery:    30,
			RampFactor:   0.9,
			MinBatch:     1,
			MaxBatch:     15,
			MaxAttempts:  10,
		},
		Flow: FlowConfig{
			RecalcInterval: 0.5,
		},
		Projectile: ProjectileConfig{
			BaseSize: 8,
		},
		Orb: OrbConfig{
			MagnetRadius: 60,
			Speed:        220,
		},
		Pools: PoolConfig{
			MaxEnemies:     400,
			MaxProjectiles: 256,
			MaxOrbs:        512,
		},
	}
}
