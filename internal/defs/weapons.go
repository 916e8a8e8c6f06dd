// internal/defs/weapons.go
package defs

// WeaponStats holds the level-1 numbers of one weapon kind. Every kind
// fires through the same routine; only these numbers differ.
type WeaponStats struct {
	ID              string  `json:"id"`
	ShotDelay       float64 `json:"shot_delay"`
	Damage          float64 `json:"damage"`
	CritChance      float64 `json:"crit_chance"`
	CritDamage      float64 `json:"crit_damage"`
	Range           float64 `json:"range"`
	ProjectileSpeed float64 `json:"projectile_speed"`
	ProjectileSize  float64 `json:"projectile_size"`
}

var defaultWeapons = [WeaponKindCount]WeaponStats{
	WeaponStick: {
		ID: "stick", ShotDelay: 0.9, Damage: 8, CritChance: 0.05, CritDamage: 1.5,
		Range: 90, ProjectileSpeed: 220, ProjectileSize: 1.0,
	},
	WeaponDagger: {
		ID: "dagger", ShotDelay: 0.35, Damage: 6, CritChance: 0.2, CritDamage: 2.0,
		Range: 80, ProjectileSpeed: 320, ProjectileSize: 0.7,
	},
	WeaponSword: {
		ID: "sword", ShotDelay: 0.8, Damage: 18, CritChance: 0.1, CritDamage: 1.75,
		Range: 60, ProjectileSpeed: 200, ProjectileSize: 2.0,
	},
	WeaponWand: {
		ID: "wand", ShotDelay: 1.4, Damage: 30, CritChance: 0.1, CritDamage: 1.5,
		Range: 320, ProjectileSpeed: 180, ProjectileSize: 1.5,
	},
	WeaponBow: {
		ID: "bow", ShotDelay: 0.7, Damage: 12, CritChance: 0.15, CritDamage: 2.0,
		Range: 260, ProjectileSpeed: 380, ProjectileSize: 0.8,
	},
}
