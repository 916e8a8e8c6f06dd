// internal/component/weapon.go
package component

import "go-survivors/internal/defs"

// Weapon is the cooldown-gated emitter the player carries. All kinds fire
// the same way; the kind only selects starting stats.
type Weapon struct {
	Kind  defs.WeaponKind
	Level int

	ShotDelay       float64
	Damage          float64
	CritChance      float64
	CritDamage      float64
	Range           float64
	ProjectileSpeed float64
	ProjectileSize  float64

	Cooldown float64
}

// Per-level scaling.
const (
	levelDamageFactor = 1.2
	levelDelayFactor  = 0.9
	levelRangeFactor  = 1.05
	minShotDelay      = 0.05
)

// NewWeapon builds a level-1 weapon from its stat block. It starts ready to
// fire.
func NewWeapon(kind defs.WeaponKind, stats *defs.WeaponStats) *Weapon {
	return &Weapon{
		Kind:            kind,
		Level:           1,
		ShotDelay:       stats.ShotDelay,
		Damage:          stats.Damage,
		CritChance:      stats.CritChance,
		CritDamage:      stats.CritDamage,
		Range:           stats.Range,
		ProjectileSpeed: stats.ProjectileSpeed,
		ProjectileSize:  stats.ProjectileSize,
	}
}

// CooldownTick decays the cooldown, never below zero.
func (w *Weapon) CooldownTick(dt float64) {
	w.Cooldown -= dt
	if w.Cooldown < 0 {
		w.Cooldown = 0
	}
}

func (w *Weapon) CanShoot() bool { return w.Cooldown <= 0 }

// ResetCooldown starts the wait until the next shot.
func (w *Weapon) ResetCooldown() { w.Cooldown = w.ShotDelay }

// EffectiveDamage returns the damage of one shot. roll is a uniform number
// in [0, 1); rolls below CritChance multiply the damage by CritDamage.
func (w *Weapon) EffectiveDamage(roll float64) (damage float64, crit bool) {
	if roll < w.CritChance {
		return w.Damage * w.CritDamage, true
	}
	return w.Damage, false
}

// LevelUp makes the weapon stronger, faster and longer-reaching.
func (w *Weapon) LevelUp() {
	w.Level++
	w.Damage *= levelDamageFactor
	w.Range *= levelRangeFactor
	w.ShotDelay *= levelDelayFactor
	if w.ShotDelay < minShotDelay {
		w.ShotDelay = minShotDelay
	}
}
