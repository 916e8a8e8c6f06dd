// internal/component/player.go
package component

import (
	"go-survivors/internal/config"
	"go-survivors/pkg/utils"
)

// MoveIntent is the direction the input layer wants the player to move in.
// Which keys produce it is not the simulation's concern.
type MoveIntent struct {
	Up, Down, Left, Right bool
}

// Vector returns the unit direction of the intent, or zero when the intent
// is empty or cancels itself out.
func (m MoveIntent) Vector() utils.Vec2 {
	var v utils.Vec2
	if m.Up {
		v.Y--
	}
	if m.Down {
		v.Y++
	}
	if m.Left {
		v.X--
	}
	if m.Right {
		v.X++
	}
	return v.Norm()
}

// Player is the hero: a Living with progression.
type Player struct {
	Living

	Hitbox utils.Rect
	Speed  float64
	// Facing is the current movement direction; zero while standing still.
	Facing utils.Vec2

	XP       int
	Level    int
	XPToNext int
	xpGrowth float64

	// Weapon is borrowed from the arsenal, which owns every weapon.
	Weapon *Weapon

	MobKilled int

	RegenTimer    float64
	RegenInterval float64
	RegenAmount   int

	// DifficultyFactor scales how fast spawn batches grow.
	DifficultyFactor float64
}

// NewPlayer places a fresh level-1 player with its top-left corner at pos.
func NewPlayer(cfg config.PlayerConfig, pos utils.Vec2) *Player {
	p := &Player{
		Hitbox:           utils.Rect{X: pos.X, Y: pos.Y, W: cfg.Width, H: cfg.Height},
		Speed:            cfg.Speed,
		Level:            1,
		XPToNext:         cfg.BaseXPToNext,
		xpGrowth:         cfg.XPGrowth,
		RegenInterval:    cfg.RegenInterval,
		RegenAmount:      cfg.RegenAmount,
		DifficultyFactor: cfg.DifficultyFactor,
	}
	p.InitLiving(cfg.MaxHP, cfg.Armor, cfg.Force, cfg.ImmunityDuration)
	return p
}

func (p *Player) Bounds() utils.Rect { return p.Hitbox }
func (p *Player) Center() utils.Vec2 { return p.Hitbox.Center() }

// AimDirection is Facing, or straight down when the player is not moving.
func (p *Player) AimDirection() utils.Vec2 {
	return p.Facing.NormOr(utils.Down)
}

// TickRegen advances the regeneration timer and heals in whole pulses of
// RegenAmount every RegenInterval seconds. It returns the number of pulses.
func (p *Player) TickRegen(dt float64) int {
	if !p.Alive || p.RegenInterval <= 0 {
		return 0
	}
	p.RegenTimer += dt
	pulses := 0
	for p.RegenTimer >= p.RegenInterval {
		p.RegenTimer -= p.RegenInterval
		p.Heal(p.RegenAmount)
		pulses++
	}
	return pulses
}

// AddXP credits experience and returns how many levels were gained. Each
// level raises the requirement by the growth factor.
func (p *Player) AddXP(v int) int {
	if v <= 0 || !p.Alive {
		return 0
	}
	p.XP += v
	levels := 0
	for p.XPToNext > 0 && p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		levels++
		next := int(float64(p.XPToNext) * p.xpGrowth)
		if next <= p.XPToNext {
			next = p.XPToNext + 1
		}
		p.XPToNext = next
	}
	return levels
}
