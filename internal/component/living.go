// internal/component/living.go
package component

// Living is the health model shared by the player and enemies.
//
// HP never exceeds MaxHP and never drops below zero. Once Alive is false it
// stays false until the owner is reset through its pool.
type Living struct {
	HP    int
	MaxHP int
	Armor int
	// Force scales damage this entity deals, not damage it receives.
	Force float64
	Alive bool

	// ImmunityTimer counts down after a hit; while positive TakeDamage does
	// nothing. ImmunityDuration is the window restarted by each hit.
	ImmunityTimer    float64
	ImmunityDuration float64
}

// InitLiving brings the entity to full health.
func (l *Living) InitLiving(maxHP, armor int, force, immunity float64) {
	if armor < 0 {
		armor = 0
	}
	l.HP = maxHP
	l.MaxHP = maxHP
	l.Armor = armor
	l.Force = force
	l.Alive = maxHP > 0
	l.ImmunityTimer = 0
	l.ImmunityDuration = immunity
}

func (l *Living) IsAlive() bool  { return l.Alive }
func (l *Living) IsImmune() bool { return l.ImmunityTimer > 0 }

// TakeDamage applies amount reduced by armor (amount*100/(100+armor)),
// truncated to an integer, and returns the hp actually removed. Dead or
// immune entities take nothing. A hit that truncates to zero neither hurts
// nor starts the immunity window.
func (l *Living) TakeDamage(amount float64) int {
	if !l.Alive || l.IsImmune() || amount <= 0 {
		return 0
	}
	armor := l.Armor
	if armor < 0 {
		armor = 0
	}
	dmg := int(amount * 100 / float64(100+armor))
	if dmg <= 0 {
		return 0
	}
	if dmg > l.HP {
		dmg = l.HP
	}

	l.HP -= dmg
	if l.HP <= 0 {
		l.HP = 0
		l.Alive = false
	}
	l.ImmunityTimer = l.ImmunityDuration
	return dmg
}

// Heal restores hp up to MaxHP. The dead are not healed.
func (l *Living) Heal(amount int) {
	if !l.Alive || amount <= 0 {
		return
	}
	l.HP += amount
	if l.HP > l.MaxHP {
		l.HP = l.MaxHP
	}
}

// TickImmunity decays the immunity window.
func (l *Living) TickImmunity(dt float64) {
	if l.ImmunityTimer <= 0 {
		return
	}
	l.ImmunityTimer -= dt
	if l.ImmunityTimer < 0 {
		l.ImmunityTimer = 0
	}
}

// DealDamage scales an outgoing hit by Force.
func (l *Living) DealDamage(base float64) float64 {
	return base * l.Force
}
