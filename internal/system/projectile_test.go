package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/defs"
	"go-survivors/pkg/utils"
)

func TestProjectileExpiresAtMaxRange(t *testing.T) {
	reg := newRegistry(nil)
	ps := NewProjectileSystem(reg)
	_, ok := reg.ObtainProjectile(utils.Vec2{X: 10, Y: 10}, utils.Vec2{X: 1}, 100, 5, 200, 1, nil)
	require.True(t, ok)

	ps.Update(1)
	assert.Equal(t, 1, reg.Projectiles.ActiveCount())
	ps.Update(1)
	assert.Zero(t, reg.Projectiles.ActiveCount())
}

func TestProjectileHitsEnemy(t *testing.T) {
	reg := newRegistry(nil)
	ps := NewProjectileSystem(reg)
	_, e, _ := reg.ObtainEnemy(defs.EnemySkeleton, utils.Vec2{X: 50, Y: 0})
	hp := e.HP

	reg.ObtainProjectile(utils.Vec2{X: 40, Y: 10}, utils.Vec2{X: 1}, 100, 24, 500, 1, nil)
	assert.Equal(t, 1, ps.Update(0.1))
	assert.Zero(t, reg.Projectiles.ActiveCount())
	// skeleton armor 20: 24*100/120 = 20
	assert.Equal(t, hp-20, e.HP)
	assert.True(t, e.IsImmune())
	assert.Equal(t, 1, ps.Hits())
}

func TestProjectilePassesImmuneAndDeadEnemies(t *testing.T) {
	reg := newRegistry(nil)
	ps := NewProjectileSystem(reg)
	_, immune, _ := reg.ObtainEnemy(defs.EnemySlime, utils.Vec2{X: 50, Y: 0})
	immune.ImmunityTimer = 5
	_, dead, _ := reg.ObtainEnemy(defs.EnemySlime, utils.Vec2{X: 50, Y: 0})
	dead.Alive = false

	reg.ObtainProjectile(utils.Vec2{X: 40, Y: 6}, utils.Vec2{X: 1}, 100, 10, 500, 1, nil)
	assert.Zero(t, ps.Update(0.1))
	assert.Equal(t, 1, reg.Projectiles.ActiveCount())
	assert.Equal(t, immune.MaxHP, immune.HP)
}

func TestProjectilesReleasedWhileIterating(t *testing.T) {
	reg := newRegistry(nil)
	ps := NewProjectileSystem(reg)
	for i := 0; i < 5; i++ {
		reg.ObtainProjectile(utils.Vec2{X: 100, Y: float64(20 * i)}, utils.Vec2{X: 1}, 100, 1, float64(10+i*10), 1, nil)
	}
	ps.Update(0.15)
	assert.Equal(t, 4, reg.Projectiles.ActiveCount())
	ps.Update(0.1)
	assert.Equal(t, 3, reg.Projectiles.ActiveCount())
	ps.Update(1)
	assert.Zero(t, reg.Projectiles.ActiveCount())
}
