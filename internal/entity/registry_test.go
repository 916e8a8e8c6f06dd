package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/pkg/pool"
	"go-survivors/pkg/utils"
)

func newTestRegistry(maxEnemies int) *Registry {
	cfg := config.Default()
	cfg.Pools.MaxEnemies = maxEnemies
	return NewRegistry(cfg, defs.DefaultLibrary())
}

func TestObtainEnemyInitialisesFromStats(t *testing.T) {
	r := newTestRegistry(4)
	stats := defs.DefaultLibrary().Enemy(defs.EnemyOgre)

	h, e, ok := r.ObtainEnemy(defs.EnemyOgre, utils.Vec2{X: 10, Y: 20})
	require.True(t, ok)
	assert.True(t, e.Alive)
	assert.Equal(t, stats.HP, e.HP)
	assert.Equal(t, stats.Armor, e.Armor)
	assert.Equal(t, utils.Rect{X: 10, Y: 20, W: stats.Width, H: stats.Height}, e.Hitbox)
	assert.Same(t, e, r.Enemy(h))
	assert.Equal(t, []pool.Handle{h}, r.ActiveEnemies())
}

func TestFootprintLearnedOnFirstObtain(t *testing.T) {
	r := newTestRegistry(4)
	_, ok := r.Footprint(defs.EnemyBat)
	assert.False(t, ok)

	h, _, _ := r.ObtainEnemy(defs.EnemyBat, utils.Vec2{})
	r.ReleaseEnemy(h)

	fp, ok := r.Footprint(defs.EnemyBat)
	require.True(t, ok)
	stats := defs.DefaultLibrary().Enemy(defs.EnemyBat)
	assert.Equal(t, utils.Vec2{X: stats.Width, Y: stats.Height}, fp)

	_, ok = r.Footprint(defs.EnemyKindCount)
	assert.False(t, ok)
}

func TestEnemyPoolExhaustionAndReuse(t *testing.T) {
	r := newTestRegistry(2)
	h1, _, ok1 := r.ObtainEnemy(defs.EnemySlime, utils.Vec2{})
	_, _, ok2 := r.ObtainEnemy(defs.EnemySlime, utils.Vec2{})
	_, _, ok3 := r.ObtainEnemy(defs.EnemySlime, utils.Vec2{})
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.False(t, ok3)

	assert.True(t, r.ReleaseEnemy(h1))
	assert.False(t, r.ReleaseEnemy(h1))
	_, e, ok := r.ObtainEnemy(defs.EnemyBat, utils.Vec2{X: 5})
	require.True(t, ok)
	assert.Equal(t, defs.EnemyBat, e.Kind, "reused slot carries no stale state")
	assert.Equal(t, 2, r.Enemies.CreatedCount())

	_, _, ok = r.ObtainEnemy(defs.EnemyKindCount, utils.Vec2{})
	assert.False(t, ok)
}

func TestProjectileAndOrbPools(t *testing.T) {
	r := newTestRegistry(1)
	h, ok := r.ObtainProjectile(utils.Vec2{X: 50, Y: 50}, utils.Vec2{X: 1}, 100, 7, 80, 2, nil)
	require.True(t, ok)
	p := r.Projectile(h)
	assert.True(t, p.Alive)
	assert.Equal(t, 16.0, p.Hitbox.W, "base size 8 scaled by 2")

	o, ok := r.ObtainOrb(utils.Vec2{X: 5, Y: 5}, 6, 3)
	require.True(t, ok)
	assert.Equal(t, 3, r.Orb(o).XPValue)
	assert.Len(t, r.ActiveOrbs(), 1)

	assert.True(t, r.ReleaseProjectile(h))
	assert.False(t, p.Alive)
	assert.Empty(t, r.ActiveProjectiles())
}

func TestDisposeAll(t *testing.T) {
	r := newTestRegistry(8)
	for i := 0; i < 3; i++ {
		r.ObtainEnemy(defs.EnemySlime, utils.Vec2{})
	}
	r.ObtainProjectile(utils.Vec2{}, utils.Vec2{}, 1, 1, 1, 1, nil)
	r.ObtainOrb(utils.Vec2{}, 1, 1)

	r.DisposeAll()
	assert.Zero(t, r.Enemies.ActiveCount())
	assert.Zero(t, r.Enemies.CreatedCount())
	assert.Zero(t, r.Projectiles.CreatedCount())
	assert.Zero(t, r.Orbs.CreatedCount())
	_, known := r.Footprint(defs.EnemySlime)
	assert.False(t, known)
}
