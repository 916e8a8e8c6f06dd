package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/level"
	"go-survivors/pkg/pool"
	"go-survivors/pkg/utils"
)

// openLevel is a wall-less w×h level with 10px tiles.
func openLevel(w, h float64, obstacles ...utils.Rect) *level.Level {
	return level.New(w, h, 10, utils.Vec2{X: 5, Y: 5}, obstacles, nil)
}

func newRegistry(mutate func(*config.Config)) *entity.Registry {
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	return entity.NewRegistry(cfg, defs.DefaultLibrary())
}

func newPlayerAt(x, y float64) *component.Player {
	return component.NewPlayer(config.Default().Player, utils.Vec2{X: x, Y: y})
}

// fakeEnemies records every obtain without a pool behind it.
type fakeEnemies struct {
	lib      *defs.Library
	refuse   bool
	obtained []component.Enemy
	calls    int
	released int
}

func newFakeEnemies() *fakeEnemies {
	return &fakeEnemies{lib: defs.DefaultLibrary()}
}

func (f *fakeEnemies) ObtainEnemy(kind defs.EnemyKind, pos utils.Vec2) (pool.Handle, *component.Enemy, bool) {
	f.calls++
	if f.refuse {
		return pool.NoHandle, nil, false
	}
	e := &component.Enemy{}
	e.Init(kind, f.lib.Enemy(kind), pos, 0)
	f.obtained = append(f.obtained, *e)
	return pool.Handle(len(f.obtained) - 1), e, true
}

func (f *fakeEnemies) ReleaseEnemy(pool.Handle) bool {
	f.released++
	return true
}

func (f *fakeEnemies) Footprint(kind defs.EnemyKind) (utils.Vec2, bool) {
	s := f.lib.Enemy(kind)
	return utils.Vec2{X: s.Width, Y: s.Height}, true
}

// noFlow never has an answer, forcing the direct chase.
type noFlow struct{}

func (noFlow) DirectionAt(utils.Vec2) (utils.Vec2, bool) { return utils.Vec2{}, false }
