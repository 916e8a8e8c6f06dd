// internal/system/spawn.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/level"
	"go-survivors/pkg/logger"
	"go-survivors/pkg/pool"
	"go-survivors/pkg/utils"
)

// Random is the slice of the PRNG service the systems draw from.
type Random interface {
	Intn(n int) int
	Float64() float64
	ChooseWeighted(weights []int) int
}

// ZoneProvider is the level as the spawner sees it.
type ZoneProvider interface {
	Collider
	ZoneCategoryAt(r utils.Rect) (level.Category, bool)
	ZonesIn(c level.Category) []level.Zone
}

// EnemySource hands out pooled enemies.
type EnemySource interface {
	ObtainEnemy(kind defs.EnemyKind, pos utils.Vec2) (pool.Handle, *component.Enemy, bool)
	ReleaseEnemy(h pool.Handle) bool
	Footprint(kind defs.EnemyKind) (utils.Vec2, bool)
}

// SpawnManager drops batches of enemies into the rooms around the player.
// It does nothing until unlocked.
type SpawnManager struct {
	cfg     config.SpawnConfig
	world   ZoneProvider
	enemies EnemySource
	rng     Random

	unlocked bool
	timer    float64
	elapsed  float64
	base     float64
	interval float64

	weights []int
	union   []level.Zone

	spawned int
	log     *logrus.Entry
}

func NewSpawnManager(cfg config.SpawnConfig, lib *defs.Library, world ZoneProvider, enemies EnemySource, rng Random) *SpawnManager {
	s := &SpawnManager{
		cfg:      cfg,
		world:    world,
		enemies:  enemies,
		rng:      rng,
		base:     cfg.BaseInterval,
		interval: cfg.BaseInterval,
		weights:  make([]int, defs.EnemyKindCount),
		log:      logger.WithSystem("spawn"),
	}
	for k := defs.EnemyKind(0); k < defs.EnemyKindCount; k++ {
		if stats := lib.Enemy(k); stats != nil {
			s.weights[k] = stats.SpawnWeight
		}
	}
	return s
}

func (s *SpawnManager) Unlock()        { s.unlocked = true }
func (s *SpawnManager) Lock()          { s.unlocked = false }
func (s *SpawnManager) Unlocked() bool { return s.unlocked }

// SetInterval changes the base interval; the ramp keeps shrinking it from
// there.
func (s *SpawnManager) SetInterval(v float64) {
	if v <= 0 {
		return
	}
	s.base = v
	s.interval = s.rampedInterval()
}

func (s *SpawnManager) Interval() float64 { return s.interval }
func (s *SpawnManager) Elapsed() float64  { return s.elapsed }
func (s *SpawnManager) Spawned() int      { return s.spawned }

// Update advances the spawn timer and returns how many enemies were placed.
// The timer keeps its remainder when a batch fires.
func (s *SpawnManager) Update(dt float64, player *component.Player) int {
	if !s.unlocked || player == nil || !player.Alive {
		return 0
	}
	s.elapsed += dt
	s.timer += dt
	if s.timer < s.interval {
		return 0
	}
	s.timer -= s.interval

	n := s.spawnBatch(player)
	s.spawned += n
	s.interval = s.rampedInterval()
	return n
}

// BatchSize is clamp(floor(2 + sqrt(elapsed/60) * factor), MinBatch, MaxBatch).
func (s *SpawnManager) BatchSize(elapsed, factor float64) int {
	if elapsed < 0 {
		elapsed = 0
	}
	n := int(math.Floor(2 + math.Sqrt(elapsed/60)*factor))
	return utils.ClampInt(n, s.cfg.MinBatch, s.cfg.MaxBatch)
}

func (s *SpawnManager) rampedInterval() float64 {
	v := s.base
	if s.cfg.RampEvery > 0 && s.cfg.RampFactor > 0 {
		v *= math.Pow(s.cfg.RampFactor, math.Floor(s.elapsed/s.cfg.RampEvery))
	}
	if v < s.cfg.MinInterval {
		v = s.cfg.MinInterval
	}
	return v
}

// candidates returns the zones a batch may land in. Corridors are never
// targets themselves: a player in a corridor gets both rooms.
func (s *SpawnManager) candidates(player *component.Player) []level.Zone {
	cat, ok := s.world.ZoneCategoryAt(player.Bounds())
	if !ok {
		return nil
	}
	switch cat {
	case level.CategoryRoom1, level.CategoryRoom2:
		return s.world.ZonesIn(cat)
	case level.CategoryCorridor:
		s.union = append(s.union[:0], s.world.ZonesIn(level.CategoryRoom1)...)
		s.union = append(s.union, s.world.ZonesIn(level.CategoryRoom2)...)
		return s.union
	}
	return nil
}

// spawnBatch places up to BatchSize enemies. Failed placements share one
// budget of MaxAttempts for the whole batch.
func (s *SpawnManager) spawnBatch(player *component.Player) int {
	zones := s.candidates(player)
	if len(zones) == 0 {
		return 0
	}

	want := s.BatchSize(s.elapsed, player.DifficultyFactor)
	placed, failures := 0, 0
	for placed < want && failures < s.cfg.MaxAttempts {
		if s.place(zones) {
			placed++
		} else {
			failures++
		}
	}

	s.log.WithFields(logrus.Fields{
		"wanted":   want,
		"placed":   placed,
		"failures": failures,
	}).Debug("spawn batch")
	return placed
}

func (s *SpawnManager) place(zones []level.Zone) bool {
	zone := zones[s.rng.Intn(len(zones))].Bounds
	k := s.rng.ChooseWeighted(s.weights)
	if k < 0 {
		return false
	}
	kind := defs.EnemyKind(k)

	size, ok := s.footprint(kind)
	if !ok || zone.W < size.X || zone.H < size.Y {
		return false
	}

	pos := utils.Vec2{
		X: zone.X + s.rng.Float64()*(zone.W-size.X),
		Y: zone.Y + s.rng.Float64()*(zone.H-size.Y),
	}
	if s.world.IsColliding(utils.Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}) {
		return false
	}

	h, e, ok := s.enemies.ObtainEnemy(kind, pos)
	if !ok {
		return false
	}
	if s.world.IsColliding(e.Bounds()) {
		s.enemies.ReleaseEnemy(h)
		return false
	}
	return true
}

// footprint returns the hitbox size of kind. An unknown kind is learned by
// obtaining one instance and releasing it straight away.
func (s *SpawnManager) footprint(kind defs.EnemyKind) (utils.Vec2, bool) {
	if size, ok := s.enemies.Footprint(kind); ok {
		return size, true
	}
	h, e, ok := s.enemies.ObtainEnemy(kind, utils.Vec2{})
	if !ok {
		return utils.Vec2{}, false
	}
	size := e.Hitbox.Size()
	s.enemies.ReleaseEnemy(h)
	return size, true
}
