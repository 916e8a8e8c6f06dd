// internal/app/snapshot.go
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

const SnapshotVersion = 1

// Snapshot is a read-only picture of a run, for tooling and debugging. It
// cannot be loaded back into a Game.
type Snapshot struct {
	Version   int     `msgpack:"version"`
	SessionID string  `msgpack:"session_id"`
	Seed      int64   `msgpack:"seed"`
	GameTime  float64 `msgpack:"game_time"`
	Over      bool    `msgpack:"over"`

	Player      PlayerSnapshot       `msgpack:"player"`
	Enemies     []EnemySnapshot      `msgpack:"enemies"`
	Projectiles []ProjectileSnapshot `msgpack:"projectiles"`
	Orbs        []OrbSnapshot        `msgpack:"orbs"`

	SpawnInterval float64 `msgpack:"spawn_interval"`
	Spawned       int     `msgpack:"spawned"`
}

type PlayerSnapshot struct {
	X           float64 `msgpack:"x"`
	Y           float64 `msgpack:"y"`
	HP          int     `msgpack:"hp"`
	MaxHP       int     `msgpack:"max_hp"`
	Level       int     `msgpack:"level"`
	XP          int     `msgpack:"xp"`
	XPToNext    int     `msgpack:"xp_to_next"`
	MobKilled   int     `msgpack:"mob_killed"`
	Weapon      string  `msgpack:"weapon"`
	WeaponLevel int     `msgpack:"weapon_level"`
}

type EnemySnapshot struct {
	Kind  string  `msgpack:"kind"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	HP    int     `msgpack:"hp"`
	Alive bool    `msgpack:"alive"`
}

type ProjectileSnapshot struct {
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	DirX     float64 `msgpack:"dir_x"`
	DirY     float64 `msgpack:"dir_y"`
	Traveled float64 `msgpack:"traveled"`
	Damage   float64 `msgpack:"damage"`
}

type OrbSnapshot struct {
	X  float64 `msgpack:"x"`
	Y  float64 `msgpack:"y"`
	XP int     `msgpack:"xp"`
}

// BuildSnapshot copies the current state of the run. Empty entity lists
// stay nil so they survive an encode/decode round trip unchanged.
func (g *Game) BuildSnapshot() Snapshot {
	p := g.Player
	s := Snapshot{
		Version:   SnapshotVersion,
		SessionID: g.SessionID.String(),
		Seed:      g.Rng.Seed(),
		GameTime:  g.gameTime,
		Over:      g.isOver,
		Player: PlayerSnapshot{
			X:         p.Hitbox.X,
			Y:         p.Hitbox.Y,
			HP:        p.HP,
			MaxHP:     p.MaxHP,
			Level:     p.Level,
			XP:        p.XP,
			XPToNext:  p.XPToNext,
			MobKilled: p.MobKilled,
		},
		SpawnInterval: g.SpawnManager.Interval(),
		Spawned:       g.SpawnManager.Spawned(),
	}
	if p.Weapon != nil {
		s.Player.Weapon = p.Weapon.Kind.String()
		s.Player.WeaponLevel = p.Weapon.Level
	}

	reg := g.Registry
	for _, h := range reg.ActiveEnemies() {
		e := reg.Enemy(h)
		s.Enemies = append(s.Enemies, EnemySnapshot{
			Kind:  e.Kind.String(),
			X:     e.Hitbox.X,
			Y:     e.Hitbox.Y,
			HP:    e.HP,
			Alive: e.Alive,
		})
	}
	for _, h := range reg.ActiveProjectiles() {
		pr := reg.Projectile(h)
		c := pr.Center()
		s.Projectiles = append(s.Projectiles, ProjectileSnapshot{
			X:        c.X,
			Y:        c.Y,
			DirX:     pr.Dir.X,
			DirY:     pr.Dir.Y,
			Traveled: pr.Traveled,
			Damage:   pr.Damage,
		})
	}
	for _, h := range reg.ActiveOrbs() {
		o := reg.Orb(h)
		c := o.Center()
		s.Orbs = append(s.Orbs, OrbSnapshot{X: c.X, Y: c.Y, XP: o.XPValue})
	}
	return s
}

func EncodeSnapshot(s Snapshot) ([]byte, error) {
	blob, err := msgpack.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return blob, nil
}

func DecodeSnapshot(blob []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(blob, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	return s, nil
}

// SaveSnapshot writes s to path via a temporary file and a rename.
func SaveSnapshot(path string, s Snapshot) error {
	if path == "" {
		return fmt.Errorf("snapshot path is empty")
	}
	blob, err := EncodeSnapshot(s)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure snapshot dir: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, blob, 0o644); err != nil {
		return fmt.Errorf("write snapshot temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename snapshot temp file: %w", err)
	}
	return nil
}

func LoadSnapshot(path string) (Snapshot, error) {
	if path == "" {
		return Snapshot{}, fmt.Errorf("snapshot path is empty")
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}
	return DecodeSnapshot(blob)
}
