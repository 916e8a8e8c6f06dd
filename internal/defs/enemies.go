// internal/defs/enemies.go
package defs

// EnemyStats holds all the static data for one kind of enemy.
type EnemyStats struct {
	ID            string  `json:"id"`
	HP            int     `json:"hp"`
	Armor         int     `json:"armor"`
	Force         float64 `json:"force"`
	Speed         float64 `json:"speed"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	ContactDamage float64 `json:"contact_damage"`
	XPValue       int     `json:"xp_value"`
	OrbSize       float64 `json:"orb_size"`
	SpawnWeight   int     `json:"spawn_weight"`
}

var defaultEnemies = [EnemyKindCount]EnemyStats{
	EnemySlime: {
		ID: "slime", HP: 20, Armor: 0, Force: 1, Speed: 55,
		Width: 14, Height: 12, ContactDamage: 6, XPValue: 1, OrbSize: 6, SpawnWeight: 50,
	},
	EnemyBat: {
		ID: "bat", HP: 12, Armor: 0, Force: 1, Speed: 95,
		Width: 12, Height: 10, ContactDamage: 4, XPValue: 1, OrbSize: 6, SpawnWeight: 30,
	},
	EnemySkeleton: {
		ID: "skeleton", HP: 40, Armor: 20, Force: 1.2, Speed: 60,
		Width: 14, Height: 20, ContactDamage: 10, XPValue: 3, OrbSize: 8, SpawnWeight: 15,
	},
	EnemyOgre: {
		ID: "ogre", HP: 140, Armor: 50, Force: 1.5, Speed: 40,
		Width: 26, Height: 30, ContactDamage: 18, XPValue: 10, OrbSize: 12, SpawnWeight: 5,
	},
}
