// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// Library is the stat table for every enemy and weapon kind. Tables are
// indexed by kind so lookups never allocate.
type Library struct {
	Enemies [EnemyKindCount]EnemyStats
	Weapons [WeaponKindCount]WeaponStats
}

// DefaultLibrary returns the built-in stat tables.
func DefaultLibrary() *Library {
	return &Library{Enemies: defaultEnemies, Weapons: defaultWeapons}
}

func (l *Library) Enemy(k EnemyKind) *EnemyStats {
	if k >= EnemyKindCount {
		return nil
	}
	return &l.Enemies[k]
}

func (l *Library) Weapon(k WeaponKind) *WeaponStats {
	if k >= WeaponKindCount {
		return nil
	}
	return &l.Weapons[k]
}

// LoadEnemyDefinitions reads a JSON array of enemy stats and replaces the
// matching rows. Unknown ids are an error.
func (l *Library) LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyStats
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		kind, ok := ParseEnemyKind(def.ID)
		if !ok {
			return fmt.Errorf("unknown enemy id %q", def.ID)
		}
		if def.HP <= 0 || def.Width <= 0 || def.Height <= 0 {
			return fmt.Errorf("enemy %q: hp and hitbox must be positive", def.ID)
		}
		l.Enemies[kind] = def
	}
	return nil
}

// LoadWeaponDefinitions reads a JSON array of weapon stats and replaces the
// matching rows.
func (l *Library) LoadWeaponDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []WeaponStats
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	for _, def := range weaponDefs {
		kind, ok := ParseWeaponKind(def.ID)
		if !ok {
			return fmt.Errorf("unknown weapon id %q", def.ID)
		}
		l.Weapons[kind] = def
	}
	return nil
}
