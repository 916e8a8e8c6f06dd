// internal/defs/types.go
package defs

import "fmt"

// EnemyKind selects one row of the enemy stat table.
type EnemyKind uint8

const (
	EnemySlime EnemyKind = iota
	EnemyBat
	EnemySkeleton
	EnemyOgre
	EnemyKindCount
)

var enemyIDs = [EnemyKindCount]string{"slime", "bat", "skeleton", "ogre"}

func (k EnemyKind) String() string {
	if k >= EnemyKindCount {
		return fmt.Sprintf("enemy(%d)", uint8(k))
	}
	return enemyIDs[k]
}

// ParseEnemyKind maps a definition id back to its kind.
func ParseEnemyKind(id string) (EnemyKind, bool) {
	for i, name := range enemyIDs {
		if name == id {
			return EnemyKind(i), true
		}
	}
	return 0, false
}

// WeaponKind selects one row of the weapon stat table.
type WeaponKind uint8

const (
	WeaponStick WeaponKind = iota
	WeaponDagger
	WeaponSword
	WeaponWand
	WeaponBow
	WeaponKindCount
)

var weaponIDs = [WeaponKindCount]string{"stick", "dagger", "sword", "wand", "bow"}

func (k WeaponKind) String() string {
	if k >= WeaponKindCount {
		return fmt.Sprintf("weapon(%d)", uint8(k))
	}
	return weaponIDs[k]
}

// ParseWeaponKind maps a definition id back to its kind.
func ParseWeaponKind(id string) (WeaponKind, bool) {
	for i, name := range weaponIDs {
		if name == id {
			return WeaponKind(i), true
		}
	}
	return 0, false
}
