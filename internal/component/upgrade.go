package component

import "fmt"

// Upgrade is a reward the player picks on level-up.
type Upgrade uint8

const (
	UpgradeMaxHP Upgrade = iota
	UpgradeArmor
	UpgradeForce
	UpgradeSpeed
	UpgradeDifficulty
	UpgradeWeapon
	UpgradeCount
)

var upgradeNames = [UpgradeCount]string{"max-hp", "armor", "force", "speed", "difficulty", "weapon"}

func (u Upgrade) String() string {
	if u >= UpgradeCount {
		return fmt.Sprintf("upgrade(%d)", uint8(u))
	}
	return upgradeNames[u]
}

// Upgrade step sizes.
const (
	upgradeMaxHPStep      = 20
	upgradeArmorStep      = 10
	upgradeForceStep      = 0.1
	upgradeSpeedFactor    = 1.1
	upgradeDifficultyStep = 0.25
)

// ApplyUpgrade applies u to the player and reports whether anything changed.
func (p *Player) ApplyUpgrade(u Upgrade) bool {
	switch u {
	case UpgradeMaxHP:
		p.MaxHP += upgradeMaxHPStep
		p.Heal(upgradeMaxHPStep)
	case UpgradeArmor:
		p.Armor += upgradeArmorStep
	case UpgradeForce:
		p.Force += upgradeForceStep
	case UpgradeSpeed:
		p.Speed *= upgradeSpeedFactor
	case UpgradeDifficulty:
		p.DifficultyFactor += upgradeDifficultyStep
	case UpgradeWeapon:
		if p.Weapon == nil {
			return false
		}
		p.Weapon.LevelUp()
	default:
		return false
	}
	return true
}
