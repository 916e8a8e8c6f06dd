// internal/event/types.go
package event

import (
	"go-survivors/internal/defs"
	"go-survivors/pkg/utils"
)

const (
	EnemyKilled   EventType = "EnemyKilled"   // Враг убит, Data: EnemyKilledData
	OrbCollected  EventType = "OrbCollected"  // Игрок подобрал орб, Data: OrbCollectedData
	PlayerLevelUp EventType = "PlayerLevelUp" // Новый уровень, Data: LevelUpData
	PlayerDied    EventType = "PlayerDied"
)

// EnemyKilledData describes a dead enemy right before it is released.
type EnemyKilledData struct {
	Kind    defs.EnemyKind
	Center  utils.Vec2
	XPValue int
	OrbSize float64
}

type OrbCollectedData struct {
	XPValue int
}

type LevelUpData struct {
	Level  int
	Gained int
}
